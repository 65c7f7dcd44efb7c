package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msto63/textkit/internal/textkit/server"
	coreGrpc "github.com/msto63/textkit/pkg/core/grpc"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var host string
	var port int
	var noReflection bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the textkit gRPC service",
		Long: `Start the textkit gRPC service (textkit.v1.TextService) together with
the standard grpc.health.v1 service and server reflection.

The address comes from server.host and server.port in the configuration
and can be overridden with --host and --port. SIGINT and SIGTERM stop the
server gracefully.

Examples:
  textkit serve
  textkit serve --port 9400 --engine auto`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.serviceConfig()
			if err != nil {
				return err
			}
			cfg := server.Config{
				GRPC:    coreGrpc.ServerConfigFromConfig(a.cfg),
				Service: sc,
			}
			if cmd.Flags().Changed("host") {
				cfg.GRPC.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.GRPC.Port = port
			}
			if noReflection {
				cfg.GRPC.EnableReflection = false
			}
			return runServe(cmd, a, cfg)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "listen host (default: server.host or 127.0.0.1)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default: server.port or 9310)")
	cmd.Flags().BoolVar(&noReflection, "no-reflection", false, "disable gRPC server reflection")
	return cmd
}

func runServe(cmd *cobra.Command, a *app, cfg server.Config) error {
	srv, err := server.New(cfg, a.logger)
	if err != nil {
		return err
	}
	if err := srv.StartAsync(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "textkit service listening on %s (engine %s)\n",
		srv.Address(), cfg.Service.Engine)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.logger.Info("Received signal, shutting down", "signal", sig.String())
	case <-cmd.Context().Done():
	}

	timeout := srv.ShutdownTimeout()
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	srv.Stop(ctx)
	fmt.Fprintln(cmd.OutOrStdout(), "textkit service stopped")
	return nil
}
