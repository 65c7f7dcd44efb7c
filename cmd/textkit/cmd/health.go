package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/internal/textkit/server"
	coreGrpc "github.com/msto63/textkit/pkg/core/grpc"
	"github.com/msto63/textkit/pkg/core/health"
	"github.com/spf13/cobra"
)

func newHealthCmd(a *app) *cobra.Command {
	var addr string
	var local bool
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the health of a running textkit service",
		Long: `Ask a running textkit service for its health report. With --local the
checks run in this process instead.

The command fails when the service is unhealthy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			var report *health.Report
			if local {
				report = a.svc.Health(ctx)
			} else {
				if addr == "" {
					sc := coreGrpc.ServerConfigFromConfig(a.cfg)
					addr = fmt.Sprintf("%s:%d", sc.Host, sc.Port)
				}
				conn, err := coreGrpc.Dial(coreGrpc.DefaultClientConfig(addr), a.logger)
				if err != nil {
					return err
				}
				defer conn.Close()

				report, err = server.NewClient(conn).Health(ctx)
				if err != nil {
					return tkerror.Wrap(err, "health request failed").
						WithCode(tkerror.CodeServiceUnavailable).
						WithDetail("address", addr)
				}
			}

			printReport(cmd.OutOrStdout(), report)
			if !report.Healthy() {
				return tkerror.Newf("service is %s", report.Status).
					WithCode(tkerror.CodeServiceUnavailable)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "service address (default: server.host:server.port)")
	cmd.Flags().BoolVar(&local, "local", false, "run the checks in this process")
	cmd.Flags().DurationVar(&timeout, "wait", 5*time.Second, "maximum time to wait for the report")
	return cmd
}

func printReport(w io.Writer, r *health.Report) {
	fmt.Fprintf(w, "%s %s: %s (uptime %s)\n", r.Service, r.Version, r.Status, r.Uptime.Round(time.Second))
	for _, c := range r.Checks {
		line := fmt.Sprintf("  %-10s %-10s", c.Name, c.Status)
		if c.Message != "" {
			line += " " + c.Message
		}
		fmt.Fprintln(w, line)
	}
}
