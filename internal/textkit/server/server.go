package server

import (
	"context"
	"net"
	"time"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/internal/textkit/service"
	coreGrpc "github.com/msto63/textkit/pkg/core/grpc"
	"github.com/msto63/textkit/pkg/core/logging"
	"google.golang.org/grpc"
)

// Config holds server configuration
type Config struct {
	GRPC    coreGrpc.ServerConfig
	Service service.Config
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		GRPC:    coreGrpc.DefaultServerConfig(),
		Service: service.DefaultConfig(),
	}
}

// Server is the textkit gRPC server
type Server struct {
	service *service.Service
	grpc    *coreGrpc.Server
	logger  *logging.Logger
	config  Config
}

// New creates a new textkit server. The standard health service reports
// SERVING for textkit.v1.TextService once the built-in patterns compile.
func New(cfg Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.New("textkit-server")
	}
	if cfg.Service.Logger == nil {
		cfg.Service.Logger = logger
	}

	svc, err := service.NewService(cfg.Service)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to create service").
			WithCode(tkerror.CodeServiceInitialization).
			WithOperation("server.New")
	}

	s := &Server{
		service: svc,
		grpc:    coreGrpc.NewServer(cfg.GRPC, logger),
		logger:  logger,
		config:  cfg,
	}
	RegisterTextServiceServer(s.grpc.GRPCServer(), s)

	report := svc.Health(context.Background())
	s.grpc.SetServingStatus(ServiceName, report.Healthy())
	s.grpc.SetServingStatus("", report.Healthy())
	if !report.Healthy() {
		logger.Warn("Text service is not healthy", "report", report.String())
	}

	return s, nil
}

// Service returns the text service behind the server
func (s *Server) Service() *service.Service {
	return s.service
}

// Serve serves on lis until the server stops
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Start starts the server on the configured address
func (s *Server) Start() error {
	s.logger.Info("Starting textkit server", "host", s.config.GRPC.Host, "port", s.config.GRPC.Port)
	return s.grpc.Start()
}

// StartAsync starts the server asynchronously
func (s *Server) StartAsync() error {
	s.logger.Info("Starting textkit server (async)", "host", s.config.GRPC.Host, "port", s.config.GRPC.Port)
	return s.grpc.StartAsync()
}

// Stop stops the server, forcing the stop when ctx ends
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Stopping textkit server")
	s.grpc.StopWithTimeout(ctx)
}

// ShutdownTimeout returns the configured graceful stop budget
func (s *Server) ShutdownTimeout() time.Duration {
	return s.grpc.ShutdownTimeout()
}

// GRPCServer returns the underlying gRPC server
func (s *Server) GRPCServer() *grpc.Server {
	return s.grpc.GRPCServer()
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.grpc.Address()
}
