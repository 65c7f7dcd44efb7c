package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/msto63/textkit/foundation/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

// Configuration keys read by ServerConfigFromConfig
const (
	KeyHost = "server.host"
	KeyPort = "server.port"
)

// ServerConfig holds gRPC server configuration
type ServerConfig struct {
	Host              string
	Port              int
	MaxRecvMsgSize    int
	MaxSendMsgSize    int
	EnableReflection  bool
	KeepaliveInterval time.Duration
	KeepaliveTimeout  time.Duration
	ShutdownTimeout   time.Duration
}

// DefaultServerConfig returns a default server configuration
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:              "127.0.0.1",
		Port:              9310,
		MaxRecvMsgSize:    4 * 1024 * 1024, // 4MB
		MaxSendMsgSize:    4 * 1024 * 1024, // 4MB
		EnableReflection:  true,
		KeepaliveInterval: 30 * time.Second,
		KeepaliveTimeout:  10 * time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// ServerConfigFromConfig overlays server.host and server.port from cfg on
// the defaults
func ServerConfigFromConfig(cfg *config.Config) ServerConfig {
	sc := DefaultServerConfig()
	if cfg == nil {
		return sc
	}
	sc.Host = cfg.GetString(KeyHost, sc.Host)
	sc.Port = cfg.GetInt(KeyPort, sc.Port)
	return sc
}

// Server wraps a gRPC server with interceptors, reflection and the
// standard health service
type Server struct {
	server   *grpc.Server
	health   *grpchealth.Server
	config   ServerConfig
	listener net.Listener
	logger   *logging.Logger
}

// NewServer creates a new gRPC server
func NewServer(cfg ServerConfig, logger *logging.Logger, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = logging.New("grpc-server")
	}

	serverOpts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(cfg.MaxRecvMsgSize),
		grpc.MaxSendMsgSize(cfg.MaxSendMsgSize),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    cfg.KeepaliveInterval,
			Timeout: cfg.KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.ChainUnaryInterceptor(
			RequestIDInterceptor(),
			RecoveryInterceptor(logger),
			LoggingInterceptor(logger),
		),
	}
	serverOpts = append(serverOpts, opts...)

	server := grpc.NewServer(serverOpts...)
	health := grpchealth.NewServer()
	healthpb.RegisterHealthServer(server, health)

	if cfg.EnableReflection {
		reflection.Register(server)
	}

	return &Server{
		server: server,
		health: health,
		config: cfg,
		logger: logger,
	}
}

// GRPCServer returns the underlying gRPC server for service registration
func (s *Server) GRPCServer() *grpc.Server {
	return s.server
}

// SetServingStatus updates the standard health service for service. An
// empty service name sets the overall server status.
func (s *Server) SetServingStatus(service string, serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(service, st)
}

// Serve accepts connections on lis until the server stops
func (s *Server) Serve(lis net.Listener) error {
	s.listener = lis
	s.logger.Info("gRPC server listening", "address", lis.Addr().String())
	return s.server.Serve(lis)
}

// Start listens on the configured address and serves
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(listener)
}

// StartAsync starts the gRPC server in a goroutine
func (s *Server) StartAsync() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	go func() {
		if err := s.Serve(listener); err != nil {
			s.logger.Error("gRPC server error", "error", err)
		}
	}()

	return nil
}

// Stop gracefully stops the gRPC server
func (s *Server) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}

// StopWithTimeout stops gracefully and forces the stop when ctx ends
func (s *Server) StopWithTimeout(ctx context.Context) {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-ctx.Done():
		s.logger.Warn("graceful stop timed out, forcing")
		s.server.Stop()
	}
}

// ShutdownTimeout returns the configured graceful stop budget
func (s *Server) ShutdownTimeout() time.Duration {
	return s.config.ShutdownTimeout
}

// Address returns the server address
func (s *Server) Address() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}
