package grpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/msto63/textkit/foundation/core/config"
	tkerror "github.com/msto63/textkit/foundation/core/error"
	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/pkg/core/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func bufferLogger() (*logging.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := logging.DefaultLoggerConfig("grpc-test")
	cfg.Level = "debug"
	cfg.Output = &buf
	return logging.Wrap(logging.NewLogger(cfg), "grpc-test"), &buf
}

func startBufServer(t *testing.T) (*Server, *grpc.ClientConn) {
	t.Helper()
	logger, _ := bufferLogger()
	lis := bufconn.Listen(1 << 20)

	cfg := DefaultServerConfig()
	cfg.EnableReflection = false
	srv := NewServer(cfg, logger)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := Dial(DefaultClientConfig("passthrough:///bufnet"), logger,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return srv, conn
}

func TestServer_HealthService(t *testing.T) {
	srv, conn := startBufServer(t)
	client := healthpb.NewHealthClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.SetServingStatus("textkit.v1.TextService", false)
	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: "textkit.v1.TextService"})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("status = %v, want NOT_SERVING", resp.GetStatus())
	}

	srv.SetServingStatus("textkit.v1.TextService", true)
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: "textkit.v1.TextService"})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("Check() = %v, %v; want SERVING", resp, err)
	}
}

func TestServer_RequestIDHeader(t *testing.T) {
	_, conn := startBufServer(t)
	client := healthpb.NewHealthClient(conn)

	ctx := WithRequestID(context.Background(), "req-123")
	var header metadata.MD
	if _, err := client.Check(ctx, &healthpb.HealthCheckRequest{}, grpc.Header(&header)); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if got := header.Get(RequestIDHeader); len(got) != 1 || got[0] != "req-123" {
		t.Errorf("x-request-id = %v, want req-123", got)
	}

	header = nil
	if _, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{}, grpc.Header(&header)); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if got := header.Get(RequestIDHeader); len(got) != 1 || len(got[0]) != 36 {
		t.Errorf("generated x-request-id = %v, want a uuid", got)
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	logger, buf := bufferLogger()
	intercept := RecoveryInterceptor(logger)

	_, err := intercept(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test/Panic"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			panic("boom")
		})
	if status.Code(err) != codes.Internal {
		t.Errorf("error = %v, want Internal", err)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("panic not logged: %q", buf.String())
	}
}

func TestRequestIDAndLoggingInterceptors(t *testing.T) {
	logger, buf := bufferLogger()
	info := &grpc.UnaryServerInfo{FullMethod: "/textkit.v1.TextService/Match"}

	incoming := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "abc"))
	var seen string
	_, err := RequestIDInterceptor()(incoming, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = tklog.RequestIDFromContext(ctx)
		return LoggingInterceptor(logger)(ctx, req, info, func(context.Context, interface{}) (interface{}, error) {
			return nil, status.Error(codes.InvalidArgument, "bad")
		})
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("error = %v", err)
	}
	if seen != "abc" {
		t.Errorf("request id = %q, want abc", seen)
	}
	out := buf.String()
	if !strings.Contains(out, "abc") || !strings.Contains(out, "InvalidArgument") || !strings.Contains(out, "/textkit.v1.TextService/Match") {
		t.Errorf("log line missing fields: %q", out)
	}
}

func TestLoggingInterceptor_InternalError(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultLoggerConfig("grpc-test")
	cfg.Format = "json"
	cfg.Output = &buf
	logger := logging.Wrap(logging.NewLogger(cfg), "grpc-test")

	info := &grpc.UnaryServerInfo{FullMethod: "/textkit.v1.TextService/Replace"}
	_, err := LoggingInterceptor(logger)(context.Background(), nil, info, func(context.Context, interface{}) (interface{}, error) {
		return nil, status.Error(codes.Internal, "engine exploded")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if data["level"] != "error" || data["status"] != "Internal" || data["method"] != info.FullMethod {
		t.Errorf("log entry = %v", data)
	}
	if msg, _ := data["error"].(string); !strings.Contains(msg, "engine exploded") {
		t.Errorf("error field = %v", data["error"])
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"compile", tkerror.New("x").WithCode(tkerror.CodePatternCompile), codes.InvalidArgument},
		{"range", tkerror.New("x").WithCode(tkerror.CodeInvalidRange), codes.InvalidArgument},
		{"timeout", tkerror.New("x").WithCode(tkerror.CodeMatchTimeout), codes.DeadlineExceeded},
		{"unknown pattern", tkerror.New("x").WithCode(tkerror.CodeUnknownPattern), codes.NotFound},
		{"internal", tkerror.New("x").WithCode(tkerror.CodeInternal), codes.Internal},
		{"wrapped", tkerror.Wrap(tkerror.New("x").WithCode(tkerror.CodeInvalidInput), "outer"), codes.InvalidArgument},
		{"context canceled", context.Canceled, codes.Canceled},
		{"status passthrough", status.Error(codes.NotFound, "nope"), codes.NotFound},
		{"plain", errors.New("plain"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToStatus(t *testing.T) {
	err := ToStatus(tkerror.New("bad pattern").WithCode(tkerror.CodePatternCompile))
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument || st.Message() != "PATTERN_COMPILE: bad pattern" {
		t.Errorf("ToStatus() = %v", err)
	}
	if ToStatus(nil) != nil {
		t.Error("ToStatus(nil) should be nil")
	}
}

func TestServerConfigFromConfig(t *testing.T) {
	cfg := config.New("")
	cfg.Set(KeyPort, 7000)
	sc := ServerConfigFromConfig(cfg)
	if sc.Port != 7000 || sc.Host != DefaultServerConfig().Host {
		t.Errorf("ServerConfigFromConfig() = %+v", sc)
	}
}
