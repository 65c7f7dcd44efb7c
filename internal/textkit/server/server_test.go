package server

import (
	"bytes"
	"context"
	"net"
	"reflect"
	"testing"
	"time"

	"github.com/msto63/textkit/foundation/utils/patternx"
	"github.com/msto63/textkit/internal/textkit/service"
	coreGrpc "github.com/msto63/textkit/pkg/core/grpc"
	"github.com/msto63/textkit/pkg/core/health"
	"github.com/msto63/textkit/pkg/core/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startTestServer(t *testing.T) (*Client, *grpc.ClientConn) {
	t.Helper()
	var buf bytes.Buffer
	lcfg := logging.DefaultLoggerConfig("textkit-test")
	lcfg.Output = &buf
	logger := logging.Wrap(logging.NewLogger(lcfg), "textkit-test")

	cfg := DefaultConfig()
	cfg.GRPC.EnableReflection = false
	srv, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Stop(ctx)
	})

	conn, err := coreGrpc.Dial(coreGrpc.DefaultClientConfig("passthrough:///bufnet"), logger,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return NewClient(conn), conn
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestServer_Match(t *testing.T) {
	client, _ := startTestServer(t)
	res, err := client.Match(testContext(t), &service.MatchRequest{
		Pattern: service.PatternSpec{Source: `\w+`},
		Text:    "h\u00e9llo world",
	})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	want := []patternx.MatchRange{{Start: 0, End: 6}, {Start: 7, End: 12}}
	if !reflect.DeepEqual(res.Ranges, want) {
		t.Errorf("Ranges = %v, want %v", res.Ranges, want)
	}
	if !reflect.DeepEqual(res.Matches, []string{"h\u00e9llo", "world"}) || !res.Matched || res.Status != "matched" {
		t.Errorf("Match() = %+v", res)
	}
}

func TestServer_MatchErrors(t *testing.T) {
	client, _ := startTestServer(t)
	ctx := testContext(t)

	tests := []struct {
		name string
		req  *service.MatchRequest
		code codes.Code
	}{
		{"missing pattern", &service.MatchRequest{Text: "x"}, codes.InvalidArgument},
		{"unknown built-in", &service.MatchRequest{Pattern: service.PatternSpec{Name: "phone"}}, codes.NotFound},
		{"strict compile", &service.MatchRequest{Pattern: service.PatternSpec{Source: "("}, Strict: true}, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Match(ctx, tt.req)
			if status.Code(err) != tt.code {
				t.Errorf("Match() error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestServer_Replace(t *testing.T) {
	client, _ := startTestServer(t)
	ctx := testContext(t)

	res, err := client.Replace(ctx, &service.ReplaceRequest{
		Pattern:  service.PatternSpec{Source: "o"},
		Text:     "foo boo",
		Template: "0",
		Bounds:   &patternx.MatchRange{Start: 4, End: 7},
	})
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if res.Text != "foo b00" || !res.Changed {
		t.Errorf("Replace() = %+v", res)
	}

	_, err = client.Replace(ctx, &service.ReplaceRequest{
		Pattern: service.PatternSpec{Source: "o"},
		Text:    "foo",
		Bounds:  &patternx.MatchRange{Start: 1, End: 10},
		Strict:  true,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("strict bad bounds: error = %v, want InvalidArgument", err)
	}
}

func TestServer_Transform(t *testing.T) {
	client, _ := startTestServer(t)
	ctx := testContext(t)

	res, err := client.Transform(ctx, &service.TransformRequest{Op: "snake", Text: "parseHTTPResponse"})
	if err != nil || res.Text != "parse_http_response" {
		t.Errorf("Transform(snake) = %+v, %v", res, err)
	}

	res, err = client.Transform(ctx, &service.TransformRequest{Op: "truncate", Text: "hello world", Length: 8})
	if err != nil || res.Text != "hello..." {
		t.Errorf("Transform(truncate) = %+v, %v", res, err)
	}

	res, err = client.Transform(ctx, &service.TransformRequest{Op: "first-characters", Text: "hello world_foo"})
	if err != nil || !reflect.DeepEqual(res.Words, []string{"h", "w", "f"}) {
		t.Errorf("Transform(first-characters) = %+v, %v", res, err)
	}

	res, err = client.Transform(ctx, &service.TransformRequest{Op: "check", Text: "1.5E3"})
	if err != nil || !res.Checks["scientific-notation"] || res.Checks["email"] {
		t.Errorf("Transform(check) = %+v, %v", res, err)
	}

	if _, err := client.Transform(ctx, &service.TransformRequest{Op: "rot13"}); status.Code(err) != codes.InvalidArgument {
		t.Errorf("unknown op: error = %v, want InvalidArgument", err)
	}
}

func TestServer_Patterns(t *testing.T) {
	client, _ := startTestServer(t)
	infos, err := client.Patterns(testContext(t))
	if err != nil {
		t.Fatalf("Patterns() error = %v", err)
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	if !reflect.DeepEqual(names, patternx.Names()) {
		t.Errorf("names = %v, want %v", names, patternx.Names())
	}
}

func TestServer_Health(t *testing.T) {
	client, conn := startTestServer(t)
	ctx := testContext(t)

	report, err := client.Health(ctx)
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if report.Status != health.StatusHealthy || report.Service != "textkit" || len(report.Checks) != 2 {
		t.Errorf("Health() = %+v", report)
	}

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		t.Fatalf("grpc.health.v1 Check() error = %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("serving status = %v, want SERVING", resp.GetStatus())
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	req := &service.ReplaceRequest{
		Pattern:     service.PatternSpec{Source: "a+", Options: []string{"case-insensitive"}, Engine: "auto"},
		Text:        "AAb",
		Template:    "<$0>",
		Bounds:      &patternx.MatchRange{Start: 1, End: 3},
		Transparent: true,
	}
	in, err := EncodeReplaceRequest(req)
	if err != nil {
		t.Fatalf("EncodeReplaceRequest() error = %v", err)
	}
	if got := DecodeReplaceRequest(in); !reflect.DeepEqual(got, req) {
		t.Errorf("DecodeReplaceRequest() = %+v, want %+v", got, req)
	}

	report := &health.Report{
		Service: "textkit",
		Status:  health.StatusDegraded,
		Checks: []health.CheckResult{
			{Name: "cache", Status: health.StatusHealthy, Details: map[string]interface{}{"hits": int64(3), "skip": struct{}{}}},
		},
	}
	out, err := EncodeReport(report)
	if err != nil {
		t.Fatalf("EncodeReport() error = %v", err)
	}
	decoded := DecodeReport(out)
	if decoded.Status != health.StatusDegraded || decoded.Checks[0].Details["hits"] != float64(3) {
		t.Errorf("DecodeReport() = %+v", decoded)
	}
}
