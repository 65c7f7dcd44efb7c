package server

import (
	"context"

	"github.com/msto63/textkit/internal/textkit/service"
	"github.com/msto63/textkit/pkg/core/health"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls textkit.v1.TextService and converts messages to service
// types
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a client on conn
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Match calls TextService.Match
func (c *Client) Match(ctx context.Context, req *service.MatchRequest, opts ...grpc.CallOption) (*service.MatchResult, error) {
	in, err := EncodeMatchRequest(req)
	if err != nil {
		return nil, err
	}
	out, err := c.invoke(ctx, "Match", in, opts...)
	if err != nil {
		return nil, err
	}
	return DecodeMatchResult(out), nil
}

// Replace calls TextService.Replace
func (c *Client) Replace(ctx context.Context, req *service.ReplaceRequest, opts ...grpc.CallOption) (*service.ReplaceResult, error) {
	in, err := EncodeReplaceRequest(req)
	if err != nil {
		return nil, err
	}
	out, err := c.invoke(ctx, "Replace", in, opts...)
	if err != nil {
		return nil, err
	}
	return DecodeReplaceResult(out), nil
}

// Transform calls TextService.Transform
func (c *Client) Transform(ctx context.Context, req *service.TransformRequest, opts ...grpc.CallOption) (*service.TransformResult, error) {
	in, err := EncodeTransformRequest(req)
	if err != nil {
		return nil, err
	}
	out, err := c.invoke(ctx, "Transform", in, opts...)
	if err != nil {
		return nil, err
	}
	return DecodeTransformResult(out), nil
}

// Patterns calls TextService.Patterns
func (c *Client) Patterns(ctx context.Context, opts ...grpc.CallOption) ([]service.PatternInfo, error) {
	out, err := c.invoke(ctx, "Patterns", &structpb.Struct{}, opts...)
	if err != nil {
		return nil, err
	}
	return DecodePatterns(out), nil
}

// Health calls TextService.Health
func (c *Client) Health(ctx context.Context, opts ...grpc.CallOption) (*health.Report, error) {
	out, err := c.invoke(ctx, "Health", &structpb.Struct{}, opts...)
	if err != nil {
		return nil, err
	}
	return DecodeReport(out), nil
}
