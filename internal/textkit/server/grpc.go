package server

import (
	"context"

	coreGrpc "github.com/msto63/textkit/pkg/core/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "textkit.v1.TextService"

// TextServiceServer is the server API for textkit.v1.TextService
type TextServiceServer interface {
	Match(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Replace(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Transform(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Patterns(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Health(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv TextServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TextServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(TextServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes textkit.v1.TextService for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TextServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Match", Handler: unaryHandler("Match", TextServiceServer.Match)},
		{MethodName: "Replace", Handler: unaryHandler("Replace", TextServiceServer.Replace)},
		{MethodName: "Transform", Handler: unaryHandler("Transform", TextServiceServer.Transform)},
		{MethodName: "Patterns", Handler: unaryHandler("Patterns", TextServiceServer.Patterns)},
		{MethodName: "Health", Handler: unaryHandler("Health", TextServiceServer.Health)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "textkit/v1/text.proto",
}

// RegisterTextServiceServer registers srv on s
func RegisterTextServiceServer(s grpc.ServiceRegistrar, srv TextServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Ensure Server implements TextServiceServer
var _ TextServiceServer = (*Server)(nil)

func encoded(out *structpb.Struct, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

// Match implements TextServiceServer.Match
func (s *Server) Match(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	res, err := s.service.Match(ctx, DecodeMatchRequest(in))
	if err != nil {
		s.logger.WithContext(ctx).Warn("Match failed", "error", err)
		return nil, coreGrpc.ToStatus(err)
	}
	return encoded(EncodeMatchResult(res))
}

// Replace implements TextServiceServer.Replace
func (s *Server) Replace(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	res, err := s.service.Replace(ctx, DecodeReplaceRequest(in))
	if err != nil {
		s.logger.WithContext(ctx).Warn("Replace failed", "error", err)
		return nil, coreGrpc.ToStatus(err)
	}
	return encoded(EncodeReplaceResult(res))
}

// Transform implements TextServiceServer.Transform
func (s *Server) Transform(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	res, err := s.service.Transform(ctx, DecodeTransformRequest(in))
	if err != nil {
		s.logger.WithContext(ctx).Warn("Transform failed", "error", err)
		return nil, coreGrpc.ToStatus(err)
	}
	return encoded(EncodeTransformResult(res))
}

// Patterns implements TextServiceServer.Patterns
func (s *Server) Patterns(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	infos, err := s.service.Patterns(ctx)
	if err != nil {
		return nil, coreGrpc.ToStatus(err)
	}
	return encoded(EncodePatterns(infos))
}

// Health implements TextServiceServer.Health
func (s *Server) Health(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	report := s.service.Health(ctx)
	s.grpc.SetServingStatus(ServiceName, report.Healthy())
	return encoded(EncodeReport(report))
}
