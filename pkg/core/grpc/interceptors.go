package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/pkg/core/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader carries the request ID in gRPC metadata
const RequestIDHeader = "x-request-id"

// RecoveryInterceptor turns panics in handlers into Internal errors
func RecoveryInterceptor(logger *logging.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = status.Errorf(codes.Internal, "internal server error")
				logger.WithContext(ctx).WithFields(tklog.Fields{
					"method": info.FullMethod,
					"panic":  r,
					"stack":  string(debug.Stack()),
				}).ErrorWithErr("gRPC panic recovered", err)
			}
		}()
		return handler(ctx, req)
	}
}

// LoggingInterceptor logs every request with its status and duration
func LoggingInterceptor(logger *logging.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		statusCode := status.Code(err)
		l := logger.WithContext(ctx).WithFields(tklog.Fields{
			"method":   info.FullMethod,
			"status":   statusCode.String(),
			"duration": time.Since(start),
		})
		if statusCode == codes.Internal || statusCode == codes.Unknown {
			l.ErrorWithErr("gRPC request", err)
		} else {
			l.Info("gRPC request")
		}

		return resp, err
	}
}

// RequestIDInterceptor makes sure every request carries a request ID. The
// ID is taken from incoming metadata or generated, stored in the context
// for the foundation logger and echoed in the response header.
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requestID := extractRequestID(ctx)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx = tklog.ContextWithRequestID(ctx, requestID)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		return handler(ctx, req)
	}
}

// ClientRequestIDInterceptor propagates the request ID to outgoing requests
func ClientRequestIDInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		requestID := GetRequestID(ctx)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx = metadata.AppendToOutgoingContext(ctx, RequestIDHeader, requestID)

		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// ClientLoggingInterceptor logs outgoing gRPC requests at debug level
func ClientLoggingInterceptor(logger *logging.Logger) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()

		err := invoker(ctx, method, req, reply, cc, opts...)

		logger.WithContext(ctx).Debug("gRPC client request",
			"method", method,
			"status", status.Code(err).String(),
			"duration", time.Since(start),
		)

		return err
	}
}

// GetRequestID returns the request ID stored in ctx or found in its
// incoming metadata
func GetRequestID(ctx context.Context) string {
	if id := tklog.RequestIDFromContext(ctx); id != "" {
		return id
	}
	return extractRequestID(ctx)
}

func extractRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	values := md.Get(RequestIDHeader)
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return tklog.ContextWithRequestID(ctx, requestID)
}
