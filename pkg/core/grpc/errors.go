package grpc

import (
	"context"
	"errors"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// codeMap translates error codes to gRPC status codes. Unlisted codes map
// to Internal.
var codeMap = map[tkerror.Code]codes.Code{
	tkerror.CodeInvalidInput:       codes.InvalidArgument,
	tkerror.CodePatternCompile:     codes.InvalidArgument,
	tkerror.CodeInvalidRange:       codes.InvalidArgument,
	tkerror.CodeUnknownPattern:     codes.NotFound,
	tkerror.CodeNotFound:           codes.NotFound,
	tkerror.CodeMatchTimeout:       codes.DeadlineExceeded,
	tkerror.CodeCanceled:           codes.Canceled,
	tkerror.CodeServiceUnavailable: codes.Unavailable,
	tkerror.CodeInvalidConfig:      codes.FailedPrecondition,
	tkerror.CodeMissingConfig:      codes.FailedPrecondition,
}

// StatusCode returns the gRPC status code for err
func StatusCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if e, ok := tkerror.As(err); ok {
		if c, ok := codeMap[e.Code()]; ok {
			return c
		}
		return codes.Internal
	}
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	}
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	return codes.Internal
}

// ToStatus converts err into a gRPC status error. Errors that already are
// status errors pass through; the message of structured errors is kept.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	msg := err.Error()
	if e, ok := tkerror.As(err); ok {
		msg = string(e.Code()) + ": " + e.Message()
	}
	return status.Error(StatusCode(err), msg)
}
