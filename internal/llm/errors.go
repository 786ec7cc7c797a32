package llm

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsTransient reports whether the error is expected to resolve itself with a
// short wait: quota exhaustion, server errors, unavailability and deadlines.
// Everything else (auth failures, malformed requests) fails immediately.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	s, ok := status.FromError(err)
	if !ok {
		return false
	}
	switch s.Code() {
	case codes.ResourceExhausted, codes.Internal, codes.Unavailable, codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}
