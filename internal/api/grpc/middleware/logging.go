package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/mermory-server/internal/logger"
)

// Logging is a unary interceptor that logs gRPC requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs method name, duration and status for each unary request.
// Failures caused by the caller are logged at warn level, the rest at error.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	l.logger.Debug("gRPC request started", "method", info.FullMethod)

	resp, err := handler(ctx, req)

	duration := time.Since(start)

	statusCode := codes.OK
	if err != nil {
		if st, ok := status.FromError(err); ok {
			statusCode = st.Code()
		} else {
			statusCode = codes.Internal
		}
	}

	args := []any{
		"method", info.FullMethod,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode.String(),
	}

	switch {
	case err == nil:
		l.logger.Info("gRPC request completed", args...)
	case isClientCode(statusCode):
		l.logger.Warn("gRPC request rejected", append(args, "error", err.Error())...)
	default:
		l.logger.Error("gRPC request failed", append(args, "error", err.Error())...)
	}

	return resp, err
}

func isClientCode(c codes.Code) bool {
	switch c {
	case codes.InvalidArgument, codes.NotFound, codes.FailedPrecondition,
		codes.Unauthenticated, codes.PermissionDenied, codes.Canceled:
		return true
	default:
		return false
	}
}
