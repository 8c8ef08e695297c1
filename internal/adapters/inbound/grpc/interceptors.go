package grpc

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/architeacher/device-registry/internal/config"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	MetadataKeyRequestID = "request-id"
	MetadataKeyTraceID   = "trace-id"

	healthServicePrefix = "/grpc.health.v1.Health/"
	redacted            = "[REDACTED]"
)

var sensitiveMetadata = map[string]struct{}{
	"authorization": {},
	"api-key":       {},
	"cookie":        {},
}

// contextStream substitutes the stream context so stream handlers see the
// same request ids as unary ones.
type contextStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s contextStream) Context() context.Context {
	return s.ctx
}

// ContextExtractorInterceptor copies the request and trace ids from the
// incoming metadata onto the context, generating a request id when absent.
func ContextExtractorInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		return handler(withCallIDs(ctx), req)
	}
}

// ContextExtractorStreamInterceptor does the same for streaming calls such
// as Health/Watch.
func ContextExtractorStreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return handler(srv, contextStream{ServerStream: ss, ctx: withCallIDs(ss.Context())})
	}
}

func withCallIDs(ctx context.Context) context.Context {
	md, _ := metadata.FromIncomingContext(ctx)

	requestID := firstValue(md, MetadataKeyRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	if traceID := firstValue(md, MetadataKeyTraceID); traceID != "" {
		ctx = context.WithValue(ctx, logger.ContextKeyTraceID, traceID)
	}

	return context.WithValue(ctx, logger.ContextKeyRequestID, requestID)
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}

	return ""
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(logger.ContextKeyRequestID).(string)

	return id
}

func GetTraceID(ctx context.Context) string {
	return logger.TraceIDFromContext(ctx)
}

// AccessLogInterceptor writes one line per unary call. Client-caused codes
// log at warn, server-side failures at error.
func AccessLogInterceptor(log logger.Logger, cfg config.AccessLog) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !shouldLog(cfg, info.FullMethod) {
			return handler(ctx, req)
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		logCall(ctx, log, cfg, info.FullMethod, time.Since(start), err)

		return resp, err
	}
}

// AccessLogStreamInterceptor logs a streaming call once it ends.
func AccessLogStreamInterceptor(log logger.Logger, cfg config.AccessLog) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if !shouldLog(cfg, info.FullMethod) {
			return handler(srv, ss)
		}

		start := time.Now()
		err := handler(srv, ss)

		logCall(ss.Context(), log, cfg, info.FullMethod, time.Since(start), err)

		return err
	}
}

func shouldLog(cfg config.AccessLog, fullMethod string) bool {
	if !cfg.Enabled {
		return false
	}

	return cfg.LogHealthChecks || !strings.HasPrefix(fullMethod, healthServicePrefix)
}

func logCall(ctx context.Context, log logger.Logger, cfg config.AccessLog, method string, elapsed time.Duration, err error) {
	code := status.Code(err)

	event := log.WithLevel(levelFor(code)).
		Str("component", "grpc").
		Str("method", method).
		Str("request_id", GetRequestID(ctx)).
		Str("grpc_code", code.String()).
		Dur("duration", elapsed)

	if traceID := GetTraceID(ctx); traceID != "" {
		event = event.Str("trace_header_id", traceID)
	}

	if md, ok := metadata.FromIncomingContext(ctx); ok && cfg.IncludeMetadata {
		event = event.Any("metadata", sanitizeMetadata(md))
	}

	if err != nil {
		event.Str("error", status.Convert(err).Message()).Msg("gRPC request failed")

		return
	}

	event.Msg("gRPC request completed")
}

func levelFor(code codes.Code) zerolog.Level {
	switch code {
	case codes.OK:
		return zerolog.InfoLevel
	case codes.Canceled, codes.InvalidArgument, codes.NotFound, codes.AlreadyExists,
		codes.PermissionDenied, codes.FailedPrecondition, codes.OutOfRange, codes.Unauthenticated:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// RecoveryInterceptor turns a handler panic into codes.Internal.
func RecoveryInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if rvr := recover(); rvr != nil {
				resp, err = nil, panicked(ctx, log, info.FullMethod, rvr)
			}
		}()

		return handler(ctx, req)
	}
}

func RecoveryStreamInterceptor(log logger.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if rvr := recover(); rvr != nil {
				err = panicked(ss.Context(), log, info.FullMethod, rvr)
			}
		}()

		return handler(srv, ss)
	}
}

func panicked(ctx context.Context, log logger.Logger, method string, rvr any) error {
	ctxLog := log.WithContext(ctx)
	ctxLog.Error().
		Str("error", fmt.Sprintf("%v", rvr)).
		Str("stack", string(debug.Stack())).
		Str("method", method).
		Msg("panic recovered")

	return status.Error(codes.Internal, "internal server error")
}

func sanitizeMetadata(md metadata.MD) map[string]string {
	sanitized := make(map[string]string, len(md))

	for key, values := range md {
		switch _, sensitive := sensitiveMetadata[strings.ToLower(key)]; {
		case sensitive:
			sanitized[key] = redacted
		case len(values) > 0:
			sanitized[key] = values[0]
		}
	}

	return sanitized
}
