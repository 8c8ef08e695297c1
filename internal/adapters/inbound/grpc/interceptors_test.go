package grpc_test

import (
	"bytes"
	"context"
	"testing"

	inboundgrpc "github.com/architeacher/device-registry/internal/adapters/inbound/grpc"
	"github.com/architeacher/device-registry/internal/config"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func captureContext(t *testing.T, md metadata.MD) context.Context {
	t.Helper()

	ctx := t.Context()
	if md != nil {
		ctx = metadata.NewIncomingContext(ctx, md)
	}

	var captured context.Context

	_, err := inboundgrpc.ContextExtractorInterceptor()(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
		captured = ctx

		return "response", nil
	})
	require.NoError(t, err)

	return captured
}

func TestContextExtractorInterceptor_ExtractsIDs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name              string
		metadata          metadata.MD
		expectedRequestID string
		expectedTraceID   string
	}{
		{
			name:              "extracts request ID from metadata",
			metadata:          metadata.Pairs(inboundgrpc.MetadataKeyRequestID, "test-request-123"),
			expectedRequestID: "test-request-123",
		},
		{
			name:              "uses first value when multiple request IDs present",
			metadata:          metadata.Pairs(inboundgrpc.MetadataKeyRequestID, "first-id", inboundgrpc.MetadataKeyRequestID, "second-id"),
			expectedRequestID: "first-id",
		},
		{
			name: "extracts trace ID alongside request ID",
			metadata: metadata.Pairs(
				inboundgrpc.MetadataKeyRequestID, "request-1",
				inboundgrpc.MetadataKeyTraceID, "trace-1",
			),
			expectedRequestID: "request-1",
			expectedTraceID:   "trace-1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := captureContext(t, tc.metadata)

			require.Equal(t, tc.expectedRequestID, inboundgrpc.GetRequestID(ctx))
			require.Equal(t, tc.expectedTraceID, inboundgrpc.GetTraceID(ctx))
		})
	}
}

func TestContextExtractorInterceptor_GeneratesRequestIDWhenMissing(t *testing.T) {
	t.Parallel()

	first := inboundgrpc.GetRequestID(captureContext(t, nil))
	second := inboundgrpc.GetRequestID(captureContext(t, metadata.Pairs("x-other", "value")))

	require.Len(t, first, 36, "request ID should be a UUID")
	require.Len(t, second, 36, "request ID should be a UUID")
	require.NotEqual(t, first, second)
}

func TestContextExtractorInterceptor_PropagatesHandlerError(t *testing.T) {
	t.Parallel()

	resp, err := inboundgrpc.ContextExtractorInterceptor()(t.Context(), nil, &grpc.UnaryServerInfo{}, func(context.Context, any) (any, error) {
		return nil, grpc.ErrServerStopped
	})

	require.ErrorIs(t, err, grpc.ErrServerStopped)
	require.Nil(t, resp)
}

func TestGetIDs_EmptyContext(t *testing.T) {
	t.Parallel()

	require.Empty(t, inboundgrpc.GetRequestID(t.Context()))
	require.Empty(t, inboundgrpc.GetTraceID(t.Context()))
}

func TestAccessLogInterceptor(t *testing.T) {
	t.Parallel()

	const (
		healthCheck = "/grpc.health.v1.Health/Check"
		reflection  = "/grpc.reflection.v1.ServerReflection/ServerReflectionInfo"
	)

	cases := []struct {
		name           string
		config         config.AccessLog
		fullMethod     string
		metadata       metadata.MD
		handlerErr     error
		expectLog      bool
		expectMetadata bool
		expectErrorLog bool
	}{
		{
			name:       "logs request when enabled",
			config:     config.AccessLog{Enabled: true, LogHealthChecks: true},
			fullMethod: reflection,
			expectLog:  true,
		},
		{
			name:       "skips logging when disabled",
			config:     config.AccessLog{Enabled: false},
			fullMethod: reflection,
		},
		{
			name:       "skips health check when LogHealthChecks is false",
			config:     config.AccessLog{Enabled: true},
			fullMethod: healthCheck,
		},
		{
			name:       "logs health check when LogHealthChecks is true",
			config:     config.AccessLog{Enabled: true, LogHealthChecks: true},
			fullMethod: healthCheck,
			expectLog:  true,
		},
		{
			name:           "includes sanitized metadata when IncludeMetadata is true",
			config:         config.AccessLog{Enabled: true, IncludeMetadata: true},
			fullMethod:     reflection,
			metadata:       metadata.Pairs("x-custom-header", "custom-value", "authorization", "Bearer secret"),
			expectLog:      true,
			expectMetadata: true,
		},
		{
			name:           "logs error when handler returns error",
			config:         config.AccessLog{Enabled: true},
			fullMethod:     reflection,
			handlerErr:     status.Error(codes.Unavailable, "store down"),
			expectLog:      true,
			expectErrorLog: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.NewWithWriter("info", "json", &buf)

			interceptor := inboundgrpc.AccessLogInterceptor(log, tc.config)

			ctx := context.WithValue(t.Context(), logger.ContextKeyRequestID, "test-request-id")
			if tc.metadata != nil {
				ctx = metadata.NewIncomingContext(ctx, tc.metadata)
			}

			resp, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: tc.fullMethod}, func(context.Context, any) (any, error) {
				if tc.handlerErr != nil {
					return nil, tc.handlerErr
				}

				return "response", nil
			})

			if tc.handlerErr != nil {
				require.Error(t, err)
				require.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.Equal(t, "response", resp)
			}

			output := buf.String()

			if !tc.expectLog {
				require.Empty(t, output)

				return
			}

			require.Contains(t, output, tc.fullMethod)
			require.Contains(t, output, "test-request-id")

			if tc.expectMetadata {
				require.Contains(t, output, "custom-value")
				require.Contains(t, output, "[REDACTED]")
				require.NotContains(t, output, "Bearer secret")
			}

			if tc.expectErrorLog {
				require.Contains(t, output, "gRPC request failed")
				require.Contains(t, output, "Unavailable")
			} else {
				require.Contains(t, output, "gRPC request completed")
			}
		})
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	interceptor := inboundgrpc.RecoveryInterceptor(logger.NewBufferedTestLogger(&buf))

	resp, err := interceptor(t.Context(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Boom"}, func(context.Context, any) (any, error) {
		panic("boom")
	})

	require.Nil(t, resp)
	require.Equal(t, codes.Internal, status.Code(err))
	require.Contains(t, buf.String(), "panic recovered")
	require.Contains(t, buf.String(), "/svc/Boom")
}

type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s fakeServerStream) Context() context.Context {
	return s.ctx
}

func TestStreamInterceptors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := logger.NewWithWriter("info", "json", &buf)
	ctx := metadata.NewIncomingContext(t.Context(), metadata.Pairs(inboundgrpc.MetadataKeyRequestID, "watch-1"))
	info := &grpc.StreamServerInfo{FullMethod: "/grpc.health.v1.Health/Watch", IsServerStream: true}

	extract := inboundgrpc.ContextExtractorStreamInterceptor()
	access := inboundgrpc.AccessLogStreamInterceptor(log, config.AccessLog{Enabled: true, LogHealthChecks: true})

	var seen string

	err := extract(nil, fakeServerStream{ctx: ctx}, info, func(srv any, ss grpc.ServerStream) error {
		return access(srv, ss, info, func(_ any, ss grpc.ServerStream) error {
			seen = inboundgrpc.GetRequestID(ss.Context())

			return status.Error(codes.Canceled, "client went away")
		})
	})

	require.Equal(t, codes.Canceled, status.Code(err))
	require.Equal(t, "watch-1", seen)
	require.Contains(t, buf.String(), `"level":"warn"`)
	require.Contains(t, buf.String(), "watch-1")
	require.Contains(t, buf.String(), "Canceled")
}

func TestRecoveryStreamInterceptor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	interceptor := inboundgrpc.RecoveryStreamInterceptor(logger.NewBufferedTestLogger(&buf))

	err := interceptor(nil, fakeServerStream{ctx: t.Context()}, &grpc.StreamServerInfo{FullMethod: "/svc/Stream"}, func(any, grpc.ServerStream) error {
		panic("boom")
	})

	require.Equal(t, codes.Internal, status.Code(err))
	require.Contains(t, buf.String(), "/svc/Stream")
}

func TestAccessLogInterceptor_LevelFollowsCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err   error
		level string
	}{
		{err: nil, level: "info"},
		{err: status.Error(codes.NotFound, "missing"), level: "warn"},
		{err: status.Error(codes.Unavailable, "store down"), level: "error"},
	}

	for _, tc := range cases {
		var buf bytes.Buffer

		interceptor := inboundgrpc.AccessLogInterceptor(logger.NewWithWriter("info", "json", &buf), config.AccessLog{Enabled: true})

		_, _ = interceptor(t.Context(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Call"}, func(context.Context, any) (any, error) {
			return nil, tc.err
		})

		require.Contains(t, buf.String(), `"level":"`+tc.level+`"`)
	}
}
