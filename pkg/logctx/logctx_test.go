package logctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return zap.New(core).Sugar(), logs
}

func TestFromCtxPrefersStoredLogger(t *testing.T) {
	base, _ := observedLogger()
	stored, logs := observedLogger()

	ctx := context.WithValue(context.Background(), KeyLogger, stored)
	FromCtx(ctx, base).Infow("hello")

	require.Equal(t, 1, logs.Len())
}

func TestFromCtxEnrichesWithTraceAndUser(t *testing.T) {
	base, logs := observedLogger()

	ctx := context.WithValue(context.Background(), KeyTraceID, "trace-1")
	ctx = context.WithValue(ctx, KeyUserID, "user-1")
	FromCtx(ctx, base).Infow("hello")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "user-1", fields["user_id"])
}

func TestFromCtxIgnoresForeignKeys(t *testing.T) {
	base, logs := observedLogger()

	// Same literal under a different key type must stay invisible.
	type otherKey string
	ctx := context.WithValue(context.Background(), otherKey("traceID"), "trace-1")
	FromCtx(ctx, base).Infow("hello")

	require.Equal(t, 1, logs.Len())
	_, found := logs.All()[0].ContextMap()["trace_id"]
	assert.False(t, found)
}
