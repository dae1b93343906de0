package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFromContext_FallsBackToGlobal ensures a bare context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestWithName_StoresScopedLogger ensures WithName stores a logger distinct from the global one.
func TestWithName_StoresScopedLogger(t *testing.T) {
	t.Parallel()

	ctx := WithName(context.Background(), "component")

	require.NotNil(t, FromContext(ctx))
	require.NotSame(t, Logger(), FromContext(ctx))
}
