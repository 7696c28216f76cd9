package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitProvider_DisabledIsNoop(t *testing.T) {
	shutdown, err := InitProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestTracer_StartsSpanWithoutProvider(t *testing.T) {
	ctx, span := Tracer().Start(context.Background(), "test")
	defer span.End()

	assert.NotNil(t, ctx)
}
