package tracer

import (
	"context"
	"testing"

	"notepad-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestInitTracerDisabledIsNoop(t *testing.T) {
	shutdown := InitTracer(config.TelemetryConfig{OtelEnabled: false})
	assert.NoError(t, shutdown(context.Background()))
}
