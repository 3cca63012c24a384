package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/hooked-store/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(&config.Config{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_ExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{
		App:     config.AppConfig{Version: "test", Environment: "test"},
		Tracing: config.TracingConfig{Enabled: true, ServiceName: "storefront-test"},
	}

	shutdown, err := SetupWithWriter(cfg, &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "checkout")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"checkout"`)
	assert.Contains(t, buf.String(), "storefront-test")
}
