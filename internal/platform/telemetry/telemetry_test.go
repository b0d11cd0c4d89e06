package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNew_DisabledIsNoop(t *testing.T) {
	p, err := New(context.Background(), &Config{Enabled: false})

	require.NoError(t, err)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestTraceID(t *testing.T) {
	assert.Empty(t, TraceID(context.Background()))

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "approve")
	defer span.End()

	assert.Equal(t, span.SpanContext().TraceID().String(), TraceID(ctx))
	assert.Len(t, TraceID(ctx), 32)
}

func TestMiddleware_PassesThrough(t *testing.T) {
	engine := gin.New()
	engine.Use(Middleware("quotations-test")...)
	engine.GET("/api/v1/tags", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
