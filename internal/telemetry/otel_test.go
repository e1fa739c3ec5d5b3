package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-app/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TelemetryConfig{Enabled: false, OtlpEndpoint: "localhost:4317"}, "booking-app")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	shutdown, err = Setup(context.Background(), config.TelemetryConfig{Enabled: true}, "booking-app")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), Sampler(0).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), Sampler(1.5).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), Sampler(0.25).Description())
}

func TestMiddleware_TraceHeader(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample()))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware("booking-app")...)
	r.GET("/venues", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/venues", nil))
	assert.Len(t, w.Header().Get(TraceIDHeader), 32)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, w.Header().Get(TraceIDHeader))
}
