package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"booking-app/config"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const TraceIDHeader = "X-Trace-Id"

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noop(context.Context) error { return nil }

// Setup installs a global OTLP/gRPC tracer provider. When tracing is disabled
// or no endpoint is configured it does nothing and returns a no-op shutdown.
func Setup(ctx context.Context, cfg config.TelemetryConfig, serviceName string) (ShutdownFunc, error) {
	if !cfg.Enabled || cfg.OtlpEndpoint == "" {
		return noop, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}

	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// otlptracegrpc wants host:port.
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.OtlpEndpoint, "http://"), "https://")
	exporter, err := otlptracegrpc.New(dialCtx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(Sampler(cfg.SampleRatio)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// Sampler clamps ratio to (0, 1]; anything out of range samples everything.
func Sampler(ratio float64) sdktrace.Sampler {
	if ratio <= 0 || ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.TraceIDRatioBased(ratio)
}

// Middleware returns the gin handlers for request tracing: otelgin spans plus
// the trace id echoed in X-Trace-Id. Health checks are not traced.
func Middleware(serviceName string) []gin.HandlerFunc {
	traced := otelgin.Middleware(serviceName)
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if c.Request.URL.Path == "/health" {
				c.Next()
				return
			}
			traced(c)
		},
		func(c *gin.Context) {
			if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.IsValid() {
				c.Header(TraceIDHeader, sc.TraceID().String())
			}
		},
	}
}
