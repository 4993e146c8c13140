package otellib

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/QuangTung97/event-checkout/config"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// InitOtel creates the tracer provider, exporting to jaeger when enabled
func InitOtel(serviceName string, env string, conf config.JaegerConfig) (*sdktrace.TracerProvider, func()) {
	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("environment", env),
	)

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}

	if conf.Enabled {
		exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(conf.URL)))
		if err != nil {
			panic(err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)

	return tp, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := tp.Shutdown(ctx)
		if err != nil {
			fmt.Println("[ERROR] shutdown tracer provider:", err)
		}
	}
}

// UnaryServerInterceptor ...
func UnaryServerInterceptor(tp trace.TracerProvider) grpc.UnaryServerInterceptor {
	return otelgrpc.UnaryServerInterceptor(otelgrpc.WithTracerProvider(tp))
}

// HTTPTraceMiddleware starts a server span per request
func HTTPTraceMiddleware(tp trace.TracerProvider) func(next http.Handler) http.Handler {
	tracer := tp.Tracer("http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
			)
			defer span.End()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
