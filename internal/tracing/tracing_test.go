package tracing

import (
	"context"
	"testing"

	"body-echo-api/internal/config"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

func TestInit_WithoutExporter(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	tp, shutdown, err := Init(context.Background(), config.TracingConfig{ServiceName: "body-echo"}, logger)
	if err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	if tp == nil {
		t.Fatal("tracer provider is nil")
	}
	if otel.GetTracerProvider() != tp {
		t.Error("global tracer provider was not installed")
	}

	_, span := otel.Tracer("test").Start(context.Background(), "span")
	if !span.SpanContext().IsValid() {
		t.Error("span context is not valid")
	}
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown returned error: %v", err)
	}
}
