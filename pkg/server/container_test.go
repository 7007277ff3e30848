package server

import (
	"context"
	"testing"

	"body-echo-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "8080",
		Log: config.LogConfig{
			Level:  "panic",
			Format: "text",
		},
		Tracing: config.TracingConfig{
			ServiceName: "body-echo",
		},
	}
}

// TestNewContainer verifies that the container can be created successfully
func TestNewContainer(t *testing.T) {
	container, err := NewContainer(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if container == nil {
		t.Fatal("Container is nil")
	}
	if container.EchoService == nil {
		t.Error("EchoService is nil")
	}
	if container.Logger == nil {
		t.Error("Logger is nil")
	}
	if container.TracerProvider == nil {
		t.Error("TracerProvider is nil")
	}

	if err := container.Close(context.Background()); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
	// Closing twice is a no-op
	if err := container.Close(context.Background()); err != nil {
		t.Errorf("Second close returned error: %v", err)
	}
}

func TestNewContainer_NilConfig(t *testing.T) {
	if _, err := NewContainer(context.Background(), nil); err == nil {
		t.Error("NewContainer(nil) returned no error")
	}
}

func TestContainer_EchoService(t *testing.T) {
	container, err := NewContainer(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer container.Close(context.Background())

	out, err := container.EchoService.Echo(context.Background(), []byte(`{"a": 1}`))
	if err != nil {
		t.Fatalf("Echo() returned error: %v", err)
	}
	if string(out) != `{"a": 1}` {
		t.Errorf("Echo() = %s", out)
	}
}
