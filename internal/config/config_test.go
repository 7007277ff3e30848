package config

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "LOG_LEVEL", "LOG_FORMAT", "TRACING_ENABLED",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "SERVICE_NAME", "STAGE",
		"AWS_LAMBDA_FUNCTION_NAME", "AWS_LAMBDA_FUNCTION_VERSION", "AWS_REGION",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "development")
	}
	if cfg.Port != "8081" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8081")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.Tracing.Exporting() {
		t.Error("Tracing.Exporting() = true, want false")
	}
	if cfg.Serverless.IsLambda {
		t.Error("Serverless.IsLambda = true outside Lambda")
	}
	if got := cfg.Serverless.DeploymentMode(); got != "server" {
		t.Errorf("DeploymentMode() = %q, want %q", got, "server")
	}
}

func TestLoad_Lambda(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "body-echo-dev")
	t.Setenv("AWS_REGION", "ap-southeast-2")
	t.Setenv("STAGE", "prod")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if !cfg.Serverless.IsLambda {
		t.Fatal("Serverless.IsLambda = false inside Lambda")
	}
	if cfg.Serverless.FunctionName != "body-echo-dev" {
		t.Errorf("FunctionName = %q", cfg.Serverless.FunctionName)
	}
	if cfg.Serverless.Region != "ap-southeast-2" {
		t.Errorf("Region = %q", cfg.Serverless.Region)
	}
	if cfg.Serverless.Stage != "prod" {
		t.Errorf("Stage = %q", cfg.Serverless.Stage)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json in Lambda", cfg.Log.Format)
	}
	if got := cfg.Serverless.DeploymentMode(); got != "serverless" {
		t.Errorf("DeploymentMode() = %q, want %q", got, "serverless")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Environment != "production" || cfg.Port != "9000" {
		t.Errorf("got Environment=%q Port=%q", cfg.Environment, cfg.Port)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("got Log=%+v", cfg.Log)
	}
	if !cfg.Tracing.Exporting() {
		t.Error("Tracing.Exporting() = false with an endpoint set")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown environment", key: "ENVIRONMENT", value: "qa"},
		{name: "non-numeric port", key: "PORT", value: "http"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q returned no error", tt.key, tt.value)
			}
		})
	}
}
