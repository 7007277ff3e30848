package server

import (
	"context"
	"fmt"

	"body-echo-api/internal/config"
	"body-echo-api/internal/logging"
	"body-echo-api/internal/services"
	"body-echo-api/internal/tracing"

	"github.com/sirupsen/logrus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *logrus.Logger
	TracerProvider *sdktrace.TracerProvider
	EchoService    services.EchoService

	// Internal dependencies
	services        *services.ServiceContainer
	shutdownTracing func(context.Context) error
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.New(cfg.Log)

	tp, shutdown, err := tracing.Init(ctx, cfg.Tracing, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	serviceContainer := services.NewServiceContainer(logger)

	container := &Container{
		Config:          cfg,
		Logger:          logger,
		TracerProvider:  tp,
		EchoService:     serviceContainer.EchoService,
		services:        serviceContainer,
		shutdownTracing: shutdown,
	}

	logger.WithFields(logrus.Fields{
		"environment":     cfg.Environment,
		"deployment_mode": cfg.Serverless.DeploymentMode(),
		"function":        cfg.Serverless.FunctionName,
		"stage":           cfg.Serverless.Stage,
		"tracing":         cfg.Tracing.Exporting(),
	}).Info("Container initialized")

	return container, nil
}

// Close cleans up all resources
func (c *Container) Close(ctx context.Context) error {
	if c.shutdownTracing != nil {
		if err := c.shutdownTracing(ctx); err != nil {
			return fmt.Errorf("failed to shut down tracing: %w", err)
		}
		c.shutdownTracing = nil
	}

	return nil
}
