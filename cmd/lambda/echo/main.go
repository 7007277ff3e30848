package main

import (
	"context"

	"body-echo-api/internal/config"
	"body-echo-api/internal/handlers"
	"body-echo-api/pkg/lambda"
	"body-echo-api/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-lambda-go/otellambda"
)

var container *server.Container

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(context.Background(), cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func main() {
	echoHandler := handlers.NewEchoHandler(container.EchoService, container.Logger)
	handler := lambda.Adapt(echoHandler.HandleEcho)

	instrumented := otellambda.InstrumentHandler(handler,
		otellambda.WithTracerProvider(container.TracerProvider),
		otellambda.WithFlusher(container.TracerProvider),
	)

	awslambda.StartWithOptions(instrumented,
		awslambda.WithEnableSIGTERM(func() {
			if err := container.Close(context.Background()); err != nil {
				container.Logger.WithError(err).Error("Failed to close container")
			}
		}),
	)
}
