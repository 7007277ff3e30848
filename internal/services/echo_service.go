package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "body-echo-api/internal/services"

// echoService implements EchoService
type echoService struct {
	logger *logrus.Logger
}

// NewEchoService creates a new echo service
func NewEchoService(logger *logrus.Logger) EchoService {
	if logger == nil {
		logger = logrus.New()
	}
	return &echoService{
		logger: logger,
	}
}

// Echo decodes body and re-encodes the decoded value
func (s *echoService) Echo(ctx context.Context, body []byte) ([]byte, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "EchoService.Echo")
	defer span.End()

	span.SetAttributes(attribute.Int("echo.body.bytes_in", len(body)))

	doc, err := decodeDocument(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, err
	}

	out := encodeDocument(doc)
	span.SetAttributes(attribute.Int("echo.body.bytes_out", len(out)))

	s.logger.WithFields(logrus.Fields{
		"bytes_in":  len(body),
		"bytes_out": len(out),
	}).Debug("Body re-encoded")

	return out, nil
}
