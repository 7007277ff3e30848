package handlers

import (
	"context"
	"net/http"
	"time"

	"body-echo-api/internal/middleware"
	"body-echo-api/internal/services"
	"body-echo-api/pkg/lambda"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "body-echo-api/internal/handlers"

// EchoHandler answers an event with its own JSON body
type EchoHandler struct {
	echoService services.EchoService
	logger      *logrus.Logger
}

// NewEchoHandler creates a new echo handler
func NewEchoHandler(echoService services.EchoService, logger *logrus.Logger) *EchoHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &EchoHandler{
		echoService: echoService,
		logger:      logger,
	}
}

// HandleEcho processes one event. A missing body yields a 400 response;
// a body that does not decode is returned as an error for the host to report.
func (h *EchoHandler) HandleEcho(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	start := time.Now()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "EchoHandler.HandleEcho")
	defer span.End()

	fields := logrus.Fields{
		"request_id": req.RequestID,
		"method":     req.Method,
		"path":       req.Path,
	}

	if req.Body == nil {
		span.SetAttributes(attribute.Int("http.status_code", http.StatusBadRequest))

		fields["status_code"] = http.StatusBadRequest
		fields["latency_ms"] = latencyMillis(start)
		h.logger.WithFields(fields).Warn("Event has no body")

		return lambda.JSONResponse(http.StatusBadRequest, invalidBodyPayload), nil
	}

	out, err := h.echoService.Echo(ctx, []byte(*req.Body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		fields["error_kind"] = errorKind(err)
		fields["latency_ms"] = latencyMillis(start)
		h.logger.WithFields(fields).WithError(err).Error("Failed to decode body")

		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", http.StatusOK))

	fields["status_code"] = http.StatusOK
	fields["latency_ms"] = latencyMillis(start)
	h.logger.WithFields(fields).Info("Invocation completed")

	return lambda.JSONResponse(http.StatusOK, out), nil
}

// @Summary Echo a JSON body
// @Description Decodes the request body as JSON and returns its re-encoding. An empty body is rejected.
// @Tags echo
// @Accept json
// @Produce json
// @Param body body object true "Any JSON value"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /echo [post]
func (h *EchoHandler) Echo(c *gin.Context) {
	req, err := lambda.FromHTTPRequest(c.Request)
	if err != nil {
		_ = c.Error(err)
		return
	}
	req.RequestID = c.GetString(middleware.RequestIDKey)

	resp, err := h.HandleEcho(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
}

func latencyMillis(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / 1000000
}
