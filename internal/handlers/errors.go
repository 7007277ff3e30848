package handlers

import "body-echo-api/internal/services"

// InvalidBodyMessage is returned when the event has no body
const InvalidBodyMessage = "Invalid request body"

var invalidBodyPayload = []byte(`{"message": "` + InvalidBodyMessage + `"}`)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// errorKind classifies an error the handler hands back to the host
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case services.IsDecodeError(err):
		return "decode"
	default:
		return "internal"
	}
}
