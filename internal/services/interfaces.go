package services

import (
	"context"
)

// EchoService defines the operations behind the echo function
type EchoService interface {
	// Echo decodes body as a single JSON value and returns its re-encoding.
	// Object member order is preserved.
	Echo(ctx context.Context, body []byte) ([]byte, error)
}
