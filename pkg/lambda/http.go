package lambda

import (
	"fmt"
	"io"
	"net/http"
)

// FromHTTPRequest converts an HTTP request into the request shape the
// Lambda handlers consume. An empty request body is treated as absent.
func FromHTTPRequest(r *http.Request) (*Request, error) {
	headers := make(map[string]string, len(r.Header))
	for key, values := range r.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	req := &Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: headers,
	}

	if r.Body == nil {
		return req, nil
	}
	defer r.Body.Close()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(raw) > 0 {
		body := string(raw)
		req.Body = &body
	}

	return req, nil
}
