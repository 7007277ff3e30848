package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// ErrBodyNotString is returned when an event carries a body that is not a JSON string
var ErrBodyNotString = errors.New("event body is not a string")

// Event is the payload the Lambda runtime hands to the function. Direct
// invocations may carry only a body; API Gateway proxy events carry the rest.
type Event struct {
	Body            json.RawMessage   `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
	HTTPMethod      string            `json:"httpMethod"`
	Path            string            `json:"path"`
	Headers         map[string]string `json:"headers"`
}

// UnmarshalJSON reads each field by its exact key. The default decoder
// matches keys case-insensitively, which would take "Body" for "body".
func (e *Event) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*e = Event{}
	if body, ok := fields["body"]; ok {
		e.Body = body
	}

	for key, dst := range map[string]any{
		"isBase64Encoded": &e.IsBase64Encoded,
		"httpMethod":      &e.HTTPMethod,
		"path":            &e.Path,
		"headers":         &e.Headers,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("failed to decode event field %s: %w", key, err)
		}
	}
	return nil
}

// HasBody reports whether the body key was present in the event
func (e Event) HasBody() bool {
	return e.Body != nil
}

// ToRequest converts the event into a framework-agnostic request
func (e Event) ToRequest() (*Request, error) {
	req := &Request{
		Method:  e.HTTPMethod,
		Path:    e.Path,
		Headers: e.Headers,
	}

	if !e.HasBody() {
		return req, nil
	}

	// null would unmarshal into an empty string
	if string(e.Body) == "null" {
		return nil, fmt.Errorf("%w: null", ErrBodyNotString)
	}
	var body string
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBodyNotString, truncate(e.Body, 32))
	}

	if e.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 body: %w", err)
		}
		body = string(decoded)
	}

	req.Body = &body
	return req, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method    string            `json:"method"`
	Path      string            `json:"path"`
	Headers   map[string]string `json:"headers"`
	RequestID string            `json:"request_id"`
	// Body is nil when the event carried no body at all
	Body *string `json:"body"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// JSONResponse builds a response with a JSON content type
func JSONResponse(statusCode int, body []byte) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

// ToProxyResponse converts the response into the shape API Gateway expects
func (r *Response) ToProxyResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

// HandlerFunc is a framework-agnostic handler
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Adapt turns a HandlerFunc into a function the Lambda runtime can invoke.
// Errors from decoding the event or from the handler are returned as is so
// the runtime reports them as function errors.
func Adapt(h HandlerFunc) func(context.Context, Event) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event Event) (events.APIGatewayProxyResponse, error) {
		req, err := event.ToRequest()
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			req.RequestID = lc.AwsRequestID
		}

		resp, err := h(ctx, req)
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		return resp.ToProxyResponse(), nil
	}
}
