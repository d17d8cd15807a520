// Package faas bridges API-Gateway-style proxy events and the chi route
// tree, so the same handlers serve the standalone process and the function
// platform.
package faas

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// functionPrefix is stripped from event paths so function-platform routing
// (/.netlify/functions/county_data) reaches the same /county_data route.
const functionPrefix = "/.netlify/functions"

// responseRecorder is a minimal http.ResponseWriter capturing status,
// headers and body for the function response envelope.
type responseRecorder struct {
	status int
	header http.Header
	body   bytes.Buffer
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{status: http.StatusOK, header: http.Header{}}
}

func (r *responseRecorder) Header() http.Header {
	return r.header
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	return r.body.Write(p)
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
}

// HTTPHandler wraps an http.Handler as a Lambda proxy handler.
func HTTPHandler(h http.Handler) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		req, err := buildRequest(ctx, event)
		if err != nil {
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusBadRequest,
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       `{"error": "malformed function event"}`,
			}, nil
		}

		rec := newResponseRecorder()
		h.ServeHTTP(rec, req)

		headers := make(map[string]string, len(rec.header))
		for name, values := range rec.header {
			if len(values) > 0 {
				headers[name] = values[len(values)-1]
			}
		}

		return events.APIGatewayProxyResponse{
			StatusCode:      rec.status,
			Headers:         headers,
			Body:            rec.body.String(),
			IsBase64Encoded: false,
		}, nil
	}
}

func buildRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	var body []byte
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, err
		}
		body = decoded
	} else {
		body = []byte(event.Body)
	}

	method := event.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}

	path := event.Path
	if path == "" {
		path = "/"
	}
	path = strings.TrimPrefix(path, functionPrefix)

	req, err := http.NewRequestWithContext(ctx, method, path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for name, value := range event.Headers {
		req.Header.Set(name, value)
	}
	return req, nil
}
