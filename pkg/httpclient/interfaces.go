package httpclient

import (
	"context"

	"github.com/o-ran-sc/oransdk-go/pkg/settings"
)

// Sender abstracts the send-message primitives so service clients can
// inject mocks or different transports. Every call names the HTTP method,
// a short description of the action for the logs, and the full target URL.
type Sender interface {
	// SendMessage performs the request and returns the raw response body.
	SendMessage(ctx context.Context, method, description, url string, opts ...RequestOption) (string, error)
	// SendMessageJSON performs the request and decodes the response body
	// as a JSON object.
	SendMessageJSON(ctx context.Context, method, description, url string, opts ...RequestOption) (map[string]interface{}, error)
}

// RequestOption customises a single request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	basicAuth *settings.BasicAuth
	headers   map[string]string
}

// WithBasicAuth attaches basic-auth credentials to the request.
func WithBasicAuth(auth settings.BasicAuth) RequestOption {
	return func(o *requestOptions) {
		o.basicAuth = &auth
	}
}

// WithHeaders attaches extra headers to the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *requestOptions) {
		o.headers = headers
	}
}

func applyOptions(opts []RequestOption) requestOptions {
	var options requestOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	return options
}
