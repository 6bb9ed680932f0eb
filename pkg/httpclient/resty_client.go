package httpclient

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Sender interface.
type RestyClient struct {
	client *resty.Client
	log    Logger
}

// NewRestyClient creates a new RestyClient with the specified timeout.
// Certificate verification is disabled: the lab deployments this transport
// talks to serve self-signed certificates.
func NewRestyClient(timeout time.Duration, log Logger) *RestyClient {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	return &RestyClient{client: c, log: ensureLogger(log)}
}

// SendMessage performs the request and returns the raw response body.
func (r *RestyClient) SendMessage(ctx context.Context, method, description, url string, opts ...RequestOption) (string, error) {
	resp, err := r.execute(ctx, method, description, url, opts...)
	if err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

// SendMessageJSON performs the request and decodes the response body as a
// JSON object.
func (r *RestyClient) SendMessageJSON(ctx context.Context, method, description, url string, opts ...RequestOption) (map[string]interface{}, error) {
	resp, err := r.execute(ctx, method, description, url, opts...)
	if err != nil {
		return nil, err
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, fmt.Errorf("decode json response: %w", err)
	}
	return decoded, nil
}

func (r *RestyClient) execute(ctx context.Context, method, description, url string, opts ...RequestOption) (*resty.Response, error) {
	options := applyOptions(opts)

	req := r.client.R().SetContext(ctx)
	if options.basicAuth != nil {
		req.SetBasicAuth(options.basicAuth.Username, options.basicAuth.Password)
	}
	if len(options.headers) > 0 {
		req.SetHeaders(options.headers)
	}

	r.log.DebugObj(description, "request", map[string]interface{}{
		"method": method,
		"url":    url,
	})

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	if resp.IsError() {
		snippet := readBodySnippet(resp.Body())
		return nil, fmt.Errorf("http response status %d: %s", resp.StatusCode(), snippet)
	}
	return resp, nil
}

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
