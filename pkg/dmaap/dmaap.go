// Package dmaap implements a client for the ONAP DMaaP message router.
package dmaap

import (
	"context"
	"net/http"

	"github.com/o-ran-sc/oransdk-go/pkg/httpclient"
)

// Client talks to the message router reachable at a single base URL.
type Client struct {
	baseURL string
	sender  httpclient.Sender
}

// NewClient creates a Client for the message router at baseURL.
func NewClient(baseURL string, sender httpclient.Sender) *Client {
	return &Client{baseURL: baseURL, sender: sender}
}

// Topics lists every topic known to the message router.
func (c *Client) Topics(ctx context.Context) (map[string]interface{}, error) {
	url := c.baseURL + "/topics"
	return c.sender.SendMessageJSON(ctx, http.MethodGet, "Get all DMaaP topics", url)
}
