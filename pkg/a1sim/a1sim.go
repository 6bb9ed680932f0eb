// Package a1sim implements a client for the near-RT RIC A1 simulators
// deployed alongside the SMO.
package a1sim

import (
	"context"
	"net/http"

	"github.com/o-ran-sc/oransdk-go/pkg/httpclient"
)

// Client talks to a single A1 simulator instance.
type Client struct {
	baseURL string
	sender  httpclient.Sender
}

// NewClient creates a Client for the simulator at baseURL.
func NewClient(baseURL string, sender httpclient.Sender) *Client {
	return &Client{baseURL: baseURL, sender: sender}
}

// Status fetches the simulator liveness answer, a plain-text string.
func (c *Client) Status(ctx context.Context) (string, error) {
	url := c.baseURL + "/"
	return c.sender.SendMessage(ctx, http.MethodGet, "Get A1 simulator status", url)
}
