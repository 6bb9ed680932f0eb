// Package sdnc implements a client for the SDNC controller north-bound
// interface as deployed by the SMO installation.
package sdnc

import (
	"context"
	"net/http"

	"github.com/o-ran-sc/oransdk-go/pkg/httpclient"
	"github.com/o-ran-sc/oransdk-go/pkg/settings"
)

// Client talks to a single SDNC controller instance. The base URL and the
// transport are injected so tests can point the client anywhere.
type Client struct {
	baseURL string
	sender  httpclient.Sender
}

// NewClient creates a Client for the controller reachable at baseURL.
func NewClient(baseURL string, sender httpclient.Sender) *Client {
	return &Client{baseURL: baseURL, sender: sender}
}

// Status fetches the controller availability page and returns the raw
// response body.
func (c *Client) Status(ctx context.Context) (string, error) {
	url := c.baseURL + "/apidoc/explorer/"
	return c.sender.SendMessage(ctx, http.MethodGet, "Get status of SDNC component", url)
}

// ODUORUStatus fetches the du-to-ru connection state for the given node
// pair from the controller topology. Node names are interpolated into the
// RESTCONF path as-is.
func (c *Client) ODUORUStatus(ctx context.Context, oduNode, oruNode string, auth settings.BasicAuth) (map[string]interface{}, error) {
	url := c.baseURL + "/rests/data/network-topology:network-topology/" +
		"topology=topology-netconf/node=" + oduNode + "/yang-ext:mount/" +
		"o-ran-sc-du-hello-world:network-function/du-to-ru-connection=" + oruNode
	return c.sender.SendMessageJSON(ctx, http.MethodGet, "Get status of Odu Oru connectivity", url,
		httpclient.WithBasicAuth(auth))
}
