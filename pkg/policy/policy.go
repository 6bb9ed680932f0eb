// Package policy implements a client for the ONAP policy framework
// healthcheck surfaces, spread across the PAP and API components.
package policy

import (
	"context"
	"net/http"

	"github.com/o-ran-sc/oransdk-go/pkg/httpclient"
	"github.com/o-ran-sc/oransdk-go/pkg/settings"
)

// Client talks to the policy framework. PAP and API live behind separate
// base URLs, both injected at construction.
type Client struct {
	papURL string
	apiURL string
	sender httpclient.Sender
}

// NewClient creates a Client for the policy deployment reachable at the
// given PAP and API base URLs.
func NewClient(papURL, apiURL string, sender httpclient.Sender) *Client {
	return &Client{papURL: papURL, apiURL: apiURL, sender: sender}
}

// PapComponentsStatus fetches the health of every component PAP tracks.
func (c *Client) PapComponentsStatus(ctx context.Context, auth settings.BasicAuth) (map[string]interface{}, error) {
	url := c.papURL + "/policy/pap/v1/components/healthcheck"
	return c.sender.SendMessageJSON(ctx, http.MethodGet, "Get status of policy components", url,
		httpclient.WithBasicAuth(auth))
}

// APIHealthcheck probes the policy API healthcheck endpoint.
func (c *Client) APIHealthcheck(ctx context.Context, auth settings.BasicAuth) (map[string]interface{}, error) {
	url := c.apiURL + "/policy/api/v1/healthcheck"
	return c.sender.SendMessageJSON(ctx, http.MethodGet, "Get status of policy api", url,
		httpclient.WithBasicAuth(auth))
}
