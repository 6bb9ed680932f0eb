package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/o-ran-sc/oransdk-go/pkg/sdnc"
	"github.com/o-ran-sc/oransdk-go/pkg/settings"
)

// Credentials the RESTCONF north-bound accepts in the SMO deployment.
var sdncDefaultAuth = settings.BasicAuth{
	Username: "admin",
	Password: "Kp8bJ4SXszM0WXlhak3eHlcse2gAw84vaoGGmJvUy2U",
}

type sdncStatusCheck struct {
	id     string
	client *sdnc.Client
}

func newSDNCStatusCheck(cfg CheckConfig, env Env) (Check, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}
	return &sdncStatusCheck{
		id:     cfg.ID,
		client: sdnc.NewClient(env.Settings.SdncURL, env.Sender),
	}, nil
}

func (c *sdncStatusCheck) ID() string   { return c.id }
func (c *sdncStatusCheck) Type() string { return TypeSDNCStatus }

func (c *sdncStatusCheck) Run(ctx context.Context) (Result, error) {
	body, err := c.client.Status(ctx)
	if err != nil {
		return Result{}, err
	}
	if title := pageTitle(body); title != "" {
		return Result{Detail: fmt.Sprintf("apidoc page %q", title)}, nil
	}
	return Result{Detail: fmt.Sprintf("apidoc page, %d bytes", len(body))}, nil
}

// pageTitle extracts the HTML title of the status page, when there is one.
func pageTitle(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

type sdncConnectivityCheck struct {
	id      string
	client  *sdnc.Client
	auth    settings.BasicAuth
	oduNode string
	oruNode string
}

func newSDNCConnectivityCheck(cfg CheckConfig, env Env) (Check, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}

	oduNode, oruNode := env.ODUNode, env.ORUNode
	auth := sdncDefaultAuth
	if cfg.SDNC != nil {
		if cfg.SDNC.ODUNode != "" {
			oduNode = cfg.SDNC.ODUNode
		}
		if cfg.SDNC.ORUNode != "" {
			oruNode = cfg.SDNC.ORUNode
		}
		if cfg.SDNC.Username != "" {
			auth = settings.BasicAuth{Username: cfg.SDNC.Username, Password: cfg.SDNC.Password}
		}
	}
	if oduNode == "" || oruNode == "" {
		return nil, fmt.Errorf("check %q needs odu and oru node ids", cfg.ID)
	}

	return &sdncConnectivityCheck{
		id:      cfg.ID,
		client:  sdnc.NewClient(env.Settings.SdncURL, env.Sender),
		auth:    auth,
		oduNode: oduNode,
		oruNode: oruNode,
	}, nil
}

func (c *sdncConnectivityCheck) ID() string   { return c.id }
func (c *sdncConnectivityCheck) Type() string { return TypeSDNCConnectivity }

func (c *sdncConnectivityCheck) Run(ctx context.Context) (Result, error) {
	status, err := c.client.ODUORUStatus(ctx, c.oduNode, c.oruNode, c.auth)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Detail: fmt.Sprintf("du-to-ru connection %s/%s, %d entries", c.oduNode, c.oruNode, len(status)),
	}, nil
}
