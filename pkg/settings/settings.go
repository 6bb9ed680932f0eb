// Package settings materializes the service endpoints and credentials the
// SMO test suites run against. Static values are fixed deployment constants;
// the remaining endpoints are discovered from the live cluster exactly once,
// when Load builds the Settings value.
package settings

import (
	"context"
	"fmt"

	"github.com/o-ran-sc/oransdk-go/pkg/discovery"
)

// BasicAuth is a username/password pair sent as HTTP Basic Authentication
// credentials. Both fields are populated by the caller.
type BasicAuth struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Settings carries every endpoint and credential constant used by the test
// suites. Values are written only inside Load; treat the struct as read-only
// afterwards.
type Settings struct {
	AaiURL        string
	AaiAPIVersion string
	AaiAuth       string
	CdsURL        string
	CdsAuth       BasicAuth
	MsbURL        string
	SdcBeURL      string
	SdcFeURL      string
	SdcAuth       string
	SdncAuth      string
	SoURL         string
	SoAPIVersion  string
	SoAuth        string
	VidURL        string
	VidAPIVersion string
	ClampURL      string
	ClampAuth     string
	VesURL        string
	NbiURL        string
	NbiAPIVersion string

	PolicyBasicAuth BasicAuth

	// Discovered from the cluster, in declaration order.
	DmaapURL     string
	A1SimOscURL  string
	A1SimStd1URL string
	A1SimStd2URL string
	PolicyPapURL string
	PolicyAPIURL string
	SdncURL      string
}

// Load builds the Settings value. The dynamic endpoints are resolved through
// the given resolver one at a time, in a fixed order; the first failure aborts
// the load with no partial result. There is no static fallback for any of
// them (notably SdncURL is always discovered).
func Load(ctx context.Context, resolver discovery.Resolver) (*Settings, error) {
	if resolver == nil {
		return nil, fmt.Errorf("service resolver must not be nil")
	}

	s := &Settings{
		AaiURL:        "https://aai.api.sparky.simpledemo.onap.org:30233",
		AaiAPIVersion: "v23",
		AaiAuth:       "Basic QUFJOkFBSQ==",
		CdsURL:        "http://portal.api.simpledemo.onap.org:30449",
		CdsAuth:       BasicAuth{Username: "ccsdkapps", Password: "ccsdkapps"},
		MsbURL:        "https://msb.api.simpledemo.onap.org:30283",
		SdcBeURL:      "https://sdc.api.be.simpledemo.onap.org:30204",
		SdcFeURL:      "https://sdc.api.fe.simpledemo.onap.org:30207",
		SdcAuth:       "Basic YWFpOktwOGJKNFNYc3pNMFdYbGhhazNlSGxjc2UyZ0F3ODR2YW9HR21KdlV5MlU=",
		SdncAuth:      "Basic YWRtaW46S3A4Yko0U1hzek0wV1hsaGFrM2VIbGNzZTJnQXc4NHZhb0dHbUp2VXkyVQ==",
		SoURL:         "http://so.api.simpledemo.onap.org:30277",
		SoAPIVersion:  "v7",
		SoAuth:        "Basic SW5mcmFQb3J0YWxDbGllbnQ6cGFzc3dvcmQxJA==",
		VidURL:        "https://vid.api.simpledemo.onap.org:30200",
		VidAPIVersion: "/vid",
		ClampURL:      "https://clamp.api.simpledemo.onap.org:30258",
		ClampAuth:     "Basic ZGVtb0BwZW9wbGUub3NhYWYub3JnOmRlbW8xMjM0NTYh",
		VesURL:        "http://ves.api.simpledemo.onap.org:30417",
		NbiURL:        "https://nbi.api.simpledemo.onap.org:30274",
		NbiAPIVersion: "/nbi/api/v4",

		PolicyBasicAuth: BasicAuth{Username: "healthcheck", Password: "zb!XztG34"},
	}

	dynamics := []struct {
		dst       *string
		scheme    string
		name      string
		namespace string
		port      int
	}{
		{&s.DmaapURL, "http", "message-router", "onap", 3904},
		{&s.A1SimOscURL, "http", "a1-sim-osc", "nonrtric", 8085},
		{&s.A1SimStd1URL, "http", "a1-sim-std-1", "nonrtric", 3904},
		{&s.A1SimStd2URL, "http", "a1-sim-std-2", "nonrtric", 3904},
		{&s.PolicyPapURL, "https", "policy-pap", "onap", 6969},
		{&s.PolicyAPIURL, "https", "policy-api", "onap", 6969},
		{&s.SdncURL, "http", "sdnc-oam", "onap", 8282},
	}

	for _, d := range dynamics {
		ip, err := resolver.ClusterIP(ctx, d.namespace, d.name)
		if err != nil {
			return nil, fmt.Errorf("resolve service %s in namespace %s: %w", d.name, d.namespace, err)
		}
		*d.dst = fmt.Sprintf("%s://%s:%d", d.scheme, ip, d.port)
	}

	return s, nil
}

// Endpoints returns the service base URLs keyed by a stable name, static and
// discovered alike. Credentials are intentionally left out.
func (s *Settings) Endpoints() map[string]string {
	if s == nil {
		return nil
	}
	return map[string]string{
		"aai":        s.AaiURL,
		"cds":        s.CdsURL,
		"msb":        s.MsbURL,
		"sdc-be":     s.SdcBeURL,
		"sdc-fe":     s.SdcFeURL,
		"so":         s.SoURL,
		"vid":        s.VidURL,
		"clamp":      s.ClampURL,
		"ves":        s.VesURL,
		"nbi":        s.NbiURL,
		"dmaap":      s.DmaapURL,
		"a1sim-osc":  s.A1SimOscURL,
		"a1sim-std1": s.A1SimStd1URL,
		"a1sim-std2": s.A1SimStd2URL,
		"policy-pap": s.PolicyPapURL,
		"policy-api": s.PolicyAPIURL,
		"sdnc":       s.SdncURL,
	}
}
