package policy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/o-ran-sc/oransdk-go/pkg/httpclient"
	"github.com/o-ran-sc/oransdk-go/pkg/settings"
)

var healthcheckAuth = settings.BasicAuth{Username: "healthcheck", Password: "zb!XztG34"}

func requireHealthcheckAuth(t *testing.T, r *http.Request) {
	t.Helper()
	user, pass, ok := r.BasicAuth()
	if !ok || user != healthcheckAuth.Username || pass != healthcheckAuth.Password {
		t.Fatalf("expected healthcheck credentials, got %q/%q (ok=%v)", user, pass, ok)
	}
}

func TestPapComponentsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireHealthcheckAuth(t, r)
		if r.URL.Path != "/policy/pap/v1/components/healthcheck" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"api":{"healthy":true},"pdps":{"healthy":true}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "http://unused", httpclient.NewRestyClient(2*time.Second, nil))
	status, err := client.PapComponentsStatus(context.Background(), healthcheckAuth)
	if err != nil {
		t.Fatalf("PapComponentsStatus: %v", err)
	}
	if len(status) != 2 {
		t.Fatalf("expected 2 components, got %#v", status)
	}
}

func TestAPIHealthcheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireHealthcheckAuth(t, r)
		if r.URL.Path != "/policy/api/v1/healthcheck" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Policy API","healthy":true,"message":"alive"}`))
	}))
	defer srv.Close()

	client := NewClient("http://unused", srv.URL, httpclient.NewRestyClient(2*time.Second, nil))
	status, err := client.APIHealthcheck(context.Background(), healthcheckAuth)
	if err != nil {
		t.Fatalf("APIHealthcheck: %v", err)
	}
	if healthy, ok := status["healthy"].(bool); !ok || !healthy {
		t.Fatalf("expected healthy answer, got %#v", status)
	}
}
