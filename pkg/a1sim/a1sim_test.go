package a1sim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/o-ran-sc/oransdk-go/pkg/httpclient"
)

func TestStatusRequestsRoot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, httpclient.NewRestyClient(2*time.Second, nil))
	body, err := client.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if body != "OK" {
		t.Fatalf("expected liveness answer, got %q", body)
	}
}

func TestStatusPropagatesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, httpclient.NewRestyClient(time.Second, nil))
	if _, err := client.Status(context.Background()); err == nil {
		t.Fatalf("expected error on non-2xx response")
	}
}
