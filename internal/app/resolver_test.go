package app

import (
	"testing"

	"github.com/o-ran-sc/oransdk-go/internal/config"
	"github.com/o-ran-sc/oransdk-go/pkg/discovery"
)

func TestNewResolverSelectsKubectl(t *testing.T) {
	cfg := &config.Config{Resolver: config.ResolverKubectl, KubectlPath: "kubectl"}

	r, err := NewResolver(cfg)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	if _, ok := r.(*discovery.KubectlResolver); !ok {
		t.Fatalf("expected a kubectl resolver, got %T", r)
	}
}

func TestNewResolverUnknownKind(t *testing.T) {
	if _, err := NewResolver(&config.Config{Resolver: "dns"}); err == nil {
		t.Fatalf("expected error for unknown resolver kind")
	}
}

func TestNewResolverNilConfig(t *testing.T) {
	if _, err := NewResolver(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}
