package discovery

import (
	"context"
	"testing"

	coreV1 "k8s.io/api/core/v1"
	metaV1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func service(namespace, name, clusterIP string) *coreV1.Service {
	return &coreV1.Service{
		ObjectMeta: metaV1.ObjectMeta{Namespace: namespace, Name: name},
		Spec:       coreV1.ServiceSpec{ClusterIP: clusterIP},
	}
}

func TestKubeResolverReadsClusterIP(t *testing.T) {
	client := fake.NewSimpleClientset(service("onap", "policy-pap", "10.1.2.3"))
	resolver := NewKubeResolverForClient(client)

	ip, err := resolver.ClusterIP(context.Background(), "onap", "policy-pap")
	if err != nil {
		t.Fatalf("ClusterIP: %v", err)
	}
	if ip != "10.1.2.3" {
		t.Fatalf("expected 10.1.2.3, got %q", ip)
	}
}

func TestKubeResolverMissingService(t *testing.T) {
	resolver := NewKubeResolverForClient(fake.NewSimpleClientset())

	if _, err := resolver.ClusterIP(context.Background(), "onap", "policy-pap"); err == nil {
		t.Fatalf("expected error for a missing service")
	}
}

func TestKubeResolverRejectsHeadlessService(t *testing.T) {
	client := fake.NewSimpleClientset(service("onap", "sdnc-oam", coreV1.ClusterIPNone))
	resolver := NewKubeResolverForClient(client)

	if _, err := resolver.ClusterIP(context.Background(), "onap", "sdnc-oam"); err == nil {
		t.Fatalf("expected error for a headless service")
	}
}

func TestKubeResolverWrongNamespace(t *testing.T) {
	client := fake.NewSimpleClientset(service("nonrtric", "a1-sim-osc", "10.2.3.4"))
	resolver := NewKubeResolverForClient(client)

	if _, err := resolver.ClusterIP(context.Background(), "onap", "a1-sim-osc"); err == nil {
		t.Fatalf("expected error when the namespace does not hold the service")
	}
}
