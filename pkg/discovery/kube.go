package discovery

import (
	"context"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	coreV1 "k8s.io/api/core/v1"
	metaV1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// KubeResolver asks the Kubernetes API for a service's cluster IP instead of
// scraping kubectl output.
type KubeResolver struct {
	client kubernetes.Interface
}

// NewKubeResolver builds a resolver from the in-cluster configuration when
// available, otherwise from the given kubeconfig path (defaulting to
// ~/.kube/config).
func NewKubeResolver(kubeconfig string) (*KubeResolver, error) {
	cfg, err := rest.InClusterConfig()
	if err != nil {
		if kubeconfig == "" {
			if home, homeErr := os.UserHomeDir(); homeErr == nil {
				kubeconfig = filepath.Join(home, ".kube", "config")
			}
		}
		cfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "load kubernetes client configuration")
		}
	}

	client, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create kubernetes client")
	}
	return &KubeResolver{client: client}, nil
}

// NewKubeResolverForClient wraps an existing clientset. Tests hand in the
// fake clientset through this.
func NewKubeResolverForClient(client kubernetes.Interface) *KubeResolver {
	return &KubeResolver{client: client}
}

// ClusterIP reads Spec.ClusterIP of the named service. Headless services
// carry no per-service address and are reported as errors.
func (r *KubeResolver) ClusterIP(ctx context.Context, namespace, name string) (string, error) {
	if r == nil || r.client == nil {
		return "", pkgerrors.New("kubernetes client is not initialized")
	}

	service, err := r.client.CoreV1().Services(namespace).Get(ctx, name, metaV1.GetOptions{})
	if err != nil {
		return "", pkgerrors.Wrapf(err, "get service %s in namespace %s", name, namespace)
	}

	ip := service.Spec.ClusterIP
	if ip == "" || ip == coreV1.ClusterIPNone {
		return "", pkgerrors.Errorf("service %s in namespace %s has no cluster IP", name, namespace)
	}
	return ip, nil
}
