package discovery

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const clusterIPColumn = 2 // NAME TYPE CLUSTER-IP ...

// KubectlResolver shells out to kubectl and reads the CLUSTER-IP column from
// its tabular output, the way the suites have always discovered endpoints.
type KubectlResolver struct {
	kubectlPath string
}

// NewKubectlResolver builds a resolver around the given kubectl binary.
// An empty path falls back to "kubectl" on PATH.
func NewKubectlResolver(kubectlPath string) *KubectlResolver {
	if strings.TrimSpace(kubectlPath) == "" {
		kubectlPath = "kubectl"
	}
	return &KubectlResolver{kubectlPath: kubectlPath}
}

// ClusterIP runs `kubectl get services <name> -n <namespace>` synchronously
// and returns the CLUSTER-IP column of the matching row verbatim. A non-zero
// exit or an output without a matching row is an error.
func (r *KubectlResolver) ClusterIP(ctx context.Context, namespace, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", pkgerrors.New("service name is empty")
	}
	if strings.TrimSpace(namespace) == "" {
		return "", pkgerrors.New("service namespace is empty")
	}

	cmd := exec.CommandContext(ctx, r.kubectlPath, "get", "services", name, "-n", namespace)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", pkgerrors.Wrapf(err, "kubectl get services %s -n %s: %s",
				name, namespace, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", pkgerrors.Wrapf(err, "kubectl get services %s -n %s", name, namespace)
	}

	ip, ok := parseClusterIP(string(out), name)
	if !ok {
		return "", pkgerrors.Errorf("no row for service %s in kubectl output", name)
	}
	return ip, nil
}

// parseClusterIP selects the first line containing the service name and
// returns its third whitespace-separated column. The header line never
// matches because it does not contain the service name.
func parseClusterIP(out, name string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, name) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > clusterIPColumn {
			return fields[clusterIPColumn], true
		}
	}
	return "", false
}
