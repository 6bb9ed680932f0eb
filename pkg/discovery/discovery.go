// Package discovery resolves cluster-internal addresses for named services.
package discovery

import "context"

// Resolver answers the cluster IP of a named service. Implementations query
// the live cluster; callers treat any failure as fatal for the lookup.
type Resolver interface {
	ClusterIP(ctx context.Context, namespace, name string) (string, error)
}
