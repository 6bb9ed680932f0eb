package checks

import (
	"context"
	"errors"
	"fmt"
)

// Runner executes every configured check against the deployment.
type Runner struct {
	checks []Check
	log    Logger
}

// NewRunner builds a runner over the given checks.
func NewRunner(cks []Check, log Logger) *Runner {
	cp := make([]Check, 0, len(cks))
	for _, c := range cks {
		if c == nil {
			continue
		}
		cp = append(cp, c)
	}
	return &Runner{checks: cp, log: ensureLogger(log)}
}

// Run executes the checks one at a time.
// It returns the number of checks that passed.
func (r *Runner) Run(ctx context.Context) (int, error) {
	if r == nil || len(r.checks) == 0 {
		return 0, nil
	}

	var errs []error
	passed := 0
	for _, c := range r.checks {
		res, err := c.Run(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s check[%s]: %w", c.Type(), c.ID(), err))
			r.log.ErrorObj("check failed", "check", map[string]interface{}{
				"id":    c.ID(),
				"type":  c.Type(),
				"error": err.Error(),
			})
			continue
		}
		passed++
		r.log.InfoObj("check passed", "check", map[string]interface{}{
			"id":     c.ID(),
			"type":   c.Type(),
			"detail": res.Detail,
		})
	}
	return passed, errors.Join(errs...)
}

// Size returns the number of active checks.
func (r *Runner) Size() int {
	if r == nil {
		return 0
	}
	return len(r.checks)
}
