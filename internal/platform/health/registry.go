// Package health runs the readiness checks behind the board API's
// /health/ready endpoint.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// DefaultCheckTimeout bounds a single check when the registry is built
// without an explicit timeout.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds named checkers and runs them concurrently, each under its
// own deadline. Registering a second checker with an existing name replaces
// the first.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	order    []string
	checkers map[string]ports.HealthChecker
}

// New creates an empty registry. A non-positive timeout selects
// DefaultCheckTimeout.
func New(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &Registry{
		timeout:  timeout,
		checkers: make(map[string]ports.HealthChecker),
	}
}

// Register adds checker under its Name.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.checkers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.checkers[name] = checker
}

// Names lists registered checkers in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// CheckAll runs every checker and returns results keyed by name; nil means
// healthy. A checker that outlives its deadline reports a timeout error
// without holding up the others.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, 0, len(r.order))
	for _, name := range r.order {
		checkers = append(checkers, r.checkers[name])
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(checkers))
	)
	for _, c := range checkers {
		wg.Go(func() {
			err := r.run(ctx, c)
			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
		})
	}
	wg.Wait()
	return results
}

func (r *Registry) run(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- c.HealthCheck(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("health check timed out after %s: %w", r.timeout, ctx.Err())
	}
}
