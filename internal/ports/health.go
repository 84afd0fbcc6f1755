package ports

import "context"

// HealthChecker is a dependency that can report whether the board API may
// serve traffic, such as the task API client or the session.
type HealthChecker interface {
	// Name keys the check in readiness output, e.g. "task-api".
	Name() string
	// HealthCheck returns nil when usable. It must honor ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every check; a nil entry means healthy.
	CheckAll(ctx context.Context) map[string]error
}
