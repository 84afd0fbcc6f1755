package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name given to the
// underlying [httpclient.Client] for tracing and metrics.
func (c *TaskClient) Name() string {
	return c.health.Name()
}

// HealthCheck reports the task API's availability based on the circuit
// breaker state. No network call is made.
//
// This reports downstream status, not readiness of the local board API:
// the board API keeps serving (and returning domain errors) while the task
// API is failing, which lets the breaker recover.
func (c *TaskClient) HealthCheck(ctx context.Context) error {
	return c.health.HealthCheck(ctx)
}
