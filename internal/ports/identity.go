package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard/internal/domain/session"
)

// IdentityProvider is the outbound port to the external identity system.
// It verifies ID tokens and pushes session changes to subscribers.
type IdentityProvider interface {
	// Subscribe registers fn for session changes. A nil session means
	// signed out. If the provider has already resolved, fn is called with
	// the current session before Subscribe returns.
	Subscribe(fn func(*session.Session)) (unsubscribe func())

	// SignIn verifies rawToken and publishes the resulting session.
	SignIn(ctx context.Context, rawToken string) (*session.Session, error)

	// SignOut publishes an absent session.
	SignOut(ctx context.Context)
}

// SessionSource exposes the application-wide session state. Implemented
// by the application layer over an IdentityProvider.
type SessionSource interface {
	// State returns the current session state.
	State() session.State

	// Current returns the active session, if any.
	Current() (*session.Session, bool)

	// Subscribe registers fn for state changes and returns its
	// unsubscribe function.
	Subscribe(fn func(session.State)) func()

	// Ready blocks until the first identity resolution or ctx is done.
	Ready(ctx context.Context) (session.State, error)
}
