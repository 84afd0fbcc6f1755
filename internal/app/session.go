package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/session"
	"github.com/jsamuelsen11/taskboard/internal/platform/observable"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

var (
	_ ports.SessionSource = (*SessionProvider)(nil)
	_ ports.HealthChecker = (*SessionProvider)(nil)
)

// SessionProvider mirrors the identity provider into an application-wide
// session state. It starts out loading and flips to resolved on the first
// notification from the identity provider.
type SessionProvider struct {
	idp    ports.IdentityProvider
	logger *slog.Logger
	state  *observable.Value[session.State]

	mu          sync.Mutex
	unsubscribe func()

	// ready is closed on the first resolution.
	ready     chan struct{}
	readyOnce sync.Once
}

// NewSessionProvider creates a SessionProvider over idp. Call Start to begin
// observing it.
func NewSessionProvider(idp ports.IdentityProvider, logger *slog.Logger) *SessionProvider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SessionProvider{
		idp:    idp,
		logger: logger,
		state:  observable.New(session.State{Loading: true}),
		ready:  make(chan struct{}),
	}
}

// Start subscribes to the identity provider. Calling Start twice is a no-op.
func (p *SessionProvider) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.unsubscribe != nil {
		return
	}
	p.unsubscribe = p.idp.Subscribe(p.onIdentityChange)
}

// Stop ends the identity subscription. Safe to call more than once.
func (p *SessionProvider) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// State returns the current session state.
func (p *SessionProvider) State() session.State {
	return p.state.Get()
}

// Current returns the active session, if any.
func (p *SessionProvider) Current() (*session.Session, bool) {
	st := p.state.Get()
	if !st.Authenticated() {
		return nil, false
	}
	return st.Session, true
}

// Subscribe registers fn for state changes.
func (p *SessionProvider) Subscribe(fn func(session.State)) func() {
	return p.state.Subscribe(fn)
}

// Ready blocks until the identity provider has resolved once.
func (p *SessionProvider) Ready(ctx context.Context) (session.State, error) {
	select {
	case <-p.ready:
		return p.state.Get(), nil
	case <-ctx.Done():
		return session.State{}, ctx.Err()
	}
}

// Name identifies the session in readiness results.
func (p *SessionProvider) Name() string { return "identity" }

// HealthCheck fails until the identity provider has resolved once. A
// signed-out session is still healthy.
func (p *SessionProvider) HealthCheck(context.Context) error {
	if p.state.Get().Loading {
		return fmt.Errorf("identity not resolved: %w", domain.ErrUnavailable)
	}
	return nil
}

func (p *SessionProvider) onIdentityChange(s *session.Session) {
	if s != nil {
		p.logger.Debug("session changed", slog.String("user_id", s.UserID))
	} else {
		p.logger.Debug("session cleared")
	}

	p.state.Set(session.State{Session: s, Loading: false})
	p.readyOnce.Do(func() { close(p.ready) })
}
