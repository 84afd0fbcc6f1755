// Package identity adapts an external identity provider to the session
// port. ID tokens (JWTs) are verified locally: RS256 against a JWKS
// endpoint, or HS256 with a shared secret in local mode.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/session"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/observable"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Compile-time interface check.
var _ ports.IdentityProvider = (*TokenProvider)(nil)

// clockSkew is tolerated on nbf and iat.
const clockSkew = time.Minute

const tokenFileMode = 0o600

// identityState is what subscribers are told about. resolved stays false
// until the first Resolve, SignIn or SignOut.
type identityState struct {
	session  *session.Session
	resolved bool
}

// Option configures a TokenProvider.
type Option func(*TokenProvider)

// WithJWKS supplies a ready key set instead of fetching jwks_url lazily.
func WithJWKS(jwks *keyfunc.JWKS) Option {
	return func(p *TokenProvider) {
		p.jwks = jwks
	}
}

// WithClock overrides the time source used for exp, nbf and iat checks.
func WithClock(now func() time.Time) Option {
	return func(p *TokenProvider) {
		p.now = now
	}
}

// TokenProvider implements [ports.IdentityProvider] over ID tokens.
//
// Subscribers are notified one change at a time. A subscriber must not call
// SignIn or SignOut synchronously.
type TokenProvider struct {
	cfg    config.AuthConfig
	parser *jwt.Parser
	logger *slog.Logger
	now    func() time.Time

	jwksMu      sync.Mutex
	jwks        *keyfunc.JWKS
	fetchedJWKS bool

	// mu serializes publishing with subscription so a new subscriber
	// never misses or reorders a change.
	mu    sync.Mutex
	state *observable.Value[identityState]
}

// New creates a TokenProvider from the auth configuration. No network call
// is made; in jwks mode the key set is fetched on first verification.
func New(cfg config.AuthConfig, logger *slog.Logger, opts ...Option) (*TokenProvider, error) {
	p := &TokenProvider{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		state:  observable.New(identityState{}),
	}

	switch cfg.Mode {
	case config.AuthModeLocal:
		if cfg.SharedSecret == "" {
			return nil, errors.New("identity: local mode requires a shared secret")
		}
		p.parser = jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}), jwt.WithoutClaimsValidation())
	case config.AuthModeJWKS:
		p.parser = jwt.NewParser(jwt.WithValidMethods([]string{"RS256"}), jwt.WithoutClaimsValidation())
	default:
		return nil, fmt.Errorf("identity: unsupported auth mode %q", cfg.Mode)
	}

	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Subscribe registers fn for session changes. If the provider has already
// resolved, fn receives the current session before Subscribe returns.
func (p *TokenProvider) Subscribe(fn func(*session.Session)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	unsubscribe := p.state.Subscribe(func(st identityState) {
		fn(st.session)
	})
	if st := p.state.Get(); st.resolved {
		fn(st.session)
	}
	return unsubscribe
}

// Resolve performs the initial resolution from the configured id_token or
// token_file. A missing or invalid token resolves to no session; the error
// is logged and returned, but subscribers are always notified.
func (p *TokenProvider) Resolve(ctx context.Context) (*session.Session, error) {
	raw, err := p.configuredToken()
	if err != nil {
		p.logger.WarnContext(ctx, "reading stored id token",
			slog.String("operation", "identity.Resolve"),
			slog.String("token_file", p.cfg.TokenFile),
			slog.Any("error", err),
		)
		p.publish(nil)
		return nil, err
	}
	if raw == "" {
		p.logger.DebugContext(ctx, "no id token configured")
		p.publish(nil)
		return nil, nil
	}

	s, err := p.Verify(ctx, raw)
	if err != nil {
		p.logger.WarnContext(ctx, "stored id token rejected",
			slog.String("operation", "identity.Resolve"),
			slog.Any("error", err),
		)
		p.publish(nil)
		return nil, err
	}

	p.logger.InfoContext(ctx, "session resolved", slog.String("user_id", s.UserID))
	p.publish(s)
	return s, nil
}

// SignIn verifies rawToken, stores it in token_file when one is configured,
// and publishes the session.
func (p *TokenProvider) SignIn(ctx context.Context, rawToken string) (*session.Session, error) {
	s, err := p.Verify(ctx, strings.TrimSpace(rawToken))
	if err != nil {
		return nil, err
	}

	if err := p.storeToken(strings.TrimSpace(rawToken)); err != nil {
		p.logger.WarnContext(ctx, "storing id token",
			slog.String("operation", "identity.SignIn"),
			slog.String("token_file", p.cfg.TokenFile),
			slog.Any("error", err),
		)
	}

	p.logger.InfoContext(ctx, "signed in", slog.String("user_id", s.UserID))
	p.publish(s)
	return s, nil
}

// SignOut forgets any stored token and publishes an absent session.
func (p *TokenProvider) SignOut(ctx context.Context) {
	if path := p.tokenPath(); path != "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			p.logger.WarnContext(ctx, "removing stored id token",
				slog.String("operation", "identity.SignOut"),
				slog.Any("error", err),
			)
		}
	}
	p.logger.InfoContext(ctx, "signed out")
	p.publish(nil)
}

// Verify checks the token's signature and registered claims and maps it to
// a session. It does not publish anything.
func (p *TokenProvider) Verify(ctx context.Context, raw string) (*session.Session, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty id token", domain.ErrUnauthenticated)
	}

	token, err := p.parser.Parse(raw, func(t *jwt.Token) (any, error) {
		return p.keyFor(ctx, t)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: invalid claims", domain.ErrUnauthenticated)
	}
	if err := p.validateClaims(claims); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	return sessionFromClaims(claims)
}

// Close stops the background JWKS refresh, if any.
func (p *TokenProvider) Close() {
	p.jwksMu.Lock()
	defer p.jwksMu.Unlock()
	if p.fetchedJWKS {
		p.jwks.EndBackground()
	}
}

func (p *TokenProvider) publish(s *session.Session) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Set(identityState{session: s, resolved: true})
}

func (p *TokenProvider) keyFor(ctx context.Context, t *jwt.Token) (any, error) {
	if p.cfg.Mode == config.AuthModeLocal {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(p.cfg.SharedSecret), nil
	}

	jwks, err := p.keySet(ctx)
	if err != nil {
		return nil, err
	}
	return jwks.Keyfunc(t)
}

// keySet fetches the JWKS on first use. A failed fetch is retried on the
// next verification.
func (p *TokenProvider) keySet(ctx context.Context) (*keyfunc.JWKS, error) {
	p.jwksMu.Lock()
	defer p.jwksMu.Unlock()

	if p.jwks != nil {
		return p.jwks, nil
	}

	jwks, err := keyfunc.Get(p.cfg.JWKSURL, keyfunc.Options{
		Ctx:               context.WithoutCancel(ctx),
		RefreshInterval:   p.cfg.JWKSRefresh,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			p.logger.Warn("refreshing jwks",
				slog.String("jwks_url", p.cfg.JWKSURL),
				slog.Any("error", err),
			)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fetching jwks: %w", err)
	}
	p.jwks = jwks
	p.fetchedJWKS = true
	return jwks, nil
}

func (p *TokenProvider) validateClaims(claims jwt.MapClaims) error {
	now := p.now().Unix()
	skewed := p.now().Add(clockSkew).Unix()

	if !claims.VerifyExpiresAt(now, true) {
		return errors.New("token expired")
	}
	if !claims.VerifyNotBefore(skewed, false) {
		return errors.New("token not valid yet")
	}
	if !claims.VerifyIssuedAt(skewed, false) {
		return errors.New("token used before issued")
	}
	if p.cfg.Audience != "" && !claims.VerifyAudience(p.cfg.Audience, true) {
		return errors.New("invalid audience")
	}
	if p.cfg.Issuer != "" && !claims.VerifyIssuer(p.cfg.Issuer, true) {
		return errors.New("invalid issuer")
	}
	return nil
}

func sessionFromClaims(claims jwt.MapClaims) (*session.Session, error) {
	userID, _ := claims["sub"].(string)
	if userID == "" {
		userID, _ = claims["user_id"].(string)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: missing sub", domain.ErrUnauthenticated)
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return &session.Session{
		UserID:      userID,
		Email:       email,
		DisplayName: name,
	}, nil
}

func (p *TokenProvider) configuredToken() (string, error) {
	if tok := strings.TrimSpace(p.cfg.IDToken); tok != "" {
		return tok, nil
	}
	path := p.tokenPath()
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (p *TokenProvider) storeToken(raw string) error {
	path := p.tokenPath()
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(raw+"\n"), tokenFileMode)
}

// tokenPath expands a leading "~/" in token_file.
func (p *TokenProvider) tokenPath() string {
	path := p.cfg.TokenFile
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
