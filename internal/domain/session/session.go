// Package session models the signed-in user as observed from the identity
// provider.
package session

// Session identifies the signed-in user.
type Session struct {
	UserID      string
	Email       string
	DisplayName string
}

// Name returns the display name, falling back to the email address.
func (s *Session) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Email
}

// State is what dependents observe: the current session (nil when signed
// out) and whether the first resolution is still pending.
type State struct {
	Session *Session
	Loading bool
}

// Authenticated reports whether a session is present and resolved.
func (s State) Authenticated() bool {
	return !s.Loading && s.Session != nil
}
