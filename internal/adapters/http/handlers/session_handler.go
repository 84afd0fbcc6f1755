package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// SessionHandler exposes the signed-in user and lets a client sign in with
// an ID token or sign out.
type SessionHandler struct {
	sessions ports.SessionSource
	idp      ports.IdentityProvider
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions ports.SessionSource, idp ports.IdentityProvider) *SessionHandler {
	return &SessionHandler{sessions: sessions, idp: idp}
}

// GetSession handles GET /api/v1/session.
func (h *SessionHandler) GetSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToSessionResponse(h.sessions.State()))
}

// SignIn handles POST /api/v1/session.
func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.idp.SignIn(r.Context(), req.IDToken); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(h.sessions.State()))
}

// SignOut handles DELETE /api/v1/session.
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.idp.SignOut(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
