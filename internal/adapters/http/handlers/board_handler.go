package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// BoardHandler serves the board, its reorder gesture and the activity log.
type BoardHandler struct {
	svc ports.BoardService
	now Clock
}

// NewBoardHandler creates a BoardHandler. A nil clock uses time.Now.
func NewBoardHandler(svc ports.BoardService, now Clock) *BoardHandler {
	if now == nil {
		now = time.Now
	}
	return &BoardHandler{svc: svc, now: now}
}

// GetBoard handles GET /api/v1/board.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToBoardResponse(h.svc.Board(), h.now()))
}

// Refresh handles POST /api/v1/board/refresh.
func (h *BoardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Fetch(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBoardResponse(h.svc.Board(), h.now()))
}

// Move handles POST /api/v1/board/moves. The optimistic board is returned
// with 202 while the reorder is still in flight. With ?wait=true the handler
// blocks until the reorder has settled and returns the resulting board.
func (h *BoardHandler) Move(w http.ResponseWriter, r *http.Request) {
	wait, err := queryBool(r, "wait")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	drag := req.ToDragResult()

	if wait {
		if err := h.svc.Move(r.Context(), drag); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToBoardResponse(h.svc.Board(), h.now()))
		return
	}

	done := h.svc.MoveAsync(r.Context(), drag)
	// Rejected moves fail before anything is applied and report at once.
	select {
	case err := <-done:
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToBoardResponse(h.svc.Board(), h.now()))
	default:
		writeJSON(w, http.StatusAccepted, dto.ToBoardResponse(h.svc.Board(), h.now()))
	}
}

// Activities handles GET /api/v1/activities.
func (h *BoardHandler) Activities(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.Activities(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToActivityListResponse(records))
}
