package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// declineConfirm answers no to every prompt. An HTTP client confirms a
// delete up front with ?confirm=true instead of answering a prompt.
var declineConfirm ports.Confirmer = ports.ConfirmFunc(func(context.Context, string) (bool, error) {
	return false, nil
})

// TaskHandler handles task create, edit and delete.
type TaskHandler struct {
	svc ports.BoardService
	now Clock
}

// NewTaskHandler creates a TaskHandler. A nil clock uses time.Now.
func NewTaskHandler(svc ports.BoardService, now Clock) *TaskHandler {
	if now == nil {
		now = time.Now
	}
	return &TaskHandler{svc: svc, now: now}
}

// CreateTask handles POST /api/v1/tasks and returns the refreshed board.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.Create(r.Context(), req.ToInput()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToBoardResponse(h.svc.Board(), h.now()))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.Update(r.Context(), id, req.ToPatch()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(h.svc.Board(), h.now()))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}. Without ?confirm=true the
// task is kept and 428 Precondition Required is returned.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	confirmed, err := queryBool(r, "confirm")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	confirm := declineConfirm
	if confirmed {
		confirm = ports.AlwaysConfirm
	}

	deleted, err := h.svc.Remove(r.Context(), id, confirm)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !deleted {
		dto.WriteErrorResponse(w, r, domain.ErrNotConfirmed)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
