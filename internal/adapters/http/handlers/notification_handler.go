package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/adapters/notify"
)

// NotificationSource hands out queued notifications once.
type NotificationSource interface {
	Drain() []notify.Notification
}

// NotificationHandler serves the toast queue.
type NotificationHandler struct {
	source NotificationSource
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(source NotificationSource) *NotificationHandler {
	return &NotificationHandler{source: source}
}

// ListNotifications handles GET /api/v1/notifications. Returned
// notifications are removed from the queue.
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToNotificationListResponse(h.source.Drain()))
}
