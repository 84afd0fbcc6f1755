// Package notify implements the Notifier port: toasts printed to a terminal,
// queued for the local board API, or both.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/adapters/render"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

var (
	_ ports.Notifier = (*Console)(nil)
	_ ports.Notifier = (*Recorder)(nil)
	_ ports.Notifier = Multi(nil)
)

// Level names used in recorded notifications.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notification is one recorded toast.
type Notification struct {
	Level   string
	Message string
	Time    time.Time
}

// Console prints notifications through a render.Printer.
type Console struct {
	mu      sync.Mutex
	printer *render.Printer
	logger  *slog.Logger
}

// NewConsole creates a Console. Write failures are logged at debug level.
func NewConsole(printer *render.Printer, logger *slog.Logger) *Console {
	return &Console{printer: printer, logger: logger}
}

// Success prints msg as a success toast.
func (c *Console) Success(ctx context.Context, msg string) {
	c.print(ctx, render.LevelSuccess, msg)
}

// Error prints msg as an error toast.
func (c *Console) Error(ctx context.Context, msg string) {
	c.print(ctx, render.LevelError, msg)
}

func (c *Console) print(ctx context.Context, level render.Level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.printer.Notification(level, msg); err != nil {
		c.logger.DebugContext(ctx, "writing notification", slog.Any("error", err))
	}
}

// Recorder queues notifications until they are drained. The queue keeps
// at most limit entries; older ones are dropped first.
type Recorder struct {
	mu      sync.Mutex
	limit   int
	pending []Notification
	now     func() time.Time
}

// DefaultLimit bounds a Recorder nobody drains.
const DefaultLimit = 100

// NewRecorder creates a Recorder holding at most limit notifications. A
// limit of zero or less uses DefaultLimit.
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Recorder{limit: limit, now: time.Now}
}

// Success records a success notification.
func (r *Recorder) Success(_ context.Context, msg string) {
	r.add(LevelSuccess, msg)
}

// Error records an error notification.
func (r *Recorder) Error(_ context.Context, msg string) {
	r.add(LevelError, msg)
}

// Drain returns the queued notifications in order and empties the queue.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.pending
	r.pending = nil
	return out
}

// Pending returns a copy of the queue without draining it.
func (r *Recorder) Pending() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.pending...)
}

func (r *Recorder) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, Notification{Level: level, Message: msg, Time: r.now()})
	if over := len(r.pending) - r.limit; over > 0 {
		r.pending = append([]Notification(nil), r.pending[over:]...)
	}
}

// Multi delivers every notification to each notifier in order.
type Multi []ports.Notifier

// Success forwards to every notifier.
func (m Multi) Success(ctx context.Context, msg string) {
	for _, n := range m {
		n.Success(ctx, msg)
	}
}

// Error forwards to every notifier.
func (m Multi) Error(ctx context.Context, msg string) {
	for _, n := range m {
		n.Error(ctx, msg)
	}
}
