// Package render draws the task board and its notifications as plain text
// for a terminal. Colors come from fatih/color and are only written when the
// output is a terminal that accepts them.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jsamuelsen11/taskboard/internal/domain/activity"
	"github.com/jsamuelsen11/taskboard/internal/domain/session"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
)

// DueLayout is how due dates appear on cards.
const DueLayout = "Jan 2, 2006"

const timestampLayout = "2006-01-02 15:04"

type palette struct {
	bold, dim, red, green, yellow *color.Color
}

func newPalette(enabled bool) palette {
	style := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		bold:   style(color.Bold),
		dim:    style(color.Faint),
		red:    style(color.FgRed),
		green:  style(color.FgGreen),
		yellow: style(color.FgYellow),
	}
}

// Level distinguishes success and error notifications.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

// Printer writes board views to w.
type Printer struct {
	w        io.Writer
	color    bool
	terminal *bool
	now      func() time.Time
	pal      palette
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor allows colors. They are still only written when the output is a
// color terminal.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		p.color = enabled
	}
}

// WithTerminal replaces the TTY, NO_COLOR and TERM checks on the output
// writer.
func WithTerminal(isTerminal bool) Option {
	return func(p *Printer) {
		p.terminal = &isTerminal
	}
}

// WithClock sets the clock used to classify due dates.
func WithClock(now func() time.Time) Option {
	return func(p *Printer) {
		p.now = now
	}
}

// New creates a Printer writing to w. Colors are off by default.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}

	var terminal bool
	if p.terminal != nil {
		terminal = *p.terminal
	} else {
		terminal = colorAllowed(os.Getenv, IsTerminal(w))
	}
	p.pal = newPalette(p.color && terminal)
	return p
}

// colorAllowed honors NO_COLOR and TERM=dumb on top of the TTY check.
func colorAllowed(getenv func(string) string, tty bool) bool {
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	return tty
}

// IsTerminal reports whether stream is a file descriptor attached to a
// terminal.
func IsTerminal(stream any) bool {
	f, ok := stream.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Header prints the title line and the greeting for s. A nil session
// prints a sign-in hint instead.
func (p *Printer) Header(s *session.Session) error {
	ew := &errWriter{w: p.w}
	ew.printf("%s\n", p.paint(p.pal.bold, "Task Board"))
	if s == nil {
		ew.printf("Not signed in. Run `taskboard login <id-token>`.\n")
		return ew.err
	}
	ew.printf("Welcome back, %s\n", s.Name())
	if s.Email != "" && s.Email != s.Name() {
		ew.printf("%s\n", p.paint(p.pal.dim, s.Email))
	}
	ew.printf("\n")
	return ew.err
}

// Board prints every column in board order.
func (p *Printer) Board(b task.Board) error {
	for i, c := range task.Categories() {
		if i > 0 {
			if _, err := io.WriteString(p.w, "\n"); err != nil {
				return err
			}
		}
		if err := p.Column(c, b.Column(c)); err != nil {
			return err
		}
	}
	return nil
}

// Column prints the title of category c and its cards in order. Each card is
// prefixed with its index, which is what `taskboard move` expects.
func (p *Printer) Column(c task.Category, tasks []task.Task) error {
	ew := &errWriter{w: p.w}
	ew.printf("%s (%d)\n", p.paint(p.pal.bold, c.Title()), len(tasks))
	if len(tasks) == 0 {
		ew.printf("  %s\n", p.paint(p.pal.dim, "no tasks"))
		return ew.err
	}
	if ew.err != nil {
		return ew.err
	}
	for i := range tasks {
		if _, err := fmt.Fprintf(p.w, "  %d. ", i); err != nil {
			return err
		}
		if err := p.Card(tasks[i]); err != nil {
			return err
		}
	}
	return nil
}

// Card prints one task: title and ID, then the description and due date on
// indented lines when present. The due date is colored by urgency.
func (p *Printer) Card(t task.Task) error {
	ew := &errWriter{w: p.w}
	ew.printf("%s %s\n", t.Title, p.paint(p.pal.dim, "["+t.ID+"]"))
	if t.Description != "" {
		ew.printf("     %s\n", t.Description)
	}
	if t.DueDate != nil {
		urgency := task.ClassifyDue(t.DueDate, p.now())
		due := "due " + t.DueDate.Format(DueLayout)
		if urgency != task.UrgencyNone {
			due += " (" + urgency.ClassName() + ")"
		}
		ew.printf("     %s\n", p.paint(p.urgencyStyle(urgency), due))
	}
	return ew.err
}

// Notification prints a toast line.
func (p *Printer) Notification(level Level, msg string) error {
	var line string
	switch level {
	case LevelError:
		line = p.paint(p.pal.red, "✗ "+msg)
	default:
		line = p.paint(p.pal.green, "✓ "+msg)
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

// Activities prints activity records as a table, newest first as given.
func (p *Printer) Activities(records []activity.Activity) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(p.w, p.paint(p.pal.dim, "no activity"))
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	ew := &errWriter{w: tw}
	ew.printf("TIME\tACTION\tTASK\tDETAILS\n")
	for _, r := range records {
		ts := "-"
		if !r.Timestamp.IsZero() {
			ts = r.Timestamp.Local().Format(timestampLayout)
		}
		ew.printf("%s\t%s\t%s\t%s\n", ts, orDash(r.Action), orDash(r.TaskID), orDash(oneLine(r.Details)))
	}
	if ew.err != nil {
		return ew.err
	}
	return tw.Flush()
}

func (p *Printer) paint(style *color.Color, s string) string {
	if style == nil {
		return s
	}
	return style.Sprint(s)
}

func (p *Printer) urgencyStyle(u task.Urgency) *color.Color {
	switch u {
	case task.UrgencyOverdue:
		return p.pal.red
	case task.UrgencySoon:
		return p.pal.yellow
	case task.UrgencyNormal:
		return p.pal.green
	default:
		return nil
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
