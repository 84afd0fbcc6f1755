// Package cli is the terminal front end of the task board: a cobra command
// tree that renders the board and drives the board controller.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/taskboard/internal/adapters/render"
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/session"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Env holds what the commands operate on.
type Env struct {
	Board    ports.BoardService
	Sessions ports.SessionSource
	Identity ports.IdentityProvider

	// Logger is enriched per command with the command name and request ID.
	// Defaults to a discarding logger.
	Logger *slog.Logger

	// Color allows colors in board output when stdout is a terminal.
	Color bool
	// Now defaults to time.Now.
	Now func() time.Time
	// Serve runs the local board API until ctx is cancelled.
	Serve func(ctx context.Context) error
}

// NewRootCommand builds the taskboard command tree over env.
func NewRootCommand(env *Env) *cobra.Command {
	if env.Now == nil {
		env.Now = time.Now
	}
	if env.Logger == nil {
		env.Logger = slog.New(slog.DiscardHandler)
	}

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Kanban task board for the terminal",
		Long: `taskboard shows your tasks grouped into To Do, In Progress and Done,
and lets you add, edit, delete and reorder them.

Sign in once with "taskboard login <id-token>"; the token is remembered.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			id := uuid.NewString()
			ctx := httpclient.WithRequestID(cmd.Context(), id)
			ctx = logging.WithLogger(ctx, env.Logger.With(
				slog.String("command", cmd.Name()),
				slog.String("request_id", id),
			))
			cmd.SetContext(ctx)
		},
	}

	root.AddCommand(
		newBoardCmd(env),
		newAddCmd(env),
		newEditCmd(env),
		newDeleteCmd(env),
		newMoveCmd(env),
		newActivitiesCmd(env),
		newWhoamiCmd(env),
		newLoginCmd(env),
		newLogoutCmd(env),
		newServeCmd(env),
	)
	return root
}

func (e *Env) printer(w io.Writer) *render.Printer {
	return render.New(w, render.WithColor(e.Color), render.WithClock(e.Now))
}

// requireSession waits for the identity provider and fails when nobody is
// signed in.
func (e *Env) requireSession(ctx context.Context) (*session.Session, error) {
	st, err := e.Sessions.Ready(ctx)
	if err != nil {
		return nil, err
	}
	if !st.Authenticated() {
		return nil, fmt.Errorf("not signed in, run `taskboard login <id-token>`: %w", domain.ErrUnauthenticated)
	}
	return st.Session, nil
}

// loadBoard requires a session and fetches the board.
func (e *Env) loadBoard(ctx context.Context) (*session.Session, error) {
	s, err := e.requireSession(ctx)
	if err != nil {
		return nil, err
	}
	if err := e.Board.Fetch(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (e *Env) printBoard(w io.Writer, s *session.Session) error {
	p := e.printer(w)
	if err := p.Header(s); err != nil {
		return err
	}
	return p.Board(e.Board.Board())
}
