package cli_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskboard/internal/adapters/cli"
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/activity"
	"github.com/jsamuelsen11/taskboard/internal/domain/session"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard/internal/ports"
	"github.com/jsamuelsen11/taskboard/mocks"
)

var (
	testNow  = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	testUser = &session.Session{UserID: "u1", Email: "ada@example.com", DisplayName: "Ada"}
)

type fixture struct {
	board    *mocks.MockBoardService
	sessions *mocks.MockSessionSource
	idp      *mocks.MockIdentityProvider
	env      *cli.Env
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		board:    mocks.NewMockBoardService(t),
		sessions: mocks.NewMockSessionSource(t),
		idp:      mocks.NewMockIdentityProvider(t),
	}
	f.env = &cli.Env{
		Board:    f.board,
		Sessions: f.sessions,
		Identity: f.idp,
		Now:      func() time.Time { return testNow },
	}
	return f
}

func (f *fixture) signedIn() {
	f.sessions.EXPECT().Ready(mock.Anything).Return(session.State{Session: testUser}, nil)
}

func (f *fixture) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCommand(f.env)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func boardOf(t *testing.T, tasks ...task.Task) task.Board {
	t.Helper()
	b, rejected := task.Group(tasks)
	require.Empty(t, rejected)
	return b
}

func TestBoardCommand(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.signedIn()
	f.board.EXPECT().Fetch(mock.Anything).Return(nil)
	f.board.EXPECT().Board().Return(boardOf(t,
		task.Task{ID: "a", Title: "Alpha", Category: task.CategoryTodo},
		task.Task{ID: "b", Title: "Beta", Category: task.CategoryDone},
	))

	out, err := f.run(t, "", "board")

	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Ada")
	assert.Contains(t, out, "To Do (1)")
	assert.Contains(t, out, "0. Alpha [a]")
	assert.Contains(t, out, "Done (1)")
}

func TestBoardCommand_NotSignedIn(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.sessions.EXPECT().Ready(mock.Anything).Return(session.State{}, nil)

	_, err := f.run(t, "", "board")

	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestCommandsCarryRequestID(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	var logs bytes.Buffer
	f.env.Logger = slog.New(slog.NewJSONHandler(&logs, nil))

	f.sessions.EXPECT().Ready(mock.MatchedBy(func(ctx context.Context) bool {
		id := httpclient.RequestIDFromContext(ctx)
		logging.FromContext(ctx).InfoContext(ctx, "session lookup")
		return id != ""
	})).Return(session.State{Session: testUser}, nil)

	_, err := f.run(t, "", "whoami")

	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"command":"whoami"`)
	assert.Contains(t, logs.String(), `"request_id":`)
}

func TestAddCommand(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.signedIn()

	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local)
	f.board.EXPECT().Create(mock.Anything, task.Input{
		Title:    "Write report",
		Category: task.CategoryInProgress,
		DueDate:  &due,
	}).Return(nil)
	f.board.EXPECT().Board().Return(task.NewBoard())

	_, err := f.run(t, "", "add", "--title", "Write report", "-c", "in-progress", "--due", "2026-05-01")

	require.NoError(t, err)
}

func TestAddCommand_BadFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing title", args: []string{"add"}},
		{name: "bad category", args: []string{"add", "-t", "x", "-c", "later"}},
		{name: "bad due date", args: []string{"add", "-t", "x", "--due", "tomorrow"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			_, err := f.run(t, "", tt.args...)

			require.Error(t, err)
		})
	}
}

func TestAddCommand_CreateFails(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.signedIn()
	f.board.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("boom"))

	_, err := f.run(t, "", "add", "-t", "x")

	require.EqualError(t, err, "boom")
}

func TestEditCommand_SendsOnlyChangedFlags(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.signedIn()
	f.board.EXPECT().Update(mock.Anything, "a", mock.MatchedBy(func(p task.Patch) bool {
		return p.Title == nil && p.Description != nil && *p.Description == "" &&
			p.Category != nil && *p.Category == task.CategoryDone && p.ClearDueDate
	})).Return(nil)
	f.board.EXPECT().Board().Return(task.NewBoard())

	_, err := f.run(t, "", "edit", "a", "--description", "", "-c", "done", "--due", "")

	require.NoError(t, err)
}

func TestEditCommand_NothingToChange(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.run(t, "", "edit", "a")

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		stdin       string
		wantConfirm bool
		wantOut     string
	}{
		{name: "yes flag", args: []string{"delete", "a", "--yes"}, wantConfirm: true},
		{name: "answered y", args: []string{"delete", "a"}, stdin: "y\n", wantConfirm: true},
		{name: "answered YES", args: []string{"rm", "a"}, stdin: "YES\n", wantConfirm: true},
		{name: "answered n", args: []string{"delete", "a"}, stdin: "n\n", wantOut: "Cancelled."},
		{name: "no answer", args: []string{"delete", "a"}, stdin: "", wantOut: "Cancelled."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.signedIn()
			f.board.EXPECT().Remove(mock.Anything, "a", mock.Anything).
				RunAndReturn(func(ctx context.Context, _ string, c ports.Confirmer) (bool, error) {
					return c.Confirm(ctx, "Are you sure you want to delete this task?")
				})

			out, err := f.run(t, tt.stdin, tt.args...)

			require.NoError(t, err)
			if tt.wantConfirm {
				assert.NotContains(t, out, "Cancelled.")
			} else {
				assert.Contains(t, out, tt.wantOut)
			}
		})
	}
}

func TestMoveCommand(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.signedIn()
	f.board.EXPECT().Fetch(mock.Anything).Return(nil)
	f.board.EXPECT().Board().Return(boardOf(t,
		task.Task{ID: "a", Title: "Alpha", Category: task.CategoryTodo},
		task.Task{ID: "b", Title: "Beta", Category: task.CategoryTodo},
	))
	f.board.EXPECT().Move(mock.Anything, task.DragResult{
		TaskID:      "b",
		Source:      task.Position{Category: task.CategoryTodo, Index: 1},
		Destination: &task.Position{Category: task.CategoryDone, Index: 0},
	}).Return(nil)

	_, err := f.run(t, "", "move", "b", "done", "0")

	require.NoError(t, err)
}

func TestMoveCommand_ReorderFailureStillPrintsBoard(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.signedIn()
	f.board.EXPECT().Fetch(mock.Anything).Return(nil)
	f.board.EXPECT().Board().Return(boardOf(t, task.Task{ID: "a", Title: "Alpha", Category: task.CategoryTodo}))
	f.board.EXPECT().Move(mock.Anything, mock.Anything).Return(errors.New("task API: 500"))

	out, err := f.run(t, "", "move", "a", "done", "0")

	require.EqualError(t, err, "task API: 500")
	assert.Contains(t, out, "Alpha")
}

func TestMoveCommand_BadArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "negative index", args: []string{"move", "--", "a", "done", "-1"}, want: domain.ErrValidation},
		{name: "non-numeric index", args: []string{"move", "a", "done", "first"}, want: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			_, err := f.run(t, "", tt.args...)

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMoveCommand_UnknownTask(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.signedIn()
	f.board.EXPECT().Fetch(mock.Anything).Return(nil)
	f.board.EXPECT().Board().Return(task.NewBoard())

	_, err := f.run(t, "", "move", "zz", "todo", "0")

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivitiesCommand(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.signedIn()
	f.board.EXPECT().Activities(mock.Anything).Return([]activity.Activity{
		{ID: "1", TaskID: "a", Action: "created"},
	}, nil)

	out, err := f.run(t, "", "activities")

	require.NoError(t, err)
	assert.Contains(t, out, "created")
}

func TestWhoamiCommand_SignedOut(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.sessions.EXPECT().Ready(mock.Anything).Return(session.State{}, nil)

	out, err := f.run(t, "", "whoami")

	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in")
}

func TestLoginLogout(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.idp.EXPECT().SignIn(mock.Anything, "tok").Return(testUser, nil)
	f.idp.EXPECT().SignOut(mock.Anything).Return()

	out, err := f.run(t, "", "login", "tok")
	require.NoError(t, err)
	assert.Equal(t, "Signed in as Ada\n", out)

	out, err = f.run(t, "", "logout")
	require.NoError(t, err)
	assert.Equal(t, "Signed out.\n", out)
}

func TestLoginCommand_Rejected(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.idp.EXPECT().SignIn(mock.Anything, "bad").Return(nil, domain.ErrUnauthenticated)

	_, err := f.run(t, "", "login", "bad")

	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestServeCommand(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	served := false
	f.env.Serve = func(context.Context) error {
		served = true
		return nil
	}

	_, err := f.run(t, "", "serve")

	require.NoError(t, err)
	assert.True(t, served)
}

func TestServeCommand_Unavailable(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.run(t, "", "serve")

	require.Error(t, err)
}
