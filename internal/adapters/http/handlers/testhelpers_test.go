package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard/internal/domain/task"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return testTime }

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// sampleBoard has a and b in TODO, c in DONE; a is due the day before testTime.
func sampleBoard(t *testing.T) task.Board {
	t.Helper()
	due := testTime.AddDate(0, 0, -1)
	b, rejected := task.Group([]task.Task{
		{ID: "a", Title: "Alpha", Category: task.CategoryTodo, DueDate: &due},
		{ID: "b", Title: "Beta", Category: task.CategoryTodo},
		{ID: "c", Title: "Gamma", Category: task.CategoryDone},
	})
	if len(rejected) != 0 {
		t.Fatalf("rejected = %v", rejected)
	}
	return b
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := sonic.ConfigStd.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := sonic.ConfigStd.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
