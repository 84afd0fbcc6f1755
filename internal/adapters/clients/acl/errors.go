// Package acl is the anti-corruption layer between the remote task API and
// the board's domain. Per-resource wire types and translators live in
// acl/task and acl/activity; request plumbing and error mapping live here.
package acl

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

const maxErrorBodySize = 1 << 20

// errorBody accepts both error shapes the task API produces: RFC 9457
// problem documents ({"detail", "errors":[{"location"|"field","message"}]})
// and plain Express bodies ({"message"} or {"error"}).
type errorBody struct {
	Detail  string       `json:"detail"`
	Message string       `json:"message"`
	Error   string       `json:"error"`
	Errors  []fieldError `json:"errors"`
}

type fieldError struct {
	Location string `json:"location"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

func (b errorBody) text() string {
	for _, s := range []string{b.Detail, b.Message, b.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// statusSentinel maps a task API status to the domain error it means.
func statusSentinel(code int) error {
	switch {
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case code == http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case code == http.StatusForbidden:
		return domain.ErrForbidden
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case code == http.StatusConflict:
		return domain.ErrConflict
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return nil
	}
}

// TranslateHTTPError turns a non-2xx task API response into a domain error.
// Field errors on a 400 or 422 become a *domain.ValidationError keyed by
// bare field name.
func TranslateHTTPError(resp *http.Response) error {
	body := readErrorBody(resp)

	msg := body.text()
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	sentinel := statusSentinel(resp.StatusCode)
	switch {
	case sentinel == nil:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	case sentinel == domain.ErrValidation && len(body.Errors) > 0:
		return toValidationError(body.Errors)
	default:
		return fmt.Errorf("%s: %w", msg, sentinel)
	}
}

// readErrorBody decodes a JSON or problem+json body. Anything else, or a
// body that fails to decode, yields the zero value.
func readErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mt != "application/json" && mt != "application/problem+json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}
	var b errorBody
	if err := sonic.ConfigStd.Unmarshal(raw, &b); err != nil {
		return errorBody{}
	}
	return b
}

func toValidationError(errs []fieldError) *domain.ValidationError {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		name := e.Field
		if name == "" {
			name = strings.TrimPrefix(e.Location, "body.")
		}
		fields[name] = e.Message
	}
	return &domain.ValidationError{Fields: fields}
}
