package dto

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// ProblemContentType is the media type of every error body.
const ProblemContentType = "application/problem+json"

const internalDetail = "internal error"

// ErrorResponse is an RFC 9457 problem document. Code is a stable,
// machine-readable name for the failure class.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail names one rejected input field.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type problemKind struct {
	sentinel error
	status   int
	code     string
}

// Checked in order; the first match wins.
var problemKinds = []problemKind{
	{domain.ErrValidation, http.StatusBadRequest, "validation_failed"},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{domain.ErrNotConfirmed, http.StatusPreconditionRequired, "confirmation_required"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUnavailable, http.StatusBadGateway, "task_api_unavailable"},
}

func classify(err error) (int, string) {
	for _, k := range problemKinds {
		if errors.Is(err, k.sentinel) {
			return k.status, k.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

// NewErrorResponse builds the problem document for err. Unclassified errors
// become a 500 whose detail does not echo the underlying message.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, code := classify(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Detail:   err.Error(),
		Instance: r.URL.Path,
	}
	if status == http.StatusInternalServerError {
		resp.Detail = internalDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldErrors(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as a problem document.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(resp.Status)
	if encErr := sonic.ConfigStd.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

func fieldErrors(fields map[string]string) []ErrorDetail {
	out := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		out = append(out, ErrorDetail{Field: field, Message: msg})
	}
	slices.SortFunc(out, func(a, b ErrorDetail) int {
		return strings.Compare(a.Field, b.Field)
	})
	return out
}
