package server

import (
	"encoding/json"
	"net/http"

	"github.com/askoeller/menuboard/pkg/errors"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeErr maps a pipeline error onto an HTTP status and writes it.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeError(w, r, errors.UserMessage(err), string(code), statusFromError(err))
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// statusFromError translates error codes into HTTP status codes.
func statusFromError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound, errors.ErrCodeSlideNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidTemplate, errors.ErrCodeInvalidCatalog,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidID,
		errors.ErrCodeInvalidWidth, errors.ErrCodeUnsupportedSchema:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
