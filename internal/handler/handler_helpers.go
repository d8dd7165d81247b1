package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperr "chatserver/pkg/errors"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError maps the error taxonomy onto HTTP statuses and the
// {"error": ...} body the client expects. Multi-field validation
// failures send the list of reasons; internal detail is never leaked.
func WriteError(w http.ResponseWriter, err error) {
	var app *apperr.AppError
	if !errors.As(err, &app) {
		WriteJSON(w, http.StatusInternalServerError, map[string]any{"error": "Server error"})
		return
	}

	var body any = app.Message
	if len(app.Reasons) > 1 {
		body = app.Reasons
	}
	if app.Code == apperr.CodeInternal {
		body = "Server error"
	}
	WriteJSON(w, statusOf(app.Code), map[string]any{"error": body})
}

func statusOf(code apperr.Code) int {
	switch code {
	case apperr.CodeInvalidArgument, apperr.CodeAlreadyExists:
		return http.StatusBadRequest
	case apperr.CodeUnauthenticated:
		return http.StatusUnauthorized
	case apperr.CodePermissionDenied:
		return http.StatusForbidden
	case apperr.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody treats an empty body as an empty object, so required-field
// checks downstream report the missing fields instead.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return apperr.InvalidArg("Malformed request body")
	}
	return nil
}
