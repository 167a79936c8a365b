package http

import (
	"errors"
	"log/slog"
	"net/http"

	"librarycatalog/internal/httpx"
	"librarycatalog/internal/library"
	"librarycatalog/internal/validation"
)

// writeServiceError maps catalog errors onto the JSON error envelope. Storage
// and unclassified failures are logged and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *library.ValidationError
	switch {
	case errors.As(err, &verr):
		writeInvalid(w, r, verr.Fields)
	case errors.Is(err, library.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, library.ErrConflict):
		httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", err.Error(), nil)
	default:
		logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", httpx.RequestIDFrom(r),
			"error", err,
		)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

func writeInvalid(w http.ResponseWriter, r *http.Request, fields []validation.FieldError) {
	httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toDetails(fields))
}

func toDetails(fields []validation.FieldError) []httpx.ErrorDetail {
	details := make([]httpx.ErrorDetail, 0, len(fields))
	for _, f := range fields {
		details = append(details, httpx.ErrorDetail{Field: f.Field, Message: f.Message})
	}
	return details
}

// decodeBody reads the request body into dst, answering 400 or 413 itself
// when the body cannot be used.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := httpx.DecodeJSON(r, dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
		return false
	}
	httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
	return false
}
