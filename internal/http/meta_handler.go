package http

import (
	"log/slog"
	"net/http"

	"librarycatalog/internal/httpx"
	"librarycatalog/internal/library"
)

const (
	ServiceName    = "library-management-api"
	ServiceVersion = "1.0.0"
)

type MetaHandler struct {
	svc    *library.Service
	logger *slog.Logger
}

func NewMetaHandler(svc *library.Service, logger *slog.Logger) *MetaHandler {
	return &MetaHandler{svc: svc, logger: logger}
}

// @Summary Service info
// @Tags meta
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router / [get]
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, map[string]string{
		"message": "Library Management API",
		"service": ServiceName,
		"version": ServiceVersion,
		"docs":    "/api/v1",
	}, nil)
}

// Health reports liveness only; it never touches storage.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"` + ServiceName + `"}`))
}

// Ready reports whether the catalog document can be loaded.
func (h *MetaHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "readiness check failed", "error", err)
		httpx.JSONError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Storage unavailable", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]string{"status": "ready"}, nil)
}
