package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthCheck reports whether a dependency is usable. A nil HealthCheck
// always passes.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	check HealthCheck
}

func NewHealthHandler(check HealthCheck) *HealthHandler {
	return &HealthHandler{check: check}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "only GET is allowed")
		return
	}

	if h.check != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.check(ctx); err != nil {
			slog.WarnContext(r.Context(), "health check failed", "error", err)
			WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
