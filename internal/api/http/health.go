package http

import (
	"net/http"
	"time"

	"github.com/globalnotes/notes-workspace/internal/api/respond"
	"github.com/globalnotes/notes-workspace/internal/kv"
)

const healthProbeKey = "notes-workspace.health-probe"

// HealthHandler handles health check endpoints. Health means the key-value
// backend answers a read.
type HealthHandler struct {
	kv kv.Store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store kv.Store) *HealthHandler {
	return &HealthHandler{kv: store}
}

// Health GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if _, _, err := h.kv.Get(healthProbeKey); err != nil {
		respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
