package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/api/transport"
	"github.com/fastygo/quantix/internal/infrastructure/monitor"
	"github.com/fastygo/quantix/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// Check reports dependency status. Only the local store can make the daemon
// unhealthy; an absent remote is the normal degraded mode.
// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	payload := map[string]any{
		"timestamp":  time.Now().UTC(),
		"last_check": status.LastCheck,
		"degraded":   !status.PostgreSQL || !status.Redis,
		"services": map[string]any{
			"postgresql": status.PostgreSQL,
			"redis":      status.Redis,
			"local_store": map[string]any{
				"online": status.LocalStore,
				"keys":   status.LocalKeys,
			},
		},
	}

	if status.LocalStore {
		h.respondSuccess(ctx, http.StatusOK, payload)
		return
	}
	h.respondJSON(ctx, http.StatusServiceUnavailable, transport.NewError("UNAVAILABLE", "local store unavailable", payload))
}
