package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/pkg/httpcontext"
)

// SyncStatus exposes the startup connectivity flag and device identity.
type SyncStatus interface {
	RemoteAvailable() bool
	DeviceID() string
}

// QueueDepth reports how many remote writes are waiting.
type QueueDepth interface {
	Pending() int
}

type StatusHandler struct {
	baseHandler
	sync  SyncStatus
	queue QueueDepth
}

func NewStatusHandler(sync SyncStatus, queue QueueDepth, adapter *httpcontext.Adapter, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		baseHandler: newBaseHandler(adapter, logger),
		sync:        sync,
		queue:       queue,
	}
}

// @Summary Sync status for the passive offline notice
// @Tags status
// @Router /api/v1/status [get]
func (h *StatusHandler) Get(ctx *fasthttp.RequestCtx) {
	pending := 0
	if h.queue != nil {
		pending = h.queue.Pending()
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]any{
		"remote_available": h.sync.RemoteAvailable(),
		"device_id":        h.sync.DeviceID(),
		"mirror_pending":   pending,
	})
}
