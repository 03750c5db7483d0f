package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/pkg/httpcontext"
	streakUC "github.com/fastygo/quantix/usecase/streak"
)

type StreakHandler struct {
	baseHandler
	uc *streakUC.UseCase
}

func NewStreakHandler(uc *streakUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *StreakHandler {
	return &StreakHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Streak, per-day stats and weekly intensity
// @Tags streak
// @Router /api/v1/streak [get]
func (h *StreakHandler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, h.uc.Get(stdCtx))
}

// @Summary Start the streak over from now
// @Tags streak
// @Router /api/v1/streak/reset [post]
func (h *StreakHandler) Reset(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.uc.Reset(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondMutation(ctx, http.StatusOK, h.uc.Get(stdCtx), out)
}
