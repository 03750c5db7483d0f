package handler

import (
	"context"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/internal/services"
	"github.com/fastygo/quantix/pkg/httpcontext"
	focusUC "github.com/fastygo/quantix/usecase/focus"
)

type FocusHandler struct {
	baseHandler
	uc *focusUC.UseCase
}

func NewFocusHandler(uc *focusUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *FocusHandler {
	return &FocusHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Current focus session and its live elapsed value
// @Tags focus
// @Router /api/v1/focus [get]
func (h *FocusHandler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, h.uc.Current(stdCtx))
}

// @Summary Focus session history
// @Tags focus
// @Router /api/v1/focus/sessions [get]
func (h *FocusHandler) History(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sessions := h.uc.History(stdCtx)
	h.respondList(ctx, sessions, len(sessions))
}

// @Router /api/v1/focus/start [post]
func (h *FocusHandler) Start(ctx *fasthttp.RequestCtx) {
	h.transition(ctx, h.uc.Start)
}

// @Router /api/v1/focus/pause [post]
func (h *FocusHandler) Pause(ctx *fasthttp.RequestCtx) {
	h.transition(ctx, h.uc.Pause)
}

// @Router /api/v1/focus/resume [post]
func (h *FocusHandler) Resume(ctx *fasthttp.RequestCtx) {
	h.transition(ctx, h.uc.Resume)
}

// @Summary Stop the session and log it
// @Tags focus
// @Router /api/v1/focus/stop [post]
func (h *FocusHandler) Stop(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.uc.Stop(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondMutation(ctx, http.StatusOK, out.Session, out)
}

func (h *FocusHandler) transition(ctx *fasthttp.RequestCtx, fn func(context.Context) (services.Outcome, error)) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := fn(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondMutation(ctx, http.StatusOK, h.uc.Current(stdCtx), out)
}
