package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/api/transport"
	"github.com/fastygo/quantix/pkg/httpcontext"
	goalUC "github.com/fastygo/quantix/usecase/goal"
)

type GoalHandler struct {
	baseHandler
	uc *goalUC.UseCase
}

func NewGoalHandler(uc *goalUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Router /api/v1/goals [get]
func (h *GoalHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goals := h.uc.List(stdCtx)
	h.respondList(ctx, goals, len(goals))
}

// @Router /api/v1/goals [post]
func (h *GoalHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.GoalCreateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.uc.Create(stdCtx, goalUC.Input{
		Title:    req.Title,
		Target:   req.Target,
		XPReward: req.XPReward,
	})
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondMutation(ctx, http.StatusCreated, out.Goal, out)
}

// @Summary Set goal progress; reaching the target grants its XP reward once
// @Tags goals
// @Router /api/v1/goals/{id}/progress [put]
func (h *GoalHandler) UpdateProgress(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.GoalProgressRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.Progress == nil {
		h.respondInvalid(ctx, "progress is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.uc.UpdateProgress(stdCtx, id, *req.Progress)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondMutation(ctx, http.StatusOK, map[string]any{
		"goal":    out.Goal,
		"profile": out.Profile,
	}, out)
}

// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.uc.Delete(stdCtx, id)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondMutation(ctx, http.StatusOK, map[string]string{"id": id}, out)
}
