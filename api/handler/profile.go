package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/api/transport"
	"github.com/fastygo/quantix/pkg/httpcontext"
	profileUC "github.com/fastygo/quantix/usecase/profile"
)

type ProfileHandler struct {
	baseHandler
	uc *profileUC.UseCase
}

func NewProfileHandler(uc *profileUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get profile
// @Tags profile
// @Success 200 {object} transport.Envelope
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, h.uc.GetProfile(stdCtx))
}

// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Router /api/v1/profile [put]
func (h *ProfileHandler) UpdateProfile(ctx *fasthttp.RequestCtx) {
	var req transport.ProfileUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.uc.UpdateProfile(stdCtx, profileUC.Patch{
		Name:      req.Name,
		AvatarRef: req.AvatarRef,
		Zoom:      req.Zoom,
	})
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondMutation(ctx, http.StatusOK, out.Profile, out)
}

// @Summary Reset level and XP
// @Tags profile
// @Router /api/v1/profile/reset-level [post]
func (h *ProfileHandler) ResetLevel(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.uc.ResetLevel(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondMutation(ctx, http.StatusOK, out.Profile, out)
}
