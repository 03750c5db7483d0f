package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/api/transport"
	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/pkg/httpcontext"
	settingsUC "github.com/fastygo/quantix/usecase/settings"
)

type SettingsHandler struct {
	baseHandler
	uc *settingsUC.UseCase
}

func NewSettingsHandler(uc *settingsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, h.uc.Get(stdCtx))
}

// @Router /api/v1/settings [put]
func (h *SettingsHandler) Update(ctx *fasthttp.RequestCtx) {
	var req transport.SettingsUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	patch := settingsUC.Patch{
		AppName:     req.AppName,
		AppSubtitle: req.AppSubtitle,
		Timezone:    req.Timezone,
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		patch.Theme = &theme
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.uc.Update(stdCtx, patch)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondMutation(ctx, http.StatusOK, out.Settings, out)
}
