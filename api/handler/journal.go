package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/api/transport"
	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/pkg/httpcontext"
	journalUC "github.com/fastygo/quantix/usecase/journal"
)

type JournalHandler struct {
	baseHandler
	uc *journalUC.UseCase
}

func NewJournalHandler(uc *journalUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Router /api/v1/journal [get]
func (h *JournalHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entries := h.uc.List(stdCtx)
	h.respondList(ctx, entries, len(entries))
}

// @Router /api/v1/journal [post]
func (h *JournalHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.JournalCreateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.uc.Create(stdCtx, journalUC.Input{
		Title:   req.Title,
		Content: req.Content,
		Images:  req.Images,
		Mood:    domain.Mood(req.Mood),
	})
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondMutation(ctx, http.StatusCreated, out.Journal, out)
}

// @Router /api/v1/journal/{id} [put]
func (h *JournalHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.JournalUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	patch := journalUC.Patch{
		Title:   req.Title,
		Content: req.Content,
		Images:  req.Images,
	}
	if req.Mood != nil {
		mood := domain.Mood(*req.Mood)
		patch.Mood = &mood
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.uc.Update(stdCtx, id, patch)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondMutation(ctx, http.StatusOK, out.Journal, out)
}

// @Router /api/v1/journal/{id} [delete]
func (h *JournalHandler) Delete(ctx *fasthttp.RequestCtx) {
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
