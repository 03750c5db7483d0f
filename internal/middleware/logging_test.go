package middleware

import (
	"testing"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecoverAnswers500(t *testing.T) {
	h := Recover(nil)(func(*fasthttp.RequestCtx) { panic("boom") })

	var ctx fasthttp.RequestCtx
	h(&ctx)
	if ctx.Response.StatusCode() != fasthttp.StatusInternalServerError {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
			return func(ctx *fasthttp.RequestCtx) {
				order = append(order, name)
				next(ctx)
			}
		}
	}
	h := Chain(mark("outer"), mark("inner"))(func(*fasthttp.RequestCtx) { order = append(order, "handler") })

	var ctx fasthttp.RequestCtx
	h(&ctx)
	if len(order) != 3 || order[0] != "outer" || order[1] != "inner" || order[2] != "handler" {
		t.Fatalf("order = %v", order)
	}
}

func TestRequestLoggerRecordsRequest(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := RequestLogger(zap.New(core))(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusCreated)
	})

	var ctx fasthttp.RequestCtx
	ctx.Request.SetRequestURI("/api/v1/tasks")
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	h(&ctx)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/api/v1/tasks" || fields["status"] != int64(201) {
		t.Fatalf("fields = %v", fields)
	}
	if len(ctx.Response.Header.Peek("X-Request-ID")) == 0 {
		t.Fatal("request id header not set")
	}
}
