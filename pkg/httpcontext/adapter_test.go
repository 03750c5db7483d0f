package httpcontext

import (
	"testing"
	"time"

	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/quantix/pkg/logger"
)

func TestAttachPropagatesRequestID(t *testing.T) {
	var rc fasthttp.RequestCtx
	rc.Request.Header.Set(HeaderRequestID, "req-42")

	ctx, cancel := NewAdapter(time.Second, "device-1").Attach(&rc)
	defer cancel()

	if got := appLogger.RequestID(ctx); got != "req-42" {
		t.Fatalf("request id = %q", got)
	}
	if got := string(rc.Response.Header.Peek(HeaderRequestID)); got != "req-42" {
		t.Fatalf("response header = %q", got)
	}
	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("expected deadline")
	}
}

func TestRequestIDIsStableWithinRequest(t *testing.T) {
	var rc fasthttp.RequestCtx
	first := RequestID(&rc)
	if first == "" || RequestID(&rc) != first {
		t.Fatalf("request id changed within one request")
	}
}
