package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Engine hooks
	e := NoopEngineHooks{}
	e.OnContentSelected(ctx, "main", 3, 24)
	e.OnColumnsPlanned(ctx, "main", 3, 4, 4)
	e.OnPolicyRule(ctx, "main", "prevent_overflow", 1)
	e.OnFontScaled(ctx, "main", 22, false)
	e.OnLayoutComputed(ctx, "main", 4, 22, time.Millisecond)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layout")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	// Server hooks
	s := NoopServerHooks{}
	s.OnRequest(ctx, "GET", "/api/v1/board")
	s.OnResponse(ctx, "GET", "/api/v1/board", 200, time.Millisecond)
	s.OnClientConnect(ctx, "client-1")
	s.OnClientDisconnect(ctx, "client-1")
	s.OnBroadcast(ctx, "main", 3)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Engine() should return NoopEngineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}
}

type countingEngineHooks struct {
	NoopEngineHooks
	computed int
}

func (h *countingEngineHooks) OnLayoutComputed(context.Context, string, int, int, time.Duration) {
	h.computed++
}

type countingCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string) {
	h.hits++
}

type countingServerHooks struct {
	NoopServerHooks
	broadcasts int
}

func (h *countingServerHooks) OnBroadcast(context.Context, string, int) {
	h.broadcasts++
}

func TestSetHooks(t *testing.T) {
	defer Reset()

	engine := &countingEngineHooks{}
	cache := &countingCacheHooks{}
	server := &countingServerHooks{}

	SetEngineHooks(engine)
	SetCacheHooks(cache)
	SetServerHooks(server)

	ctx := context.Background()
	Engine().OnLayoutComputed(ctx, "main", 4, 22, time.Millisecond)
	Engine().OnLayoutComputed(ctx, "main", 4, 22, time.Millisecond)
	Cache().OnCacheHit(ctx, "layout")
	Server().OnBroadcast(ctx, "main", 2)

	if engine.computed != 2 {
		t.Errorf("computed = %d, want 2", engine.computed)
	}
	if cache.hits != 1 {
		t.Errorf("hits = %d, want 1", cache.hits)
	}
	if server.broadcasts != 1 {
		t.Errorf("broadcasts = %d, want 1", server.broadcasts)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	defer Reset()
	Reset()

	SetEngineHooks(nil)
	SetCacheHooks(nil)
	SetServerHooks(nil)

	if Engine() == nil || Cache() == nil || Server() == nil {
		t.Error("nil registration must keep the noop defaults")
	}
}

func TestReset(t *testing.T) {
	SetEngineHooks(&countingEngineHooks{})
	SetCacheHooks(&countingCacheHooks{})
	SetServerHooks(&countingServerHooks{})

	Reset()

	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Reset() should restore engine noop hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore cache noop hooks")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Reset() should restore server noop hooks")
	}
}
