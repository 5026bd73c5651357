// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout computation, cache operations, and the HTTP
// layout service.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the layout engine dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// The engine hooks double as a test seam: because every heuristic decision is
// reported (which policy rule fired, what the demand estimate was), tests can
// register capturing hooks and assert on intermediate decisions instead of
// reverse-engineering them from the final column count.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Engine().OnColumnsPlanned(ctx, slideID, baseline, demand, columns)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the layout engine.
//
// Events fire once per Compute call, except OnPolicyRule which fires once per
// column policy rule that actually changed the plan.
type EngineHooks interface {
	// OnContentSelected reports the filtered content for a slide.
	OnContentSelected(ctx context.Context, slideID string, groupCount, productCount int)

	// OnColumnsPlanned reports the column plan: the group-count baseline,
	// the capacity-demand estimate, and the final column count.
	OnColumnsPlanned(ctx context.Context, slideID string, baseline, demand, columns int)

	// OnPolicyRule reports a column policy rule that fired and its delta.
	OnPolicyRule(ctx context.Context, slideID, rule string, delta int)

	// OnFontScaled reports the computed font size. manual is true when the
	// size came from a manual override rather than the scaling curve.
	OnFontScaled(ctx context.Context, slideID string, sizePx int, manual bool)

	// OnLayoutComputed reports the final result of a Compute call.
	OnLayoutComputed(ctx context.Context, slideID string, columns, sizePx int, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP layout service.
type ServerHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed HTTP request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnClientConnect records a websocket client connecting.
	OnClientConnect(ctx context.Context, clientID string)

	// OnClientDisconnect records a websocket client disconnecting.
	OnClientDisconnect(ctx context.Context, clientID string)

	// OnBroadcast records a layout broadcast to websocket clients.
	OnBroadcast(ctx context.Context, slideID string, clients int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnContentSelected(context.Context, string, int, int)            {}
func (NoopEngineHooks) OnColumnsPlanned(context.Context, string, int, int, int)        {}
func (NoopEngineHooks) OnPolicyRule(context.Context, string, string, int)              {}
func (NoopEngineHooks) OnFontScaled(context.Context, string, int, bool)                {}
func (NoopEngineHooks) OnLayoutComputed(context.Context, string, int, int, time.Duration) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                          {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration)     {}
func (NoopServerHooks) OnClientConnect(context.Context, string)                            {}
func (NoopServerHooks) OnClientDisconnect(context.Context, string)                         {}
func (NoopServerHooks) OnBroadcast(context.Context, string, int)                           {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any layout computation.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks registers custom server hooks.
// This should be called once at application startup before the server starts.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}
