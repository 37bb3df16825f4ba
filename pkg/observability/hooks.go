// Package observability provides hooks for metrics, tracing, and logging.
//
// The rendering core in pkg/ansi is pure and never logs. Callers that want
// visibility into rendering, splitting and theme loading register hooks at
// startup and report events around their calls into the core.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Callers emit events:
//
//	start := time.Now()
//	s, err := ansi.Format(data, opts...)
//	observability.Render().OnRender(ctx, len(s), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events about markup rendering and text indexing.
type RenderHooks interface {
	// OnThemeLoad records a theme lookup and the number of entries it holds.
	OnThemeLoad(ctx context.Context, name string, entries int, err error)

	// OnRender records a completed render call and the bytes it produced.
	OnRender(ctx context.Context, bytes int, duration time.Duration, err error)

	// OnSplit records a split of a string with the given visible length.
	OnSplit(ctx context.Context, length, offset int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnThemeLoad(context.Context, string, int, error)     {}
func (NoopRenderHooks) OnRender(context.Context, int, time.Duration, error) {}
func (NoopRenderHooks) OnSplit(context.Context, int, int)                   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup. A nil value is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
