// Package observability provides hooks for instrumenting the codec.
//
// The codec itself never logs and never fails on its two documented
// permissive paths (unknown encode types, unknown decode tags). These hooks
// make those paths visible without adding a hard dependency on any
// observability backend: register an implementation at startup, or leave the
// no-op defaults in place.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCodecHooks(&myCodecHooks{})
//	    // ... run application
//	}
//
// The codec emits events as it works:
//
//	observability.Codec().OnUnknownTag("x:Bogus")
package observability

import "sync"

// CodecHooks receives events from encode/decode tree walks.
type CodecHooks interface {
	// OnPassthrough records a non-primitive value that had no registered
	// encoder and was emitted unchanged. The argument is the Go type name.
	OnPassthrough(goType string)

	// OnUnknownTag records an envelope tag with no registered decoder,
	// decoded structurally as a plain map.
	OnUnknownTag(tag string)
}

// NoopCodecHooks is a no-op implementation of CodecHooks.
type NoopCodecHooks struct{}

func (NoopCodecHooks) OnPassthrough(string) {}
func (NoopCodecHooks) OnUnknownTag(string)  {}

var (
	codecHooks CodecHooks = NoopCodecHooks{}
	hooksMu    sync.RWMutex
)

// SetCodecHooks registers custom codec hooks.
// This should be called once at application startup before any codec use.
func SetCodecHooks(h CodecHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		codecHooks = h
	}
}

// Codec returns the registered codec hooks.
func Codec() CodecHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return codecHooks
}

// ResetCodecHooks restores the no-op defaults. Intended for tests.
func ResetCodecHooks() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	codecHooks = NoopCodecHooks{}
}
