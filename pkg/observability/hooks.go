// Package observability lets the ganzhi libraries report what they do
// without importing a logger.
//
// Transit indexes report when they extend their cache and when a year falls
// outside their range; discoverers report each view they compute with its
// combo count and duration. Nothing is recorded until a consumer registers
// hooks, typically once at startup:
//
//	observability.SetTransitHooks(myTransitHooks{logger})
//	observability.SetDiscoveryHooks(myDiscoveryHooks{logger})
//
// Hooks may be called from several goroutines at once (see discover.Scan).
package observability

import (
	"sync"
	"time"
)

// TransitHooks receives events from transit indexes.
type TransitHooks interface {
	// OnExtend is called after an index grows to cover year; cached is
	// the number of terms it now holds.
	OnExtend(transit string, year, cached int)

	// OnUnsupported is called for a year the transit does not cover.
	OnUnsupported(transit string, year int)
}

// DiscoveryHooks receives events from discoverers.
type DiscoveryHooks interface {
	// OnDiscover is called once per computed view. Year is 0 for the
	// at-birth view.
	OnDiscover(view string, year, combos int, duration time.Duration)
}

// NoopTransitHooks ignores every event.
type NoopTransitHooks struct{}

func (NoopTransitHooks) OnExtend(string, int, int) {}
func (NoopTransitHooks) OnUnsupported(string, int) {}

// NoopDiscoveryHooks ignores every event.
type NoopDiscoveryHooks struct{}

func (NoopDiscoveryHooks) OnDiscover(string, int, int, time.Duration) {}

// slot holds one registered hook implementation.
type slot[H any] struct {
	mu   sync.RWMutex
	h    H
	noop H
}

func (s *slot[H]) get() H {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.h
}

func (s *slot[H]) set(h H) {
	if any(h) == nil {
		return
	}
	s.mu.Lock()
	s.h = h
	s.mu.Unlock()
}

func (s *slot[H]) reset() {
	s.mu.Lock()
	s.h = s.noop
	s.mu.Unlock()
}

var (
	transit   = &slot[TransitHooks]{h: NoopTransitHooks{}, noop: NoopTransitHooks{}}
	discovery = &slot[DiscoveryHooks]{h: NoopDiscoveryHooks{}, noop: NoopDiscoveryHooks{}}
)

// SetTransitHooks replaces the transit hooks. Nil is ignored.
func SetTransitHooks(h TransitHooks) { transit.set(h) }

// SetDiscoveryHooks replaces the discovery hooks. Nil is ignored.
func SetDiscoveryHooks(h DiscoveryHooks) { discovery.set(h) }

// Transit returns the registered transit hooks.
func Transit() TransitHooks { return transit.get() }

// Discovery returns the registered discovery hooks.
func Discovery() DiscoveryHooks { return discovery.get() }

// Reset restores the no-op hooks. Tests that register hooks should defer it.
func Reset() {
	transit.reset()
	discovery.reset()
}
