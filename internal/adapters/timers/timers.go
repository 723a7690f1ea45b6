// Package timers provides a named one-shot timer facility backed by the
// runtime timer wheel.
package timers

import (
	"sync"
	"time"

	"github.com/curveforge/meshsync/internal/core/ports"
)

// Facility runs named one-shot timers. Registering a name that is already
// armed replaces the previous timer without firing it.
type Facility struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

var _ ports.Timers = (*Facility)(nil)

// New creates an empty timer facility.
func New() *Facility {
	return &Facility{timers: make(map[string]*time.Timer)}
}

// Register arms a one-shot timer under the given name. The callback runs on
// its own goroutine after the delay elapses.
func (f *Facility) Register(name string, delay time.Duration, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if prev, ok := f.timers[name]; ok {
		prev.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		f.mu.Lock()
		// A replacement may have been armed between firing and acquiring
		// the lock; a superseded timer must not run its callback.
		if f.timers[name] != timer {
			f.mu.Unlock()
			return
		}
		delete(f.timers, name)
		f.mu.Unlock()
		fn()
	})
	f.timers[name] = timer
}

// Unregister stops and removes the named timer. It reports whether a timer
// was armed under that name.
func (f *Facility) Unregister(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	timer, ok := f.timers[name]
	if !ok {
		return false
	}
	timer.Stop()
	delete(f.timers, name)
	return true
}

// IsRegistered reports whether a timer is currently armed under the name.
func (f *Facility) IsRegistered(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.timers[name]
	return ok
}
