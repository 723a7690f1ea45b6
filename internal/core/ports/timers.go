package ports

import "time"

// Timers is the host timer facility: named one-shot callbacks with a delay.
// Registering a name that is already registered replaces the existing
// callback, which gives debounce its reset-on-activity semantics.
//
//go:generate mockgen -source=timers.go -destination=mocks/mock_timers.go -package=mocks
type Timers interface {
	// Register arms a one-shot callback under the given name.
	Register(name string, delay time.Duration, fn func())

	// Unregister cancels a pending callback. It reports whether a callback
	// was actually pending, and is a no-op for unknown names.
	Unregister(name string) bool

	// IsRegistered reports whether a callback is currently pending under the
	// given name.
	IsRegistered(name string) bool
}
