package sync

import (
	"sync"
	"time"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
)

// Scheduler maintains at most one pending regeneration task per source,
// delayed by the minimum quiet period requested by the source's enabled
// targets. Repeated triggers for the same source cancel and re-arm the
// pending task, so continued activity keeps pushing execution out until a
// full quiet period elapses.
type Scheduler struct {
	registry *Registry
	timers   ports.Timers
	exec     func(sourceName string)

	mu      sync.Mutex
	gen     uint64
	pending map[string]pendingTask
}

// pendingTask is one armed debounce entry. The generation stamp lets a fired
// callback detect that it was superseded by a re-arm while it was in flight.
type pendingTask struct {
	delay time.Duration
	gen   uint64
}

// NewScheduler creates a scheduler. exec is invoked with the source's stable
// name when its quiet period elapses.
func NewScheduler(registry *Registry, timers ports.Timers, exec func(sourceName string)) *Scheduler {
	return &Scheduler{
		registry: registry,
		timers:   timers,
		exec:     exec,
		pending:  make(map[string]pendingTask),
	}
}

// Schedule arms (or re-arms) the debounce task for the source. It reports the
// delay the task was armed with; ok is false when the source has no enabled
// targets and nothing was scheduled.
func (s *Scheduler) Schedule(src *domain.Source) (time.Duration, bool) {
	if src == nil || src.Name == "" {
		return 0, false
	}

	targets := s.registry.TargetsFor(src, false)
	if len(targets) == 0 {
		return 0, false
	}

	delay := minDelay(targets)
	name := src.Name

	s.mu.Lock()
	if _, exists := s.pending[name]; exists {
		s.timers.Unregister(name)
	}
	s.gen++
	gen := s.gen
	s.pending[name] = pendingTask{delay: delay, gen: gen}
	s.mu.Unlock()

	s.timers.Register(name, delay, func() {
		// The pending entry is released before the update runs so a
		// re-trigger from within the update arms a fresh task instead of
		// being swallowed. A fire racing a re-arm yields to the newer task:
		// only the callback whose entry is still current proceeds.
		s.mu.Lock()
		task, exists := s.pending[name]
		if !exists || task.gen != gen {
			s.mu.Unlock()
			return
		}
		delete(s.pending, name)
		s.mu.Unlock()
		s.exec(name)
	})
	return delay, true
}

// Cancel unregisters any pending task for the named source.
func (s *Scheduler) Cancel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.pending[name]; exists {
		s.timers.Unregister(name)
		delete(s.pending, name)
	}
}

// Clear cancels every pending task. Idempotent; used on document reload.
func (s *Scheduler) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name := range s.pending {
		s.timers.Unregister(name)
	}
	s.pending = make(map[string]pendingTask)
}

// Pending reports whether a task is currently armed for the named source.
func (s *Scheduler) Pending(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.pending[name]
	return exists
}

// minDelay picks the smallest requested quiet period among the targets,
// clamped to zero.
func minDelay(targets []*domain.Target) time.Duration {
	min := targets[0].Link.Debounce
	for _, t := range targets[1:] {
		if t.Link.Debounce < min {
			min = t.Link.Debounce
		}
	}
	if min < 0 {
		min = 0
	}
	return time.Duration(min * float64(time.Second))
}
