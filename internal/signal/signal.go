// Package signal provides the reactive state primitives the domain stores are
// built on: a writable cell (Signal), a lazily recomputed derived value
// (Computed), and a synchronous side-effect hook (Watch).
//
// Computed values are pull-based: each carries an explicit dependency set and
// a cached result, and recomputes on read only when a dependency's version
// has moved. Watchers run synchronously inside Set, after the new value is
// committed, so any derived view read afterwards already reflects the change.
package signal

import "sync"

// Source is anything a Computed can depend on: a Signal or another Computed.
type Source interface {
	version() uint64
}

// Observable is a dependency a watcher can attach to. Only Signals are
// observable; Computeds are pull-based and have no change notification.
type Observable interface {
	watch(fn func())
}

// Signal is a mutable cell holding a single value. The zero value is not
// usable; construct with New.
type Signal[T any] struct {
	mu       sync.Mutex
	value    T
	ver      uint64
	watchers []func()
}

func New[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial, ver: 1}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the value and synchronously runs any watchers.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.ver++
	watchers := s.watchers
	s.mu.Unlock()

	for _, fn := range watchers {
		fn()
	}
}

// Update applies fn to the current value and stores the result.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	s.ver++
	watchers := s.watchers
	s.mu.Unlock()

	for _, w := range watchers {
		w()
	}
}

func (s *Signal[T]) version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ver
}

func (s *Signal[T]) watch(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// Computed is a derived value over an explicit set of sources. It caches the
// last result and recomputes on Get only when a dependency has changed.
type Computed[T any] struct {
	mu      sync.Mutex
	compute func() T
	deps    []Source
	cached  T
	depVer  uint64
	fresh   bool
}

// Derive builds a Computed from a compute function and the sources it reads.
// Every Signal or Computed the function reads must be listed, otherwise the
// cache will serve stale values.
func Derive[T any](compute func() T, deps ...Source) *Computed[T] {
	return &Computed[T]{compute: compute, deps: deps}
}

// Get returns the derived value, recomputing it first if any dependency
// changed since the last read.
func (c *Computed[T]) Get() T {
	v := c.depVersion()

	c.mu.Lock()
	if c.fresh && v == c.depVer {
		defer c.mu.Unlock()
		return c.cached
	}
	c.mu.Unlock()

	// Compute outside the lock: the function reads its dependencies, which
	// may include other Computeds with their own locks.
	val := c.compute()

	c.mu.Lock()
	c.cached = val
	c.depVer = v
	c.fresh = true
	c.mu.Unlock()
	return val
}

// depVersion sums the dependency versions. Versions are monotone, so any
// dependency change strictly increases the sum.
func (c *Computed[T]) depVersion() uint64 {
	var total uint64
	for _, d := range c.deps {
		total += d.version()
	}
	return total
}

func (c *Computed[T]) version() uint64 {
	return c.depVersion()
}

// Watch runs fn once immediately, then again whenever any of the given
// signals is written. Callbacks run synchronously inside Set.
func Watch(fn func(), deps ...Observable) {
	for _, d := range deps {
		d.watch(fn)
	}
	fn()
}
