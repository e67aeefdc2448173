package signal

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// globalIDCounter is the source of unique IDs for signals and subscriptions.
var globalIDCounter uint64

func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}

// Observer receives the new and the previous value of a signal.
type Observer[T any] func(next, prev T)

type subscription[T any] struct {
	id uint64
	fn Observer[T]
}

// Signal is a reactive value container.
type Signal[T any] struct {
	id uint64

	// value is the current signal value.
	value T

	// mu protects the value.
	mu sync.RWMutex

	// equal decides whether a write is a change. Nil means Equal.
	equal func(T, T) bool

	subs  []subscription[T]
	subMu sync.RWMutex
}

// New creates a new signal with the given initial value.
func New[T any](initial T) *Signal[T] {
	return &Signal[T]{
		id:    nextID(),
		value: initial,
	}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the signal's value and notifies observers if the value changed.
func (s *Signal[T]) Set(value T) {
	s.Update(func(T) T { return value })
}

// Update atomically reads and updates the signal's value.
// The function receives the current value and returns the new value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	prev := s.value
	next := fn(prev)
	changed := !s.equals(prev, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.notify(next, prev)
	}
}

// WithEquals returns the signal configured with a custom equality function.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// Subscribe registers fn to be called after every change. The returned
// function removes the registration; calling it more than once is harmless.
func (s *Signal[T]) Subscribe(fn Observer[T]) func() {
	if fn == nil {
		return func() {}
	}

	id := nextID()
	s.subMu.Lock()
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

// Observers returns the number of registered observers.
func (s *Signal[T]) Observers() int {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	return len(s.subs)
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

func (s *Signal[T]) unsubscribe(id uint64) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// notify calls observers in registration order without holding any lock,
// so an observer may read or write the signal it is subscribed to.
func (s *Signal[T]) notify(next, prev T) {
	s.subMu.RLock()
	subs := make([]subscription[T], len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.fn(next, prev)
	}
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return Equal(a, b)
}

// Equal reports whether a and b are deeply equal. Nil and empty slices or
// maps compare equal.
func Equal[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		bv, ok := any(b).(int)
		return ok && av == bv
	case int64:
		bv, ok := any(b).(int64)
		return ok && av == bv
	case float64:
		bv, ok := any(b).(float64)
		return ok && av == bv
	case string:
		bv, ok := any(b).(string)
		return ok && av == bv
	case bool:
		bv, ok := any(b).(bool)
		return ok && av == bv
	default:
		return cmp.Equal(a, b, equalOpts...)
	}
}

var equalOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}
