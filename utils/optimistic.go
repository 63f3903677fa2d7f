package utils

import "sync"

// Optimistic holds a value that gets mutated before its remote confirmation
// arrives. The discipline is set-then-call-then-revert-on-error: Apply the
// tentative value first, then either Commit the remote result or Revert to
// what was there before. Never call-then-set; the point of the pattern is
// that readers see the tentative value while the call is in flight.
type Optimistic[T any] struct {
	mu    sync.Mutex
	value T
}

func NewOptimistic[T any](v T) *Optimistic[T] {
	return &Optimistic[T]{value: v}
}

func (o *Optimistic[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Token remembers the value displaced by an Apply so the rollback contract
// is visible in the types rather than implied by call ordering.
type Token[T any] struct {
	cell *Optimistic[T]
	prev T
}

// Apply installs the tentative value and returns the token needed to either
// commit or revert it.
func (o *Optimistic[T]) Apply(tentative T) Token[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	t := Token[T]{cell: o, prev: o.value}
	o.value = tentative
	return t
}

// Commit replaces the tentative value with the confirmed remote result.
func (t Token[T]) Commit(final T) {
	t.cell.mu.Lock()
	defer t.cell.mu.Unlock()
	t.cell.value = final
}

// Revert restores the value from before the Apply.
func (t Token[T]) Revert() {
	t.cell.mu.Lock()
	defer t.cell.mu.Unlock()
	t.cell.value = t.prev
}
