// Package ring implements a fixed-capacity circular buffer. The capture
// layer pushes samples at the audio callback rate while the analyzer pulls
// the most recent window at its own, much slower cadence.
package ring

import (
	"fmt"
	"sync"
)

// Buffer is a circular buffer of fixed capacity. Writes overwrite the oldest
// elements once the buffer is full.
type Buffer[T any] struct {
	mu     sync.RWMutex
	values []T
	head   int
	filled int
}

// New creates a buffer holding at most size elements.
func New[T any](size int) *Buffer[T] {
	return &Buffer[T]{values: make([]T, size)}
}

// Push appends elements, overwriting the oldest entries when full. Pushing
// more elements than the buffer holds keeps only the tail.
func (b *Buffer[T]) Push(elems ...T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.values)
	if len(elems) >= n {
		copy(b.values, elems[len(elems)-n:])
		b.head = 0
		b.filled = n
		return
	}
	for _, e := range elems {
		b.values[b.head] = e
		b.head = (b.head + 1) % n
	}
	b.filled += len(elems)
	if b.filled > n {
		b.filled = n
	}
}

// Window copies the most recent len(dst) elements into dst, oldest first.
// It fails until enough elements have been pushed.
func (b *Buffer[T]) Window(dst []T) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	m := len(dst)
	if m > len(b.values) {
		return fmt.Errorf("window of %d exceeds buffer capacity %d", m, len(b.values))
	}
	if m > b.filled {
		return fmt.Errorf("window of %d requested but only %d samples buffered", m, b.filled)
	}
	start := ((b.head-m)%len(b.values) + len(b.values)) % len(b.values)
	for i := 0; i < m; i++ {
		dst[i] = b.values[(start+i)%len(b.values)]
	}
	return nil
}

// Len reports how many elements are currently buffered.
func (b *Buffer[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.filled
}

// Cap reports the buffer capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.values)
}
