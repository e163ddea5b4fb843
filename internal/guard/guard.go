// Package guard holds the small synchronization primitives package future
// builds its cross-queue state on: a lock-guarded cell and an atomic
// counter. Critical sections are O(1) and never run user callbacks.
package guard

import (
	"sync"
	"sync/atomic"
)

// Cell is a mutually exclusive guarded value. Writers take the exclusive
// lock, readers the shared one.
type Cell[T any] struct {
	mu  sync.RWMutex
	val T
}

func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{val: v}
}

func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val
}

func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.val = v
	c.mu.Unlock()
}

// Counter is an atomic counter used to detect the last of N completions.
type Counter struct {
	n atomic.Int64
}

func (c *Counter) IncrementAndGet() int64 {
	return c.n.Add(1)
}

func (c *Counter) DecrementAndGet() int64 {
	return c.n.Add(-1)
}
