package runtime

import "sync/atomic"

// Cell is an observable value. Readers never block writers: Get loads the
// latest value and Changed returns a channel closed on the next Set.
type Cell[T any] struct {
	value   atomic.Pointer[T]
	changed atomic.Pointer[chan struct{}]
}

func NewCell[T any](initial T) *Cell[T] {
	c := &Cell[T]{}
	c.value.Store(&initial)
	ch := make(chan struct{})
	c.changed.Store(&ch)
	return c
}

func (c *Cell[T]) Get() T {
	return *c.value.Load()
}

func (c *Cell[T]) Set(v T) {
	c.value.Store(&v)
	next := make(chan struct{})
	prev := c.changed.Swap(&next)
	close(*prev)
}

// Changed is closed the next time the cell is written.
func (c *Cell[T]) Changed() <-chan struct{} {
	return *c.changed.Load()
}
