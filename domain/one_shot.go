package domain

import "sync/atomic"

// OneShotEvent wraps a payload that may be consumed only once.
// Re-renders of the presentation layer read it again and get nothing.
type OneShotEvent[T any] struct {
	content T
	handled atomic.Bool
}

func NewOneShotEvent[T any](content T) *OneShotEvent[T] {
	return &OneShotEvent[T]{content: content}
}

// Consume returns the payload on first call only.
func (e *OneShotEvent[T]) Consume() (T, bool) {
	if e.handled.CompareAndSwap(false, true) {
		return e.content, true
	}
	var zero T
	return zero, false
}
