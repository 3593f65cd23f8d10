package domain

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOneShotEvent_ConsumedOnce(t *testing.T) {
	req := require.New(t)
	evt := NewOneShotEvent("Logged Out")

	// When the event is consumed twice in a row
	first, ok1 := evt.Consume()
	second, ok2 := evt.Consume()

	// Then only the first read returns the payload
	req.True(ok1)
	req.Equal("Logged Out", first)
	req.False(ok2)
	req.Empty(second)
}

func TestOneShotEvent_ConcurrentConsumers(t *testing.T) {
	req := require.New(t)
	evt := NewOneShotEvent(42)
	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := evt.Consume(); ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	req.Equal(int32(1), wins.Load())
}
