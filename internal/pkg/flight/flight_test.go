package flight

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	g := NewGuard()

	release, err := g.Acquire("user-1:submit")
	require.NoError(t, err)

	t.Run("Second acquire on same key is rejected", func(t *testing.T) {
		_, err := g.Acquire("user-1:submit")
		assert.True(t, errors.Is(err, ErrInProgress))
	})

	t.Run("Other keys are independent", func(t *testing.T) {
		rel, err := g.Acquire("user-2:submit")
		require.NoError(t, err)
		rel()
	})

	release()
	release() // idempotent

	release, err = g.Acquire("user-1:submit")
	require.NoError(t, err, "key should be free after release")
	release()
}

func TestGuardConcurrentAcquire(t *testing.T) {
	g := NewGuard()
	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := g.Acquire("same"); err == nil {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load(), "exactly one caller should hold the key")
}

func TestTracker(t *testing.T) {
	tr := NewTracker()

	first := tr.Begin("view-a")
	assert.True(t, tr.Current(first))

	second := tr.Begin("view-a")
	assert.False(t, tr.Current(first), "older request is superseded")
	assert.True(t, tr.Current(second))

	other := tr.Begin("view-b")
	assert.True(t, tr.Current(other), "views do not interfere")
	assert.True(t, tr.Current(second))

	tr.Finish(first) // stale finish must not drop the newer entry
	assert.True(t, tr.Current(second))

	tr.Finish(second)
	third := tr.Begin("view-a")
	assert.False(t, tr.Current(first), "generations are never reused")
	assert.True(t, tr.Current(third))
}
