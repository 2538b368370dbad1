package visitor

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/balanceu/balanceu/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	n int
}

func newCounterRegistry(clock utils.Clock) *Registry[counter] {
	return NewRegistry("counter", func() *counter { return &counter{} }, clock)
}

func increment(c *counter) error {
	c.n++
	return nil
}

func TestRegistry_Do(t *testing.T) {
	t.Run("should keep state per visitor", func(t *testing.T) {
		registry := newCounterRegistry(&utils.MockClock{})

		require.NoError(t, registry.Do("a", increment))
		require.NoError(t, registry.Do("a", increment))
		require.NoError(t, registry.Do("b", increment))

		var a, b int
		registry.Update("a", func(c *counter) { a = c.n })
		registry.Update("b", func(c *counter) { b = c.n })
		assert.Equal(t, 2, a)
		assert.Equal(t, 1, b)
	})

	t.Run("should return the callback error", func(t *testing.T) {
		registry := newCounterRegistry(&utils.MockClock{})
		boom := errors.New("boom")

		err := registry.Do("a", func(c *counter) error { return boom })

		assert.ErrorIs(t, err, boom)
	})

	t.Run("should serialize concurrent updates", func(t *testing.T) {
		registry := newCounterRegistry(utils.SystemClock{})
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				registry.Update("a", func(c *counter) { c.n++ })
			}()
		}
		wg.Wait()

		var n int
		registry.Update("a", func(c *counter) { n = c.n })
		assert.Equal(t, 100, n)
	})
}

func TestRegistry_Update(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)}
	registry := newCounterRegistry(clock)

	registry.Update("a", func(c *counter) { c.n = 5 })
	clock.Advance(time.Hour)
	registry.Update("a", func(c *counter) { c.n++ })

	var n int
	registry.Update("a", func(c *counter) { n = c.n })
	assert.Equal(t, 6, n)
	assert.Equal(t, 0, registry.Sweep(clock.Now().Add(-time.Minute)))
}

func TestRegistry_Reset(t *testing.T) {
	registry := newCounterRegistry(&utils.MockClock{})
	require.NoError(t, registry.Do("a", increment))

	var n int
	require.NoError(t, registry.Reset("a", func(c *counter) error { n = c.n; return nil }))

	assert.Equal(t, 0, n)
}

func TestRegistry_Sweep(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)}
	registry := newCounterRegistry(clock)
	require.NoError(t, registry.Do("old", increment))
	clock.Advance(time.Hour)
	require.NoError(t, registry.Do("fresh", increment))

	janitor := NewJanitor(30*time.Minute, time.Minute, clock, registry)
	removed := janitor.SweepOnce()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, registry.Len())
	registry.Forget("fresh")
	assert.Equal(t, 0, registry.Len())
}
