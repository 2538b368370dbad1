package event_bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_Publish(t *testing.T) {
	t.Run("should deliver events to handlers in subscription order", func(t *testing.T) {
		bus := NewEventBus()
		var calls []string
		bus.Subscribe(ThemeChangedType, func(e Event) error {
			calls = append(calls, "first")
			return nil
		})
		bus.Subscribe(ThemeChangedType, func(e Event) error {
			calls = append(calls, "second")
			return nil
		})

		err := bus.Publish(NewEvent(context.Background(), ThemeChangedType, ThemeChanged{From: "sky", To: "rose"}))

		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("should not deliver events of other types", func(t *testing.T) {
		bus := NewEventBus()
		called := false
		bus.Subscribe(UserLoggedInType, func(e Event) error {
			called = true
			return nil
		})

		err := bus.Publish(NewEvent(context.Background(), ThemeChangedType, ThemeChanged{}))

		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("should stop delivering after unsubscribe", func(t *testing.T) {
		bus := NewEventBus()
		count := 0
		unsubscribe := bus.Subscribe(UserLoggedInType, func(e Event) error {
			count++
			return nil
		})

		require.NoError(t, bus.Publish(NewEvent(context.Background(), UserLoggedInType, UserLoggedIn{})))
		unsubscribe()
		require.NoError(t, bus.Publish(NewEvent(context.Background(), UserLoggedInType, UserLoggedIn{})))

		assert.Equal(t, 1, count)
	})

	t.Run("should collect handler errors and panics", func(t *testing.T) {
		bus := NewEventBus()
		thirdCalled := false
		bus.Subscribe(UserLoggedOutType, func(e Event) error {
			return errors.New("boom")
		})
		bus.Subscribe(UserLoggedOutType, func(e Event) error {
			panic("kaboom")
		})
		bus.Subscribe(UserLoggedOutType, func(e Event) error {
			thirdCalled = true
			return nil
		})

		err := bus.Publish(NewEvent(context.Background(), UserLoggedOutType, UserLoggedOut{}))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 handler(s) failed")
		assert.True(t, thirdCalled)
	})

	t.Run("should refuse to publish with cancelled context", func(t *testing.T) {
		bus := NewEventBus()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := bus.Publish(NewEvent(ctx, UserLoggedInType, UserLoggedIn{}))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSubscribeTyped(t *testing.T) {
	bus := NewEventBus()
	var received []UserLoggedIn
	SubscribeTyped(bus, UserLoggedInType, func(ctx context.Context, e UserLoggedIn) error {
		received = append(received, e)
		return nil
	})

	require.NoError(t, bus.Publish(NewEvent(context.Background(), UserLoggedInType, UserLoggedIn{Username: "joe"})))
	require.NoError(t, bus.Publish(NewEvent(context.Background(), UserLoggedInType, "not a payload")))

	assert.Equal(t, []UserLoggedIn{{Username: "joe"}}, received)
}
