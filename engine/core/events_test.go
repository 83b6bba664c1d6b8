package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusRegister(t *testing.T) {
	bus := NewEventBus()
	listener := &struct{}{}
	calls := 0
	onEvent := func(ctx EventContext) bool {
		calls++
		return false
	}

	assert.True(t, bus.Register(EVENT_CODE_KEY_PRESSED, listener, onEvent))
	assert.False(t, bus.Register(EVENT_CODE_KEY_PRESSED, listener, onEvent))
	assert.False(t, bus.Register(EVENT_CODE_KEY_PRESSED, &struct{ x int }{}, nil))

	assert.False(t, bus.Fire(EventContext{Type: EVENT_CODE_KEY_PRESSED}))
	assert.Equal(t, 1, calls)

	assert.True(t, bus.Unregister(EVENT_CODE_KEY_PRESSED, listener))
	assert.False(t, bus.Unregister(EVENT_CODE_KEY_PRESSED, listener))
	bus.Fire(EventContext{Type: EVENT_CODE_KEY_PRESSED})
	assert.Equal(t, 1, calls)
}

func TestEventBusHandledStopsPropagation(t *testing.T) {
	bus := NewEventBus()
	var order []string
	first, second := &struct{ n int }{1}, &struct{ n int }{2}

	bus.Register(EVENT_CODE_RESIZED, first, func(ctx EventContext) bool {
		order = append(order, "first")
		return true
	})
	bus.Register(EVENT_CODE_RESIZED, second, func(ctx EventContext) bool {
		order = append(order, "second")
		return true
	})

	assert.True(t, bus.Fire(EventContext{Type: EVENT_CODE_RESIZED, Data: &SystemEvent{WindowWidth: 1, WindowHeight: 2}}))
	assert.Equal(t, []string{"first"}, order)
}

func TestEventBusListenerMayUnregisterItself(t *testing.T) {
	bus := NewEventBus()
	listener := &struct{}{}
	calls := 0
	bus.Register(EVENT_CODE_APPLICATION_QUIT, listener, func(ctx EventContext) bool {
		calls++
		bus.Unregister(EVENT_CODE_APPLICATION_QUIT, listener)
		return true
	})

	bus.Fire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT})
	bus.Fire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT})
	assert.Equal(t, 1, calls)
}
