package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordEvents(bus *EventBus, codes ...EventCode) *[]EventContext {
	var events []EventContext
	for _, code := range codes {
		bus.Register(code, &events, func(ctx EventContext) bool {
			events = append(events, ctx)
			return false
		})
	}
	return &events
}

func TestInputKeys(t *testing.T) {
	bus := NewEventBus()
	events := recordEvents(bus, EVENT_CODE_KEY_PRESSED, EVENT_CODE_KEY_RELEASED)
	is := NewInputState(bus)

	is.ProcessKey(KEY_A, true)
	is.ProcessKey(KEY_A, true)
	assert.True(t, is.IsKeyDown(KEY_A))
	assert.True(t, is.WasKeyUp(KEY_A))

	is.Update()
	assert.True(t, is.WasKeyDown(KEY_A))

	is.ProcessKey(KEY_A, false)
	assert.True(t, is.IsKeyUp(KEY_A))

	require.Len(t, *events, 2)
	assert.Equal(t, EVENT_CODE_KEY_PRESSED, (*events)[0].Type)
	assert.Equal(t, KEY_A, (*events)[0].Data.(*KeyEvent).KeyCode)
	assert.Equal(t, EVENT_CODE_KEY_RELEASED, (*events)[1].Type)
}

func TestInputShift(t *testing.T) {
	is := NewInputState(nil)
	assert.False(t, is.IsShiftDown())
	is.ProcessKey(KEY_RSHIFT, true)
	assert.True(t, is.IsShiftDown())
}

func TestInputMouse(t *testing.T) {
	bus := NewEventBus()
	events := recordEvents(bus, EVENT_CODE_BUTTON_PRESSED, EVENT_CODE_MOUSE_MOVED, EVENT_CODE_MOUSE_WHEEL)
	is := NewInputState(bus)

	is.ProcessMouseMove(10, 20)
	is.ProcessMouseMove(10, 20)
	is.ProcessButton(BUTTON_LEFT, true)
	is.ProcessButton(BUTTON_MAX_BUTTONS, true)
	is.ProcessMouseWheel(-1)

	x, y := is.MousePosition()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
	assert.True(t, is.IsButtonDown(BUTTON_LEFT))

	require.Len(t, *events, 3)
	press := (*events)[1].Data.(*MouseEvent)
	assert.Equal(t, BUTTON_LEFT, press.Button)
	assert.Equal(t, 10.0, press.PosX)
	assert.Equal(t, int8(-1), (*events)[2].Data.(*MouseEvent).Scroll)

	is.Update()
	px, py := is.PreviousMousePosition()
	assert.Equal(t, 10.0, px)
	assert.Equal(t, 20.0, py)
	assert.True(t, is.WasButtonDown(BUTTON_LEFT))
}
