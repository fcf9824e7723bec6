package xwm

import (
	"testing"
	"time"

	"github.com/ItsNotGoodName/x-collage/gesture"
	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func locate(x, y float32) (int, float32, float32) {
	if x < 200 {
		return 0, x, y
	}
	return 1, x - 200, y
}

func TestTranslate(t *testing.T) {
	ev, ok := Translate(xproto.ButtonPressEvent{
		Detail: xproto.ButtonIndex1,
		Time:   1000,
		RootX:  260,
		RootY:  120,
		EventX: 250,
		EventY: 100,
	}, locate)
	assert.True(t, ok)
	assert.Equal(t, gesture.Event{
		Action: gesture.ActionDown,
		Time:   time.UnixMilli(1000),
		RawX:   260,
		RawY:   120,
		Panel:  1,
		X:      50,
		Y:      100,
	}, ev)

	ev, ok = Translate(xproto.MotionNotifyEvent{
		Time:  1010,
		RootX: 270,
		RootY: 125,
		State: xproto.KeyButMaskButton1,
	}, locate)
	assert.True(t, ok)
	assert.Equal(t, gesture.Event{
		Action: gesture.ActionMove,
		Time:   time.UnixMilli(1010),
		RawX:   270,
		RawY:   125,
		Panel:  -1,
	}, ev)

	ev, ok = Translate(xproto.ButtonReleaseEvent{
		Detail: xproto.ButtonIndex1,
		Time:   1020,
		RootX:  20,
		RootY:  20,
		EventX: 10,
		EventY: 0,
	}, locate)
	assert.True(t, ok)
	assert.Equal(t, gesture.ActionUp, ev.Action)
	assert.Equal(t, 0, ev.Panel)
}

func TestTranslateIgnored(t *testing.T) {
	_, ok := Translate(xproto.ButtonPressEvent{Detail: xproto.ButtonIndex3}, locate)
	assert.False(t, ok)

	_, ok = Translate(xproto.MotionNotifyEvent{}, locate)
	assert.False(t, ok)

	_, ok = Translate(xproto.KeyPressEvent{Detail: KeyQ}, locate)
	assert.False(t, ok)
}

func TestTranslateTimestamp(t *testing.T) {
	ev, ok := Translate(xproto.ButtonPressEvent{Detail: xproto.ButtonIndex1}, locate)
	assert.True(t, ok)
	assert.False(t, ev.Time.IsZero())
}
