package xwm

import (
	"time"

	"github.com/ItsNotGoodName/x-collage/gesture"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const (
	KeyB xproto.Keycode = 56
	KeyQ xproto.Keycode = 24
)

// Locator returns the panel at a canvas point and the point relative to it.
type Locator func(x, y float32) (index int, localX, localY float32)

// Translate converts a primary button X event into a gesture event. Raw
// coordinates are relative to the screen, panel coordinates to the collage
// window.
func Translate(ev xgb.Event, locate Locator) (gesture.Event, bool) {
	switch ev := ev.(type) {
	case xproto.ButtonPressEvent:
		if ev.Detail != xproto.ButtonIndex1 {
			return gesture.Event{}, false
		}
		return pointer(gesture.ActionDown, ev.Time, ev.RootX, ev.RootY, ev.EventX, ev.EventY, locate), true
	case xproto.ButtonReleaseEvent:
		if ev.Detail != xproto.ButtonIndex1 {
			return gesture.Event{}, false
		}
		return pointer(gesture.ActionUp, ev.Time, ev.RootX, ev.RootY, ev.EventX, ev.EventY, locate), true
	case xproto.MotionNotifyEvent:
		if ev.State&xproto.KeyButMaskButton1 == 0 {
			return gesture.Event{}, false
		}
		return gesture.Event{
			Action: gesture.ActionMove,
			Time:   timestamp(ev.Time),
			RawX:   float32(ev.RootX),
			RawY:   float32(ev.RootY),
			Panel:  -1,
		}, true
	default:
		return gesture.Event{}, false
	}
}

func pointer(action gesture.Action, t xproto.Timestamp, rootX, rootY, x, y int16, locate Locator) gesture.Event {
	panel, localX, localY := locate(float32(x), float32(y))
	return gesture.Event{
		Action: action,
		Time:   timestamp(t),
		RawX:   float32(rootX),
		RawY:   float32(rootY),
		Panel:  panel,
		X:      localX,
		Y:      localY,
	}
}

// timestamp converts a server time in milliseconds. Only differences between
// timestamps are meaningful.
func timestamp(t xproto.Timestamp) time.Time {
	return time.UnixMilli(int64(t))
}
