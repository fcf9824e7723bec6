package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ItsNotGoodName/x-collage/collage"
	"github.com/ItsNotGoodName/x-collage/gesture"
	"github.com/ItsNotGoodName/x-collage/internal/xcursor"
	"github.com/ItsNotGoodName/x-collage/internal/xwm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/thejerf/suture/v4"
)

var (
	ErrQuit             = fmt.Errorf("quit: %w", suture.ErrTerminateSupervisorTree)
	ErrConnectionClosed = fmt.Errorf("x connection closed: %w", suture.ErrTerminateSupervisorTree)
)

// App feeds X events of the collage window to the collage.
type App struct {
	conn    *xgb.Conn
	window  xwm.Window
	collage *collage.Collage
	cursors *xcursor.Cache
	cursor  uint16
}

func New(conn *xgb.Conn, window xwm.Window, c *collage.Collage) *App {
	return &App{
		conn:    conn,
		window:  window,
		collage: c,
		cursors: xcursor.NewCache(conn),
		cursor:  xcursor.LeftPtr,
	}
}

func (a *App) String() string {
	return "app.App"
}

func (a *App) Serve(ctx context.Context) error {
	eventC := make(chan xgb.Event)
	go xwm.ReceiveEvents(ctx, a.conn, eventC)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventC:
			if !ok {
				return ErrConnectionClosed
			}
			if err := a.handle(ev); err != nil {
				return err
			}
		}
	}
}

func (a *App) handle(ev xgb.Event) error {
	switch ev := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		if ev.Window != a.window.WID {
			return nil
		}
		if ev.Width == a.window.Width && ev.Height == a.window.Height {
			return nil
		}

		slog.Debug("Window resized", "package", "app", "width", ev.Width, "height", ev.Height)
		a.window.Width, a.window.Height = ev.Width, ev.Height
		a.collage.ResizeWhole(float32(ev.Width), float32(ev.Height))
	case xproto.ButtonPressEvent, xproto.ButtonReleaseEvent, xproto.MotionNotifyEvent:
		gev, ok := xwm.Translate(ev, a.collage.Locate)
		if !ok {
			return nil
		}

		decision := a.collage.HandlePointer(gev)
		if gev.Action != gesture.ActionMove {
			slog.Debug("Pointer", "package", "app", "action", gev.Action, "panel", gev.Panel, "decision", decision)
		}
		a.updateCursor()
	case xproto.KeyPressEvent:
		switch ev.Detail {
		case xwm.KeyQ:
			slog.Debug("exit: quit key pressed", "package", "app")
			return ErrQuit
		case xwm.KeyB:
			a.collage.ToggleBorder()
		}
	case xproto.DestroyNotifyEvent:
		if ev.Window == a.window.WID {
			slog.Debug("exit: destroy notify event", "package", "app")
			return ErrQuit
		}
	default:
		slog.Debug("Unknown event", "package", "app", "event", ev)
	}

	return nil
}

// updateCursor shows the dragged edge while resizing.
func (a *App) updateCursor() {
	glyph := uint16(xcursor.LeftPtr)
	if a.collage.GestureState() == gesture.StateResizing {
		glyph = xcursor.ForEdge(a.collage.Edge())
	}
	if glyph == a.cursor {
		return
	}

	cursor, err := a.cursors.Get(glyph)
	if err == nil {
		err = xwm.SetCursor(a.conn, a.window.WID, cursor)
	}
	if err != nil {
		slog.Error("Failed to set cursor", "package", "app", "error", err)
		return
	}
	a.cursor = glyph
}
