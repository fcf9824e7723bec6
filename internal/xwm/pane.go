package xwm

import (
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Pane is a sub window placed by the collage.
type Pane struct {
	conn *xgb.Conn
	wid  xproto.Window

	mu     sync.Mutex
	x, y   int
	w, h   int
	border bool
}

func NewPane(conn *xgb.Conn, window Window) *Pane {
	return &Pane{
		conn: conn,
		wid:  window.WID,
		w:    int(window.Width),
		h:    int(window.Height),
	}
}

func (p *Pane) String() string {
	return fmt.Sprintf("xwm.Pane(wid=%d)", p.wid)
}

func (p *Pane) WID() xproto.Window {
	return p.wid
}

// Place moves the pane to the canvas rectangle (x, y, w, h). The border is
// drawn inside the rectangle.
func (p *Pane) Place(x, y, w, h int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.x, p.y, p.w, p.h = x, y, w, h
	return p.configure()
}

func (p *Pane) SetBorder(enabled bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.border == enabled {
		return nil
	}
	p.border = enabled
	return p.configure()
}

func (p *Pane) Close() error {
	return xproto.DestroyWindowChecked(p.conn, p.wid).Check()
}

func (p *Pane) configure() error {
	x, y, w, h, b := ConfigureValues(p.x, p.y, p.w, p.h, p.border)
	return xproto.ConfigureWindowChecked(p.conn, p.wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth,
		[]uint32{x, y, w, h, b}).Check()
}

// ConfigureValues converts a canvas rectangle into ConfigureWindow values. X
// draws borders outside the window so the window shrinks by the border.
func ConfigureValues(x, y, w, h int, border bool) (uint32, uint32, uint32, uint32, uint32) {
	var b int
	if border {
		b = BorderWidth
	}

	w, h = w-2*b, h-2*b
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return uint32(int32(x)), uint32(int32(y)), uint32(w), uint32(h), uint32(b)
}
