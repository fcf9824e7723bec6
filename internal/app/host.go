package app

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/ItsNotGoodName/x-collage/collage"
	"github.com/ItsNotGoodName/x-collage/internal/xviewer"
	"github.com/ItsNotGoodName/x-collage/internal/xwm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Host creates one sub window with its own viewer per panel.
type Host struct {
	conn   *xgb.Conn
	root   xproto.Window
	viewer xviewer.Options
}

func NewHost(conn *xgb.Conn, window xwm.Window, viewer xviewer.Options) *Host {
	return &Host{
		conn:   conn,
		root:   window.WID,
		viewer: viewer,
	}
}

func (h *Host) NewSurface(index int) (collage.Surface, error) {
	window, err := xwm.CreateSubWindow(h.conn, h.root, 0, 0, 1, 1)
	if err != nil {
		return nil, err
	}

	viewer, err := xviewer.New(strconv.Itoa(index), window.WID, h.viewer)
	if err != nil {
		xproto.DestroyWindow(h.conn, window.WID)
		return nil, err
	}

	return &surface{
		Pane:   xwm.NewPane(h.conn, window),
		viewer: viewer,
	}, nil
}

type surface struct {
	*xwm.Pane
	viewer *xviewer.Viewer
}

var _ xviewer.Surface = (*surface)(nil)

func (s *surface) Viewer() *xviewer.Viewer {
	return s.viewer
}

func (s *surface) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return errors.Join(s.viewer.Close(ctx), s.Pane.Close())
}
