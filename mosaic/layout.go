package mosaic

import (
	"errors"
	"fmt"
	"log/slog"
)

var ErrUnknownLayout = errors.New("unknown layout")

var layouts = []Layout{
	LayoutSplitTop{},
	LayoutSplitRight{},
	Layout2x2{},
}

// Layouts returns the catalogue.
func Layouts() []Layout {
	return append([]Layout(nil), layouts...)
}

func Lookup(name string) (Layout, error) {
	for _, l := range layouts {
		if l.Name() == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownLayout, name)
}

// resizePane applies (dx, dy) to the inner boundaries of panes[index] enabled
// by edge. An axis whose new extent would leave [Min, total-Min] is left
// unchanged. It returns false when edge enables no boundary.
func resizePane(layout Layout, inner []Side, panes []Pane, c Canvas, index int, edge Edge, dx, dy float32) bool {
	if index < 0 || index >= len(inner) || index >= len(panes) {
		slog.Debug("Invalid pane index", "package", "mosaic", "layout", layout.Name(), "index", index)
		return false
	}

	horizontal, vertical := axes(edge, inner[index])
	if horizontal == 0 && vertical == 0 {
		slog.Debug("Invalid edge", "package", "mosaic", "layout", layout.Name(), "index", index, "edge", edge)
		return false
	}

	p := &panes[index]
	if horizontal != 0 {
		if w := p.W + grow(horizontal, dx); within(w, c.Min, c.Width-c.Min) {
			p.W = w
		}
	}
	if vertical != 0 {
		if h := p.H + grow(vertical, dy); within(h, c.Min, c.Height-c.Min) {
			p.H = h
		}
	}

	return true
}

func markDirty(panes []Pane) {
	for i := range panes {
		panes[i].Synced = false
	}
}
