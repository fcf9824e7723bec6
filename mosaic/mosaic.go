package mosaic

import (
	"errors"
	"log/slog"

	"github.com/chewxy/math32"
)

type (
	// Pane is the cached placement of one panel. Synced is false while the
	// placement has not been applied to the rendered panel.
	Pane struct {
		X      float32
		Y      float32
		W      float32
		H      float32
		Synced bool
	}

	// Canvas is the size being partitioned and the smallest extent a pane may
	// be dragged to.
	Canvas struct {
		Width  float32
		Height float32
		Min    float32
	}

	Layout interface {
		Name() string
		Count() int
		// Init writes the initial partition of canvas into panes.
		Init(panes []Pane, canvas Canvas)
		// Resize moves the boundary of panes[index] touched at edge by (dx, dy)
		// and propagates the move to every pane sharing that boundary.
		Resize(panes []Pane, canvas Canvas, index int, edge Edge, dx, dy float32)
	}

	// Mosaic is the geometry cache of a collage.
	Mosaic struct {
		layout Layout
		canvas Canvas
		panes  []Pane
	}
)

func NewMosaic(layout Layout, canvas Canvas) Mosaic {
	m := Mosaic{}
	m.SetLayout(layout, canvas)
	return m
}

// SetLayout replaces every pane with the initial partition of layout.
func (m *Mosaic) SetLayout(layout Layout, canvas Canvas) {
	m.layout = layout
	m.canvas = canvas
	m.panes = make([]Pane, layout.Count())
	layout.Init(m.panes, canvas)
	m.Invalidate()
}

func (m *Mosaic) Layout() Layout {
	return m.layout
}

func (m *Mosaic) Canvas() Canvas {
	return m.canvas
}

func (m *Mosaic) Count() int {
	return len(m.panes)
}

// Panes returns a copy of the cache.
func (m *Mosaic) Panes() []Pane {
	panes := make([]Pane, len(m.panes))
	copy(panes, m.panes)
	return panes
}

func (m *Mosaic) Pane(index int) (Pane, bool) {
	if index < 0 || index >= len(m.panes) {
		return Pane{}, false
	}
	return m.panes[index], true
}

// Classify returns the edge of the pane at index touched at the pane-local
// point (x, y).
func (m *Mosaic) Classify(index int, x, y float32) Edge {
	pane, ok := m.Pane(index)
	if !ok {
		slog.Debug("Invalid pane index", "package", "mosaic", "func", "Classify", "index", index)
		return EdgeNone
	}
	return Classify(pane, x, y)
}

func (m *Mosaic) Resize(index int, edge Edge, dx, dy float32) {
	if index < 0 || index >= len(m.panes) {
		slog.Debug("Invalid pane index", "package", "mosaic", "func", "Resize", "layout", m.layout.Name(), "index", index)
		return
	}
	m.layout.Resize(m.panes, m.canvas, index, edge, dx, dy)
}

// Scale rescales every pane by width/canvas width and height/canvas height.
// The minimum extent is not enforced.
func (m *Mosaic) Scale(width, height float32) {
	if m.canvas.Width <= 0 || m.canvas.Height <= 0 {
		return
	}

	sx, sy := width/m.canvas.Width, height/m.canvas.Height
	for i := range m.panes {
		m.panes[i].X *= sx
		m.panes[i].Y *= sy
		m.panes[i].W *= sx
		m.panes[i].H *= sy
		m.panes[i].Synced = false
	}

	m.canvas.Width, m.canvas.Height = width, height
}

func (m *Mosaic) Invalidate() {
	for i := range m.panes {
		m.panes[i].Synced = false
	}
}

// Flush calls fn for every pane that is not synced. A pane stays unsynced
// when fn fails.
func (m *Mosaic) Flush(fn func(index int, pane Pane) error) error {
	var errs []error
	for i := range m.panes {
		if m.panes[i].Synced {
			continue
		}

		if err := fn(i, m.panes[i]); err != nil {
			errs = append(errs, err)
			continue
		}

		m.panes[i].Synced = true
	}
	return errors.Join(errs...)
}

// PaneAt returns the index of the pane containing the canvas point (x, y) or
// -1.
func (m *Mosaic) PaneAt(x, y float32) int {
	for i, p := range m.panes {
		if x >= p.X && x < p.X+p.W && y >= p.Y && y < p.Y+p.H {
			return i
		}
	}
	return -1
}

// Rect rounds the pane to whole pixels.
func (p Pane) Rect() (x, y, w, h int) {
	x, y = int(math32.Round(p.X)), int(math32.Round(p.Y))
	w, h = int(math32.Round(p.X+p.W))-x, int(math32.Round(p.Y+p.H))-y
	return
}

func within(v, lo, hi float32) bool {
	return v >= lo && v <= hi
}
