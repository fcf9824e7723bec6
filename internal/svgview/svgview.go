// Package svgview is a headless collage host that renders panels as SVG.
package svgview

import (
	"fmt"
	"io"
	"sync"

	"github.com/ItsNotGoodName/x-collage/collage"
	svg "github.com/ajstarks/svgo"
)

const Placeholder = "placeholder"

var palette = []string{"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f", "#edc948"}

// Surface records what the collage asked of one panel.
type Surface struct {
	mu     sync.Mutex
	index  int
	x, y   int
	w, h   int
	border bool
	uri    string
	closed bool
}

func (s *Surface) Place(x, y, w, h int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("surface %d: closed", s.index)
	}
	s.x, s.y, s.w, s.h = x, y, w, h
	return nil
}

func (s *Surface) SetBorder(enabled bool) error {
	s.mu.Lock()
	s.border = enabled
	s.mu.Unlock()
	return nil
}

func (s *Surface) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *Surface) Rect() (x, y, w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.x, s.y, s.w, s.h
}

func (s *Surface) Border() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.border
}

// URI returns the resolved URI shown by the surface.
func (s *Surface) URI() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uri
}

func (s *Surface) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Host creates Surfaces and loads images into them.
type Host struct {
	mu       sync.Mutex
	surfaces []*Surface
}

func NewHost() *Host {
	return &Host{}
}

func (h *Host) String() string {
	return "svgview.Host"
}

func (h *Host) NewSurface(index int) (collage.Surface, error) {
	s := &Surface{index: index}

	h.mu.Lock()
	h.surfaces = append(h.surfaces, s)
	h.mu.Unlock()

	return s, nil
}

// Surfaces returns the surfaces that are not closed.
func (h *Host) Surfaces() []*Surface {
	h.mu.Lock()
	defer h.mu.Unlock()

	var surfaces []*Surface
	for _, s := range h.surfaces {
		if !s.Closed() {
			surfaces = append(surfaces, s)
		}
	}
	return surfaces
}

// Load implements collage.Loader.
func (h *Host) Load(surface collage.Surface, uri string) {
	s, ok := surface.(*Surface)
	if !ok {
		return
	}

	s.mu.Lock()
	s.uri = collage.ResolveURI(uri, Placeholder)
	s.mu.Unlock()
}

// Render draws snap. Labels are looked up by panel index and may be nil.
func Render(w io.Writer, snap collage.Snapshot, labels func(index int) string) {
	width, height := int(snap.Canvas.Width), int(snap.Canvas.Height)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(snap.Layout)
	canvas.Rect(0, 0, width, height, "fill:#202020")

	stroke := "stroke:none"
	if snap.Border {
		stroke = "stroke:#ffffff;stroke-width:2"
	}

	for _, p := range snap.Panels {
		x, y, pw, ph := p.Pane.Rect()

		canvas.Gid(p.ID)
		canvas.Rect(x, y, pw, ph, fmt.Sprintf("fill:%s;%s", palette[p.Index%len(palette)], stroke))

		label := fmt.Sprint(p.Index)
		if labels != nil {
			if l := labels(p.Index); l != "" {
				label += " " + l
			}
		}
		canvas.Text(x+pw/2, y+ph/2, label, "text-anchor:middle;font-family:sans-serif;font-size:14px;fill:#ffffff")
		canvas.Gend()
	}

	canvas.End()
}

// Render draws snap with the URI of each live surface as its label.
func (h *Host) Render(w io.Writer, snap collage.Snapshot) {
	surfaces := h.Surfaces()
	Render(w, snap, func(index int) string {
		for _, s := range surfaces {
			if s.index == index {
				return s.URI()
			}
		}
		return ""
	})
}
