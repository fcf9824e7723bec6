package collage

import "github.com/ItsNotGoodName/x-collage/mosaic"

type (
	Snapshot struct {
		Attached bool
		Layout   string
		Canvas   mosaic.Canvas
		Border   bool
		Panels   []PanelSnapshot
	}

	PanelSnapshot struct {
		ID    string
		Index int
		Pane  mosaic.Pane
	}
)

// Snapshot copies the current geometry.
func (c *Collage) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Attached: c.attached,
		Border:   c.border,
	}
	if !c.attached {
		return s
	}

	s.Layout = c.mosaic.Layout().Name()
	s.Canvas = c.mosaic.Canvas()
	panes := c.mosaic.Panes()
	for i, p := range c.panels {
		s.Panels = append(s.Panels, PanelSnapshot{
			ID:    p.ID,
			Index: p.Index,
			Pane:  panes[i],
		})
	}

	return s
}
