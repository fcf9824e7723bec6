package api

import (
	"github.com/ItsNotGoodName/x-collage/collage"
	"github.com/ItsNotGoodName/x-collage/internal/build"
	"github.com/ItsNotGoodName/x-collage/internal/bus"
	"github.com/ItsNotGoodName/x-collage/mosaic"
)

type (
	Collage struct {
		Attached     bool              `json:"attached"`
		Layout       string            `json:"layout"`
		Width        float32           `json:"width"`
		Height       float32           `json:"height"`
		MinDimension float32           `json:"min_dimension"`
		Border       bool              `json:"border"`
		GestureState string            `json:"gesture_state"`
		Panels       []Panel           `json:"panels"`
		LastClick    *bus.PanelClicked `json:"last_click,omitempty"`
	}

	Panel struct {
		ID     string  `json:"id,omitempty"`
		Index  int     `json:"index"`
		X      float32 `json:"x"`
		Y      float32 `json:"y"`
		W      float32 `json:"w"`
		H      float32 `json:"h"`
		Synced bool    `json:"synced"`
	}

	Layout struct {
		Name   string  `json:"name"`
		Count  int     `json:"count"`
		Panels []Panel `json:"panels"`
	}
)

func NewCollage(snap collage.Snapshot) Collage {
	c := Collage{
		Attached:     snap.Attached,
		Layout:       snap.Layout,
		Width:        snap.Canvas.Width,
		Height:       snap.Canvas.Height,
		MinDimension: snap.Canvas.Min,
		Border:       snap.Border,
		Panels:       []Panel{},
	}
	for _, p := range snap.Panels {
		c.Panels = append(c.Panels, newPanel(p.ID, p.Index, p.Pane))
	}
	return c
}

func newPanel(id string, index int, p mosaic.Pane) Panel {
	return Panel{
		ID:     id,
		Index:  index,
		X:      p.X,
		Y:      p.Y,
		W:      p.W,
		H:      p.H,
		Synced: p.Synced,
	}
}

// Layouts returns the initial geometry of every layout on a width by height
// canvas.
func Layouts(width, height float32) []Layout {
	var layouts []Layout
	for _, l := range mosaic.Layouts() {
		m := mosaic.NewMosaic(l, mosaic.Canvas{Width: width, Height: height, Min: collage.DefaultMinDimension})
		layout := Layout{Name: l.Name(), Count: l.Count()}
		for i, p := range m.Panes() {
			layout.Panels = append(layout.Panels, newPanel("", i, p))
		}
		layouts = append(layouts, layout)
	}
	return layouts
}

type (
	CollageOutput struct {
		Body Collage
	}

	SizeInput struct {
		Body struct {
			Width  float32 `json:"width" minimum:"1"`
			Height float32 `json:"height" minimum:"1"`
		}
	}

	BorderInput struct {
		Body struct {
			Enabled bool `json:"enabled"`
		}
	}

	ImageInput struct {
		Index int `path:"index" minimum:"0"`
		Body  struct {
			URI string `json:"uri,omitempty" doc:"Image URI, empty shows the placeholder"`
		}
	}

	LayoutInput struct {
		Body struct {
			Layout string `json:"layout"`
		}
	}

	LayoutsInput struct {
		Width  float32 `query:"width" default:"400" minimum:"1"`
		Height float32 `query:"height" default:"400" minimum:"1"`
	}

	LayoutsOutput struct {
		Body []Layout
	}

	SVGOutput struct {
		ContentType string `header:"Content-Type"`
		Body        []byte
	}

	BuildOutput struct {
		Body build.Build
	}
)
