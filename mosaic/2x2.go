package mosaic

// Layout2x2 is a grid of four panes meeting at a movable centre point.
type Layout2x2 struct{}

var grid2x2Inner = []Side{
	SideRight | SideBottom,
	SideLeft | SideBottom,
	SideTop | SideRight,
	SideTop | SideLeft,
}

func (l Layout2x2) Name() string {
	return "2x2"
}

func (l Layout2x2) Count() int {
	return 4
}

func (l Layout2x2) Init(panes []Pane, c Canvas) {
	l.place(panes, c, c.Width/2, c.Height/2)
}

func (l Layout2x2) Resize(panes []Pane, c Canvas, index int, edge Edge, dx, dy float32) {
	if !resizePane(l, grid2x2Inner, panes, c, index, edge, dx, dy) {
		return
	}

	p := panes[index]
	cx, cy := p.W, p.H
	if grid2x2Inner[index].Has(SideLeft) {
		cx = c.Width - p.W
	}
	if grid2x2Inner[index].Has(SideTop) {
		cy = c.Height - p.H
	}

	l.place(panes, c, cx, cy)
	markDirty(panes)
}

// place partitions the canvas around the centre point (cx, cy).
func (l Layout2x2) place(panes []Pane, c Canvas, cx, cy float32) {
	rw, bh := c.Width-cx, c.Height-cy
	panes[0] = Pane{X: 0, Y: 0, W: cx, H: cy}
	panes[1] = Pane{X: cx, Y: 0, W: rw, H: cy}
	panes[2] = Pane{X: 0, Y: cy, W: cx, H: bh}
	panes[3] = Pane{X: cx, Y: cy, W: rw, H: bh}
}
