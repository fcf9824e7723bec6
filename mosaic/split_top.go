package mosaic

// LayoutSplitTop puts pane 0 across the top half and splits the bottom half
// between pane 1 (left) and pane 2 (right).
type LayoutSplitTop struct{}

var splitTopInner = []Side{
	SideBottom,
	SideTop | SideRight,
	SideTop | SideLeft,
}

func (l LayoutSplitTop) Name() string {
	return "split-top"
}

func (l LayoutSplitTop) Count() int {
	return 3
}

func (l LayoutSplitTop) Init(panes []Pane, c Canvas) {
	hw, hh := c.Width/2, c.Height/2
	panes[0] = Pane{X: 0, Y: 0, W: c.Width, H: hh}
	panes[1] = Pane{X: 0, Y: hh, W: hw, H: hh}
	panes[2] = Pane{X: hw, Y: hh, W: hw, H: hh}
}

func (l LayoutSplitTop) Resize(panes []Pane, c Canvas, index int, edge Edge, dx, dy float32) {
	if !resizePane(l, splitTopInner, panes, c, index, edge, dx, dy) {
		return
	}

	switch index {
	case 0:
		panes[1].H = c.Height - panes[0].H
		panes[1].Y = panes[0].H

		panes[2].H = panes[1].H
		panes[2].Y = panes[0].H
	case 1:
		panes[1].Y = c.Height - panes[1].H

		panes[0].H = c.Height - panes[1].H

		panes[2].W = c.Width - panes[1].W
		panes[2].H = panes[1].H
		panes[2].X = panes[1].W
		panes[2].Y = panes[1].Y
	case 2:
		panes[2].X = c.Width - panes[2].W
		panes[2].Y = c.Height - panes[2].H

		panes[0].H = c.Height - panes[2].H

		panes[1].W = c.Width - panes[2].W
		panes[1].H = panes[2].H
		panes[1].Y = panes[2].Y
	}

	markDirty(panes)
}
