package mosaic

// LayoutSplitRight puts pane 1 down the right half and splits the left half
// between pane 0 (top) and pane 2 (bottom).
type LayoutSplitRight struct{}

var splitRightInner = []Side{
	SideRight | SideBottom,
	SideLeft,
	SideTop | SideRight,
}

func (l LayoutSplitRight) Name() string {
	return "split-right"
}

func (l LayoutSplitRight) Count() int {
	return 3
}

func (l LayoutSplitRight) Init(panes []Pane, c Canvas) {
	hw, hh := c.Width/2, c.Height/2
	panes[0] = Pane{X: 0, Y: 0, W: hw, H: hh}
	panes[1] = Pane{X: hw, Y: 0, W: hw, H: c.Height}
	panes[2] = Pane{X: 0, Y: hh, W: hw, H: hh}
}

func (l LayoutSplitRight) Resize(panes []Pane, c Canvas, index int, edge Edge, dx, dy float32) {
	if !resizePane(l, splitRightInner, panes, c, index, edge, dx, dy) {
		return
	}

	switch index {
	case 0:
		panes[1].W = c.Width - panes[0].W
		panes[1].X = panes[0].W

		panes[2].W = panes[0].W
		panes[2].H = c.Height - panes[0].H
		panes[2].Y = panes[0].H
	case 1:
		panes[1].X = c.Width - panes[1].W

		panes[0].W = c.Width - panes[1].W
		panes[2].W = c.Width - panes[1].W
	case 2:
		panes[2].Y = c.Height - panes[2].H

		panes[0].W = panes[2].W
		panes[0].H = c.Height - panes[2].H

		panes[1].W = c.Width - panes[2].W
		panes[1].X = panes[2].W
	}

	markDirty(panes)
}
