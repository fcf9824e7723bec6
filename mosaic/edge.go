package mosaic

// Edge is the region of a pane a pointer landed on.
type Edge uint8

const (
	EdgeNone Edge = iota
	TopLeftCorner
	TopRightCorner
	BottomLeftCorner
	BottomRightCorner
	TopSide
	BottomSide
	LeftSide
	RightSide
)

var edgeNames = [...]string{
	EdgeNone:          "none",
	TopLeftCorner:     "top-left-corner",
	TopRightCorner:    "top-right-corner",
	BottomLeftCorner:  "bottom-left-corner",
	BottomRightCorner: "bottom-right-corner",
	TopSide:           "top-side",
	BottomSide:        "bottom-side",
	LeftSide:          "left-side",
	RightSide:         "right-side",
}

func (e Edge) String() string {
	if int(e) < len(edgeNames) {
		return edgeNames[e]
	}
	return "unknown"
}

// Side is a set of pane boundaries.
type Side uint8

const (
	SideTop Side = 1 << iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) Has(side Side) bool {
	return s&side != 0
}

// Sides returns the boundaries touched by e.
func (e Edge) Sides() Side {
	switch e {
	case TopLeftCorner:
		return SideTop | SideLeft
	case TopRightCorner:
		return SideTop | SideRight
	case BottomLeftCorner:
		return SideBottom | SideLeft
	case BottomRightCorner:
		return SideBottom | SideRight
	case TopSide:
		return SideTop
	case BottomSide:
		return SideBottom
	case LeftSide:
		return SideLeft
	case RightSide:
		return SideRight
	default:
		return 0
	}
}

// MirrorX swaps left and right.
func (e Edge) MirrorX() Edge {
	switch e {
	case TopLeftCorner:
		return TopRightCorner
	case TopRightCorner:
		return TopLeftCorner
	case BottomLeftCorner:
		return BottomRightCorner
	case BottomRightCorner:
		return BottomLeftCorner
	case LeftSide:
		return RightSide
	case RightSide:
		return LeftSide
	default:
		return e
	}
}

// MirrorY swaps top and bottom.
func (e Edge) MirrorY() Edge {
	switch e {
	case TopLeftCorner:
		return BottomLeftCorner
	case BottomLeftCorner:
		return TopLeftCorner
	case TopRightCorner:
		return BottomRightCorner
	case BottomRightCorner:
		return TopRightCorner
	case TopSide:
		return BottomSide
	case BottomSide:
		return TopSide
	default:
		return e
	}
}

const (
	bandLow  = 0.25
	bandHigh = 0.75
)

// Classify maps the pane-local point (x, y) to the edge it touches. Each axis
// is cut at 25% and 75%; the middle band of both axes is EdgeNone.
func Classify(p Pane, x, y float32) Edge {
	if p.W <= 0 || p.H <= 0 {
		return EdgeNone
	}

	px, py := x/p.W, y/p.H

	switch {
	case px < bandLow:
		switch {
		case py < bandLow:
			return TopLeftCorner
		case py <= bandHigh:
			return LeftSide
		default:
			return BottomLeftCorner
		}
	case px <= bandHigh:
		switch {
		case py < bandLow:
			return TopSide
		case py > bandHigh:
			return BottomSide
		default:
			return EdgeNone
		}
	default:
		switch {
		case py < bandLow:
			return TopRightCorner
		case py <= bandHigh:
			return RightSide
		default:
			return BottomRightCorner
		}
	}
}

// axes returns the inner boundaries of a pane that edge enables.
func axes(edge Edge, inner Side) (horizontal, vertical Side) {
	s := edge.Sides() & inner
	return s & (SideLeft | SideRight), s & (SideTop | SideBottom)
}

// grow returns the signed change of an extent when its boundary side moves by
// delta.
func grow(side Side, delta float32) float32 {
	if side.Has(SideLeft) || side.Has(SideTop) {
		return -delta
	}
	return delta
}
