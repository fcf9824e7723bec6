package mosaic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	pane := rect(0, 200, 200, 200)

	tests := []struct {
		name string
		x, y float32
		want Edge
	}{
		{"left side", 10, 100, LeftSide},
		{"top left", 10, 10, TopLeftCorner},
		{"bottom left", 10, 190, BottomLeftCorner},
		{"top side", 100, 10, TopSide},
		{"center", 100, 100, EdgeNone},
		{"bottom side", 100, 190, BottomSide},
		{"top right", 190, 10, TopRightCorner},
		{"right side", 190, 100, RightSide},
		{"bottom right", 190, 190, BottomRightCorner},
		{"band edges are inclusive", 50, 150, EdgeNone},
		{"left band edge", 49, 150, LeftSide},
		{"bottom band edge", 100, 151, BottomSide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(pane, tt.x, tt.y))
		})
	}
}

func TestClassifyEmptyPane(t *testing.T) {
	assert.Equal(t, EdgeNone, Classify(Pane{}, 0, 0))
	assert.Equal(t, EdgeNone, Classify(rect(0, 0, 100, 0), 10, 0))
}

func TestClassifySymmetry(t *testing.T) {
	pane := rect(0, 0, 200, 100)

	for x := float32(0); x <= pane.W; x += 2.5 {
		for y := float32(0); y <= pane.H; y += 2.5 {
			edge := Classify(pane, x, y)
			assert.Equal(t, edge.MirrorX(), Classify(pane, pane.W-x, y), "(%v, %v)", x, y)
			assert.Equal(t, edge.MirrorY(), Classify(pane, x, pane.H-y), "(%v, %v)", x, y)
		}
	}
}

func TestMosaicClassify(t *testing.T) {
	m := NewMosaic(LayoutSplitTop{}, canvas400)

	assert.Equal(t, LeftSide, m.Classify(1, 10, 100))
	assert.Equal(t, BottomSide, m.Classify(0, 200, 190))
	assert.Equal(t, EdgeNone, m.Classify(-1, 10, 100))
	assert.Equal(t, EdgeNone, m.Classify(3, 10, 100))
}

func TestEdgeSides(t *testing.T) {
	assert.Equal(t, SideTop|SideLeft, TopLeftCorner.Sides())
	assert.Equal(t, SideBottom, BottomSide.Sides())
	assert.Zero(t, EdgeNone.Sides())

	horizontal, vertical := axes(BottomRightCorner, SideTop|SideRight)
	assert.Equal(t, SideRight, horizontal)
	assert.Zero(t, vertical)

	assert.Equal(t, float32(-5), grow(SideLeft, 5))
	assert.Equal(t, float32(5), grow(SideBottom, 5))
	assert.Equal(t, "bottom-right-corner", BottomRightCorner.String())
}
