package mosaic

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canvas400 = Canvas{Width: 400, Height: 400, Min: 100}

func rect(x, y, w, h float32) Pane {
	return Pane{X: x, Y: y, W: w, H: h}
}

func requireGeometry(t *testing.T, want []Pane, got []Pane) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].X, got[i].X, "pane %d x", i)
		assert.Equal(t, want[i].Y, got[i].Y, "pane %d y", i)
		assert.Equal(t, want[i].W, got[i].W, "pane %d w", i)
		assert.Equal(t, want[i].H, got[i].H, "pane %d h", i)
	}
}

func overlap(a, b Pane) float32 {
	w := math32.Min(a.X+a.W, b.X+b.W) - math32.Max(a.X, b.X)
	h := math32.Min(a.Y+a.H, b.Y+b.H) - math32.Max(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// requireTiling checks that panes cover c exactly without overlapping and that
// every extent is either the full canvas extent or inside [Min, total-Min].
func requireTiling(t *testing.T, c Canvas, panes []Pane) {
	t.Helper()

	var area float32
	for i, p := range panes {
		require.GreaterOrEqual(t, p.X, float32(0), "pane %d", i)
		require.GreaterOrEqual(t, p.Y, float32(0), "pane %d", i)
		require.LessOrEqual(t, p.X+p.W, c.Width, "pane %d", i)
		require.LessOrEqual(t, p.Y+p.H, c.Height, "pane %d", i)

		if p.W != c.Width {
			require.True(t, within(p.W, c.Min, c.Width-c.Min), "pane %d width %v", i, p.W)
		}
		if p.H != c.Height {
			require.True(t, within(p.H, c.Min, c.Height-c.Min), "pane %d height %v", i, p.H)
		}

		area += p.W * p.H
		for j := i + 1; j < len(panes); j++ {
			require.Zero(t, overlap(p, panes[j]), "panes %d and %d overlap", i, j)
		}
	}
	require.InDelta(t, c.Width*c.Height, area, 0.5)
}

func TestLookup(t *testing.T) {
	for _, l := range Layouts() {
		got, err := Lookup(l.Name())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := Lookup("5x5")
	assert.True(t, errors.Is(err, ErrUnknownLayout))
}

func TestLayoutSplitTop(t *testing.T) {
	m := NewMosaic(LayoutSplitTop{}, canvas400)
	requireGeometry(t, []Pane{
		rect(0, 0, 400, 200),
		rect(0, 200, 200, 200),
		rect(200, 200, 200, 200),
	}, m.Panes())

	m.Resize(0, BottomSide, 0, 50)
	want := []Pane{
		rect(0, 0, 400, 250),
		rect(0, 250, 200, 150),
		rect(200, 250, 200, 150),
	}
	requireGeometry(t, want, m.Panes())

	// Would push panes 1 and 2 below the minimum.
	m.Resize(0, BottomSide, 0, 200)
	requireGeometry(t, want, m.Panes())
}

func TestLayoutSplitTopInnerPanes(t *testing.T) {
	m := NewMosaic(LayoutSplitTop{}, canvas400)

	m.Resize(1, TopRightCorner, 40, 30)
	requireGeometry(t, []Pane{
		rect(0, 0, 400, 230),
		rect(0, 230, 240, 170),
		rect(240, 230, 160, 170),
	}, m.Panes())

	m.Resize(2, LeftSide, 20, 0)
	requireGeometry(t, []Pane{
		rect(0, 0, 400, 230),
		rect(0, 230, 260, 170),
		rect(260, 230, 140, 170),
	}, m.Panes())

	// Outer boundaries do not move.
	before := m.Panes()
	m.Resize(0, TopSide, 0, 30)
	m.Resize(1, BottomLeftCorner, 10, 10)
	m.Resize(2, RightSide, 10, 0)
	requireGeometry(t, before, m.Panes())
}

func TestLayoutSplitRight(t *testing.T) {
	m := NewMosaic(LayoutSplitRight{}, canvas400)
	requireGeometry(t, []Pane{
		rect(0, 0, 200, 200),
		rect(200, 0, 200, 400),
		rect(0, 200, 200, 200),
	}, m.Panes())

	m.Resize(0, BottomRightCorner, 50, -60)
	requireGeometry(t, []Pane{
		rect(0, 0, 250, 140),
		rect(250, 0, 150, 400),
		rect(0, 140, 250, 260),
	}, m.Panes())

	m.Resize(1, LeftSide, 30, 999)
	requireGeometry(t, []Pane{
		rect(0, 0, 280, 140),
		rect(280, 0, 120, 400),
		rect(0, 140, 280, 260),
	}, m.Panes())

	m.Resize(2, TopRightCorner, -80, 40)
	requireGeometry(t, []Pane{
		rect(0, 0, 200, 180),
		rect(200, 0, 200, 400),
		rect(0, 180, 200, 220),
	}, m.Panes())

	// Width rejected, height accepted.
	m.Resize(2, TopRightCorner, 150, -20)
	requireGeometry(t, []Pane{
		rect(0, 0, 200, 160),
		rect(200, 0, 200, 400),
		rect(0, 160, 200, 240),
	}, m.Panes())
}

func TestLayout2x2(t *testing.T) {
	m := NewMosaic(Layout2x2{}, canvas400)

	m.Resize(3, TopLeftCorner, -50, 25)
	requireGeometry(t, []Pane{
		rect(0, 0, 150, 225),
		rect(150, 0, 250, 225),
		rect(0, 225, 150, 175),
		rect(150, 225, 250, 175),
	}, m.Panes())

	m.Resize(1, LeftSide, 10, 0)
	requireGeometry(t, []Pane{
		rect(0, 0, 160, 225),
		rect(160, 0, 240, 225),
		rect(0, 225, 160, 175),
		rect(160, 225, 240, 175),
	}, m.Panes())
}

func TestResizeNoop(t *testing.T) {
	for _, layout := range Layouts() {
		t.Run(layout.Name(), func(t *testing.T) {
			m := NewMosaic(layout, canvas400)
			require.NoError(t, m.Flush(func(int, Pane) error { return nil }))
			before := m.Panes()

			m.Resize(-1, BottomSide, 10, 10)
			m.Resize(layout.Count(), BottomSide, 10, 10)
			for i := 0; i < layout.Count(); i++ {
				m.Resize(i, EdgeNone, 10, 10)
			}

			assert.Equal(t, before, m.Panes())
		})
	}
}

func TestTilingInvariant(t *testing.T) {
	edges := []Edge{
		EdgeNone, TopLeftCorner, TopRightCorner, BottomLeftCorner, BottomRightCorner,
		TopSide, BottomSide, LeftSide, RightSide,
	}

	for _, layout := range Layouts() {
		t.Run(layout.Name(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			c := Canvas{Width: 640, Height: 480, Min: 100}
			m := NewMosaic(layout, c)
			requireTiling(t, c, m.Panes())

			for i := 0; i < 2000; i++ {
				index := rng.Intn(layout.Count())
				edge := edges[rng.Intn(len(edges))]
				dx, dy := float32(rng.Intn(241)-120), float32(rng.Intn(241)-120)

				m.Resize(index, edge, dx, dy)
				requireTiling(t, c, m.Panes())
			}
		})
	}
}

func TestScale(t *testing.T) {
	m := NewMosaic(LayoutSplitTop{}, canvas400)
	m.Resize(0, BottomSide, 0, 50)
	require.NoError(t, m.Flush(func(int, Pane) error { return nil }))

	m.Scale(800, 200)
	requireGeometry(t, []Pane{
		rect(0, 0, 800, 125),
		rect(0, 125, 400, 75),
		rect(400, 125, 400, 75),
	}, m.Panes())
	assert.Equal(t, Canvas{Width: 800, Height: 200, Min: 100}, m.Canvas())
	for _, p := range m.Panes() {
		assert.False(t, p.Synced)
	}

	// Panes may fall below the minimum after scaling, dragging still works
	// against the new canvas.
	m.Resize(0, BottomSide, 0, 10)
	requireGeometry(t, []Pane{
		rect(0, 0, 800, 125),
		rect(0, 125, 400, 75),
		rect(400, 125, 400, 75),
	}, m.Panes())

	m.Scale(400, 400)
	requireGeometry(t, []Pane{
		rect(0, 0, 400, 250),
		rect(0, 250, 200, 150),
		rect(200, 250, 200, 150),
	}, m.Panes())
}

func TestFlush(t *testing.T) {
	m := NewMosaic(LayoutSplitRight{}, canvas400)

	render := func(dst map[int]Pane) func(int, Pane) error {
		return func(i int, p Pane) error {
			p.Synced = true
			dst[i] = p
			return nil
		}
	}

	first := map[int]Pane{}
	require.NoError(t, m.Flush(render(first)))
	assert.Len(t, first, 3)

	second := map[int]Pane{}
	require.NoError(t, m.Flush(render(second)))
	assert.Empty(t, second)

	m.Invalidate()
	require.NoError(t, m.Flush(render(second)))
	assert.Equal(t, first, second)

	m.Resize(1, LeftSide, 10, 0)
	failed := errors.New("failed")
	err := m.Flush(func(i int, p Pane) error {
		if i == 2 {
			return failed
		}
		return nil
	})
	require.ErrorIs(t, err, failed)

	retried := map[int]Pane{}
	require.NoError(t, m.Flush(render(retried)))
	assert.Len(t, retried, 1)
	assert.Contains(t, retried, 2)
}

func TestPaneAt(t *testing.T) {
	m := NewMosaic(LayoutSplitTop{}, canvas400)

	assert.Equal(t, 0, m.PaneAt(10, 10))
	assert.Equal(t, 1, m.PaneAt(10, 210))
	assert.Equal(t, 2, m.PaneAt(200, 200))
	assert.Equal(t, -1, m.PaneAt(400, 10))
	assert.Equal(t, -1, m.PaneAt(-1, 10))
}

func TestPaneRect(t *testing.T) {
	x, y, w, h := Pane{X: 133.4, Y: 0.6, W: 133.3, H: 99.5}.Rect()
	assert.Equal(t, []int{133, 1, 134, 99}, []int{x, y, w, h})
}
