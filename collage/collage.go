package collage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ItsNotGoodName/x-collage/gesture"
	"github.com/ItsNotGoodName/x-collage/internal/queue"
	"github.com/ItsNotGoodName/x-collage/mosaic"
	"github.com/google/uuid"
)

const DefaultMinDimension = 100

var ErrCanvasSize = errors.New("canvas size is not known")

type (
	// Surface is the host's rendering of one panel.
	Surface interface {
		Place(x, y, w, h int) error
		SetBorder(enabled bool) error
		Close() error
	}

	Host interface {
		NewSurface(index int) (Surface, error)
	}

	// Loader shows the image at uri on a surface, or a placeholder when uri is
	// empty or cannot be shown. Load must not wait for the image.
	Loader interface {
		Load(surface Surface, uri string)
	}

	Panel struct {
		ID      string
		Index   int
		Surface Surface
	}

	ClickListener func(panel *Panel)

	Config struct {
		MinDimension float32
		LongPress    time.Duration
		Border       bool
	}
)

// Collage owns the panels of one canvas and the geometry cache they are
// placed from.
type Collage struct {
	host   Host
	loader Loader
	config Config
	queue  *queue.Queue

	mu         sync.Mutex
	attached   bool
	generation int
	mosaic     mosaic.Mosaic
	tracker    *gesture.Tracker
	panels     []*Panel
	border     bool
	onClick    ClickListener
}

func New(host Host, loader Loader, config Config) *Collage {
	if config.MinDimension <= 0 {
		config.MinDimension = DefaultMinDimension
	}

	return &Collage{
		host:    host,
		loader:  loader,
		config:  config,
		queue:   queue.New("collage"),
		tracker: gesture.NewTracker(config.LongPress),
		border:  config.Border,
	}
}

func (c *Collage) String() string {
	return "collage.Collage"
}

// Serve runs the resize queue.
func (c *Collage) Serve(ctx context.Context) error {
	return c.queue.Serve(ctx)
}

// Sync waits for every queued resize to be applied.
func (c *Collage) Sync(ctx context.Context) error {
	return c.queue.Sync(ctx)
}

// Attach partitions a width by height canvas with layout and requests the
// image at uris[i] for panel i. Existing panels are closed.
func (c *Collage) Attach(layout mosaic.Layout, width, height float32, uris []string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrCanvasSize, width, height)
	}

	c.mu.Lock()

	c.closePanels()

	panels := make([]*Panel, 0, layout.Count())
	for i := 0; i < layout.Count(); i++ {
		surface, err := c.host.NewSurface(i)
		if err != nil {
			for _, p := range panels {
				p.Surface.Close()
			}
			c.attached = false
			c.mu.Unlock()
			return fmt.Errorf("surface %d: %w", i, err)
		}

		panels = append(panels, &Panel{
			ID:      uuid.NewString(),
			Index:   i,
			Surface: surface,
		})
	}

	c.panels = panels
	c.mosaic = mosaic.NewMosaic(layout, mosaic.Canvas{
		Width:  width,
		Height: height,
		Min:    c.config.MinDimension,
	})
	c.tracker = gesture.NewTracker(c.config.LongPress)
	c.generation++
	c.attached = true

	c.flush()
	c.applyBorder()

	surfaces := make([]Surface, len(panels))
	for i, p := range panels {
		surfaces[i] = p.Surface
	}

	c.mu.Unlock()

	slog.Info("Attached collage", "package", "collage", "layout", layout.Name(), "width", width, "height", height)

	for i, surface := range surfaces {
		var uri string
		if i < len(uris) {
			uri = uris[i]
		}
		c.load(surface, uri)
	}

	return nil
}

// Close releases every panel.
func (c *Collage) Close() {
	c.mu.Lock()
	c.closePanels()
	c.attached = false
	c.mu.Unlock()
}

func (c *Collage) Layout() mosaic.Layout {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mosaic.Layout()
}

func (c *Collage) Panels() []*Panel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Panel(nil), c.panels...)
}

func (c *Collage) SetImageAt(index int, uri string) {
	c.mu.Lock()
	if index < 0 || index >= len(c.panels) {
		c.mu.Unlock()
		slog.Debug("Invalid panel index", "package", "collage", "func", "SetImageAt", "index", index)
		return
	}
	surface := c.panels[index].Surface
	c.mu.Unlock()

	c.load(surface, uri)
}

// ResizeWhole scales every panel to a width by height canvas.
func (c *Collage) ResizeWhole(width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return
	}

	c.mosaic.Scale(width, height)
	c.flush()
}

func (c *Collage) Border() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.border
}

func (c *Collage) EnableBorder(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.border = enabled
	c.applyBorder()
}

func (c *Collage) ToggleBorder() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.border = !c.border
	c.applyBorder()
}

// SetImageClickListener sets the listener called when a press and release on
// a panel did not resize it.
func (c *Collage) SetImageClickListener(listener ClickListener) {
	c.mu.Lock()
	c.onClick = listener
	c.mu.Unlock()
}

// HandlePointer feeds a pointer event to the gesture tracker. Boundary drags
// are queued and applied in order.
func (c *Collage) HandlePointer(ev gesture.Event) gesture.Decision {
	c.mu.Lock()
	if !c.attached {
		c.mu.Unlock()
		return gesture.Forward
	}

	res := c.tracker.Handle(ev, c.mosaic.Classify)

	var clicked *Panel
	if res.Click >= 0 && res.Click < len(c.panels) {
		clicked = c.panels[res.Click]
	}
	onClick := c.onClick
	generation := c.generation
	c.mu.Unlock()

	if res.Step != nil {
		c.enqueue(generation, *res.Step)
	}

	if clicked != nil && onClick != nil {
		onClick(clicked)
	}

	return res.Decision
}

// GestureState returns the state of the current gesture.
func (c *Collage) GestureState() gesture.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tracker.State()
}

// Edge returns the edge being dragged or EdgeNone.
func (c *Collage) Edge() mosaic.Edge {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.tracker.Session()
	if !ok || c.tracker.State() == gesture.StatePassthrough {
		return mosaic.EdgeNone
	}
	return s.Edge
}

// PanelAt returns the index of the panel at the canvas point (x, y) or -1.
func (c *Collage) PanelAt(x, y float32) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return -1
	}
	return c.mosaic.PaneAt(x, y)
}

// Locate returns the panel at the canvas point (x, y) and the point relative
// to that panel. The index is -1 when no panel is there.
func (c *Collage) Locate(x, y float32) (int, float32, float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return -1, 0, 0
	}

	index := c.mosaic.PaneAt(x, y)
	pane, ok := c.mosaic.Pane(index)
	if !ok {
		return -1, 0, 0
	}
	return index, x - pane.X, y - pane.Y
}

func (c *Collage) enqueue(generation int, step gesture.Step) {
	c.queue.Enqueue(func(done func()) {
		defer done()

		c.mu.Lock()
		defer c.mu.Unlock()

		if generation != c.generation || !c.attached {
			slog.Debug("Dropped resize for replaced layout", "package", "collage", "panel", step.Panel)
			return
		}

		c.mosaic.Resize(step.Panel, step.Edge, step.DX, step.DY)
		c.flush()
	})
}

func (c *Collage) load(surface Surface, uri string) {
	if c.loader == nil {
		return
	}
	c.loader.Load(surface, uri)
}

// flush must be called with mu held.
func (c *Collage) flush() {
	err := c.mosaic.Flush(func(index int, pane mosaic.Pane) error {
		x, y, w, h := pane.Rect()
		if err := c.panels[index].Surface.Place(x, y, w, h); err != nil {
			return fmt.Errorf("panel %d: %w", index, err)
		}
		return nil
	})
	if err != nil {
		slog.Error("Failed to place panels", "package", "collage", "error", err)
	}
}

// applyBorder must be called with mu held.
func (c *Collage) applyBorder() {
	for _, p := range c.panels {
		if err := p.Surface.SetBorder(c.border); err != nil {
			slog.Error("Failed to set border", "package", "collage", "panel", p.Index, "error", err)
		}
	}
}

// closePanels must be called with mu held.
func (c *Collage) closePanels() {
	for _, p := range c.panels {
		if err := p.Surface.Close(); err != nil {
			slog.Error("Failed to close panel", "package", "collage", "panel", p.Index, "error", err)
		}
	}
	c.panels = nil
}
