package gesture

import (
	"log/slog"
	"time"

	"github.com/ItsNotGoodName/x-collage/mosaic"
)

type Action int

const (
	ActionOther Action = iota
	ActionDown
	ActionMove
	ActionUp
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	default:
		return "other"
	}
}

type (
	// Event is a pointer event. RawX and RawY are screen coordinates, X and Y
	// are relative to Panel, the index of the panel under the pointer or -1.
	Event struct {
		Action Action
		Time   time.Time
		RawX   float32
		RawY   float32
		Panel  int
		X      float32
		Y      float32
	}

	// Session is the state of one press. A zero Start means moves are passed
	// through.
	Session struct {
		Start     time.Time
		InitialX  float32
		InitialY  float32
		LastX     float32
		LastY     float32
		Panel     int
		Edge      mosaic.Edge
		LongPress bool
	}

	// Step is one boundary move.
	Step struct {
		Panel int
		Edge  mosaic.Edge
		DX    float32
		DY    float32
	}

	Result struct {
		Decision Decision
		// Step is set when a resize has to be queued.
		Step *Step
		// Click is the index of the clicked panel or -1.
		Click int
	}

	// ClassifyFunc returns the edge of panel touched at the panel-local point
	// (x, y).
	ClassifyFunc func(panel int, x, y float32) mosaic.Edge
)

type Decision int

const (
	// Forward passes the event to the default click handling.
	Forward Decision = iota
	// Consume means the event drove a resize.
	Consume
	// Ignore means the event was not handled.
	Ignore
)

func (d Decision) String() string {
	switch d {
	case Consume:
		return "consume"
	case Ignore:
		return "ignore"
	default:
		return "forward"
	}
}

type State int

const (
	StateIdle State = iota
	StatePressed
	StatePassthrough
	StateResizing
)

func (s State) String() string {
	switch s {
	case StatePressed:
		return "pressed"
	case StatePassthrough:
		return "passthrough"
	case StateResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Tracker turns down/move/up sequences into resize steps or clicks. It is not
// safe for concurrent use.
type Tracker struct {
	longPress time.Duration
	now       func() time.Time

	state   State
	session *Session
	// pressed is the panel that receives the click when the gesture ends
	// without resizing.
	pressed int
}

func NewTracker(longPress time.Duration) *Tracker {
	return &Tracker{
		longPress: longPress,
		now:       time.Now,
		pressed:   -1,
	}
}

func (t *Tracker) State() State {
	return t.state
}

// Session returns a copy of the current session.
func (t *Tracker) Session() (Session, bool) {
	if t.session == nil {
		return Session{}, false
	}
	return *t.session, true
}

func (t *Tracker) Handle(ev Event, classify ClassifyFunc) Result {
	if ev.Time.IsZero() {
		ev.Time = t.now()
	}

	switch ev.Action {
	case ActionDown:
		return t.down(ev, classify)
	case ActionMove:
		return t.move(ev)
	case ActionUp:
		return t.up(ev)
	default:
		return Result{Decision: Forward, Click: -1}
	}
}

func (t *Tracker) down(ev Event, classify ClassifyFunc) Result {
	s := &Session{
		Start:    ev.Time,
		InitialX: ev.RawX,
		InitialY: ev.RawY,
		LastX:    ev.RawX,
		LastY:    ev.RawY,
		Panel:    ev.Panel,
		Edge:     mosaic.EdgeNone,
	}
	if ev.Panel < 0 {
		s.Panel = -1
		s.Start = time.Time{}
	} else {
		s.Edge = classify(ev.Panel, ev.X, ev.Y)
	}

	t.session = s
	t.pressed = s.Panel
	t.state = StatePressed

	slog.Debug("Pointer down", "package", "gesture", "panel", s.Panel, "edge", s.Edge)

	return Result{Decision: Forward, Click: -1}
}

func (t *Tracker) move(ev Event) Result {
	s := t.session
	if s == nil || s.Start.IsZero() {
		return Result{Decision: Forward, Click: -1}
	}

	if !s.LongPress {
		if ev.Time.Sub(s.Start) <= t.longPress {
			if ev.RawX == s.InitialX && ev.RawY == s.InitialY {
				return Result{Decision: Ignore, Click: -1}
			}

			t.session = nil
			t.state = StatePassthrough
			return Result{Decision: Forward, Click: -1}
		}

		s.LongPress = true
		t.state = StateResizing
	}

	return Result{Decision: Consume, Step: t.step(ev), Click: -1}
}

func (t *Tracker) up(ev Event) Result {
	s := t.session
	if s == nil || !s.LongPress {
		click := t.pressed
		t.reset()
		return Result{Decision: Forward, Click: click}
	}

	step := t.step(ev)
	t.reset()
	return Result{Decision: Consume, Step: step, Click: -1}
}

func (t *Tracker) step(ev Event) *Step {
	s := t.session
	step := &Step{
		Panel: s.Panel,
		Edge:  s.Edge,
		DX:    ev.RawX - s.LastX,
		DY:    ev.RawY - s.LastY,
	}
	s.LastX, s.LastY = ev.RawX, ev.RawY
	return step
}

func (t *Tracker) reset() {
	t.session = nil
	t.pressed = -1
	t.state = StateIdle
}
