package slider

import (
	"sync/atomic"
	"time"
)

// Physics tunes the gravity relaxation.
type Physics struct {
	// Interval is the delay between the end of one tick and the next.
	Interval time.Duration
	// Step is how far a falling handle moves per tick.
	Step int
	// SnapTolerance is the half-width of the window around the bar in which
	// a falling handle is snapped onto it.
	SnapTolerance int
}

// DefaultPhysics returns the standard 20ms / 5 unit / 5 unit gravity.
func DefaultPhysics() Physics {
	return Physics{
		Interval:      20 * time.Millisecond,
		Step:          5,
		SnapTolerance: 5,
	}
}

// Option configures a Registry.
type Option func(*Registry)

// WithPhysics overrides the gravity parameters. Zero fields keep defaults.
func WithPhysics(p Physics) Option {
	return func(r *Registry) {
		if p.Interval > 0 {
			r.physics.Interval = p.Interval
		}
		if p.Step > 0 {
			r.physics.Step = p.Step
		}
		if p.SnapTolerance > 0 {
			r.physics.SnapTolerance = p.SnapTolerance
		}
	}
}

// WithSignedImaginary prints negative imaginary parts as "a - bi %".
func WithSignedImaginary(enabled bool) Option {
	return func(r *Registry) {
		if enabled {
			r.format = SignedDisplayValue
		} else {
			r.format = DisplayValue
		}
	}
}

// Registry owns the set of widgets on a screen, applies gravity to them and
// routes pointer events to their drag sessions.
//
// A Registry is not safe for concurrent use: ticks and pointer events must be
// delivered from a single goroutine. The only exception is Stop, which may be
// called from anywhere.
type Registry struct {
	widgets  []*Widget
	byID     map[HandleID]*Widget
	sessions map[HandleID]*Session

	physics Physics
	format  func(Bounds, int, int) string

	stopped atomic.Bool
}

// NewRegistry creates an empty registry. Gravity starts out running.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byID:     make(map[HandleID]*Widget),
		sessions: make(map[HandleID]*Session),
		physics:  DefaultPhysics(),
		format:   DisplayValue,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a widget. Registering the same widget twice adds it twice;
// it will then be relaxed twice per tick.
func (r *Registry) Register(w *Widget) {
	r.widgets = append(r.widgets, w)
	r.byID[w.ID] = w
}

// Widgets returns the registered widgets in registration order.
func (r *Registry) Widgets() []*Widget {
	return r.widgets
}

// Lookup finds the widget owning a handle.
func (r *Registry) Lookup(id HandleID) (*Widget, bool) {
	w, ok := r.byID[id]
	return w, ok
}

// Physics returns the active gravity parameters.
func (r *Registry) Physics() Physics {
	return r.physics
}

// Running reports whether ticks should keep being scheduled.
func (r *Registry) Running() bool {
	return !r.stopped.Load()
}

// Stop permanently halts gravity scheduling. The tick in progress, if any,
// still completes.
func (r *Registry) Stop() {
	r.stopped.Store(true)
}

// Tick relaxes every non-dragged handle toward the bar and refreshes every
// widget's text, whether or not its handle moved.
func (r *Registry) Tick() {
	for _, w := range r.widgets {
		r.relax(w)
		r.Refresh(w)
	}
}

func (r *Registry) relax(w *Widget) {
	x, y := w.Handle.Position()
	b := w.Bounds

	if w.Dragging || y == b.MaxY || y == b.BarY {
		return
	}

	tol := r.physics.SnapTolerance
	if y > b.BarY-tol && y < b.BarY+tol && x >= b.BarMinX && x <= b.BarMaxX {
		w.Handle.SetPosition(x, b.BarY)
		return
	}

	w.Handle.SetPosition(x, min(y+r.physics.Step, b.MaxY))
}

// Refresh writes the widget's current display value to its text sink.
func (r *Registry) Refresh(w *Widget) {
	if w.Text == nil {
		return
	}
	x, y := w.Handle.Position()
	w.Text.SetText(r.format(w.Bounds, x, y))
}

// Value returns the display value for a widget without writing it anywhere.
func (r *Registry) Value(w *Widget) string {
	x, y := w.Handle.Position()
	return r.format(w.Bounds, x, y)
}
