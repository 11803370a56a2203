package slider

import (
	"context"
	"time"
)

// Event is a pointer event delivered to Run.
type Event interface {
	apply(r *Registry)
}

// PointerDownEvent targets a specific handle.
type PointerDownEvent struct {
	Handle HandleID
}

// PointerMoveEvent carries the device-reported movement since the last event.
type PointerMoveEvent struct {
	DX, DY int
}

// PointerUpEvent is global; it is not tied to a handle.
type PointerUpEvent struct{}

func (e PointerDownEvent) apply(r *Registry) { r.PointerDown(e.Handle) }
func (e PointerMoveEvent) apply(r *Registry) { r.PointerMove(e.DX, e.DY) }
func (PointerUpEvent) apply(r *Registry)     { r.PointerUp() }

// Run drives the registry without a UI framework. Pointer events and gravity
// ticks are processed one at a time on the calling goroutine. Each tick is
// scheduled a full interval after the previous tick finished.
//
// Run returns nil once Stop has been observed after a tick, or the context's
// error when it is cancelled. A nil events channel means no pointer input.
func (r *Registry) Run(ctx context.Context, events <-chan Event) error {
	timer := time.NewTimer(r.physics.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			ev.apply(r)
		case <-timer.C:
			r.Tick()
			if !r.Running() {
				return nil
			}
			timer.Reset(r.physics.Interval)
		}
	}
}
