package slider

// TouchActionNone disables native touch gestures on a handle being dragged.
const TouchActionNone = "none"

// Session is one pointer-down to pointer-up drag of a single handle.
type Session struct {
	reg    *Registry
	widget *Widget
	done   bool
}

// Widget returns the widget this session drags.
func (s *Session) Widget() *Widget { return s.widget }

// Active reports whether the session still owns its handle.
func (s *Session) Active() bool { return !s.done }

// Move applies one pointer-move delta. Horizontal movement is applied first;
// the vertical rule then looks at the new x.
func (s *Session) Move(dx, dy int) {
	if s.done {
		return
	}
	w := s.widget
	b := w.Bounds
	x, y := w.Handle.Position()

	switch {
	case x <= b.MinX && dx < 0:
		x = b.MinX
	case x >= b.MaxX && dx > 0:
		x = b.MaxX
	default:
		x = clamp(x+dx, b.MinX, b.MaxX)
	}

	// A handle resting on the bar stays caught until it leaves the bar span.
	caught := x > b.BarMinX && x < b.BarMaxX && y == b.BarY
	if !caught {
		switch {
		case y <= b.MinY && dy < 0:
			y = b.MinY
		case y >= b.MaxY && dy > 0:
			y = b.MaxY
		default:
			y = clamp(y+dy, b.MinY, b.MaxY)
		}
	}

	w.Handle.SetPosition(x, y)
}

// End releases the handle. Ending twice is harmless.
func (s *Session) End() {
	if s.done {
		return
	}
	s.done = true
	s.widget.Dragging = false
	if s.reg.sessions[s.widget.ID] == s {
		delete(s.reg.sessions, s.widget.ID)
	}
}

// PointerDown starts dragging the handle with the given ID. Unknown handles
// are ignored. A second pointer-down on a handle that is already being
// dragged returns the existing session.
func (r *Registry) PointerDown(id HandleID) (*Session, bool) {
	w, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	if s, busy := r.sessions[id]; busy {
		return s, true
	}

	w.Handle.SetTouchAction(TouchActionNone)
	w.Dragging = true

	s := &Session{reg: r, widget: w}
	r.sessions[id] = s
	return s, true
}

// PointerMove delivers a global pointer-move to every live session.
func (r *Registry) PointerMove(dx, dy int) {
	for _, s := range r.sessions {
		s.Move(dx, dy)
	}
}

// PointerUp delivers a global pointer-up, ending every live session.
func (r *Registry) PointerUp() {
	for _, s := range r.sessions {
		s.End()
	}
}

// Dragging reports whether any session is live.
func (r *Registry) Dragging() bool {
	return len(r.sessions) > 0
}

// Nudge moves a handle as a complete down/move/up gesture, so keyboard
// movement obeys the same clamps and bar-catch as a pointer drag.
func (r *Registry) Nudge(id HandleID, dx, dy int) bool {
	if r.Dragging() {
		return false
	}
	s, ok := r.PointerDown(id)
	if !ok {
		return false
	}
	s.Move(dx, dy)
	s.End()
	return true
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
