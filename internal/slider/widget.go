// Package slider implements the position state machine of a complex-valued
// slider: gravity relaxation toward the bar, clamped dragging, and the
// mapping from handle coordinates to the displayed value.
//
// All coordinates are in abstract pixel units. Front-ends (the terminal app,
// the SSH and web servers) translate their own coordinate systems into
// units before calling into this package.
package slider

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// BarLeftPadding is the horizontal offset of the left end of the bar.
	BarLeftPadding = 56

	// BarRightPadding is subtracted from the doubled initial left offset to
	// obtain the right end of the bar.
	BarRightPadding = 16
)

// HandleID identifies a widget's handle. Pointer-down events carry it.
type HandleID string

// NewHandleID returns a fresh random handle identifier.
func NewHandleID() HandleID {
	return HandleID(uuid.New().String())
}

// Handle is the draggable element. It holds the live position; the widget
// itself never caches it.
type Handle interface {
	Position() (x, y int)
	SetPosition(x, y int)
	// SetTouchAction asks the platform to enable or disable its native
	// touch gestures on the handle ("none" disables them).
	SetTouchAction(action string)
}

// TextSink receives the display string.
type TextSink interface {
	SetText(text string)
}

// Bounds are the immutable travel limits of a handle.
type Bounds struct {
	BarY    int // resting offset on the bar
	MinY    int // ceiling
	MaxY    int // floor
	MinX    int
	MaxX    int
	BarMinX int // left end of the bar span
	BarMaxX int // right end of the bar span
}

// Initial is the geometry a discovery service reports for a handle before
// any interaction.
type Initial struct {
	Top          int // initial vertical offset of the handle
	Left         int // initial horizontal offset of the handle
	HandleHeight int
}

// DeriveBounds computes the travel limits from the handle's initial
// placement. The formulas are part of the layout contract and must not be
// changed without changing the rendering.
func DeriveBounds(in Initial) Bounds {
	return Bounds{
		BarY:    in.Top,
		MinY:    0,
		MaxY:    2*in.Top - in.HandleHeight,
		MinX:    0,
		MaxX:    2 * in.Left,
		BarMinX: BarLeftPadding,
		BarMaxX: 2*in.Left - BarRightPadding,
	}
}

// Validate reports bounds that break the ordering invariants.
func (b Bounds) Validate() error {
	if b.MinY > b.BarY || b.BarY > b.MaxY {
		return fmt.Errorf("vertical bounds out of order: min=%d bar=%d max=%d", b.MinY, b.BarY, b.MaxY)
	}
	if b.MinX > b.BarMinX || b.BarMinX > b.BarMaxX || b.BarMaxX > b.MaxX {
		return fmt.Errorf("horizontal bounds out of order: min=%d bar=[%d,%d] max=%d",
			b.MinX, b.BarMinX, b.BarMaxX, b.MaxX)
	}
	return nil
}

// Contains reports whether (x, y) lies inside the travel box.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Widget is the per-slider state.
type Widget struct {
	ID     HandleID
	Label  string
	Bounds Bounds

	// Dragging is true only while a pointer session owns the handle.
	Dragging bool

	Handle Handle
	Text   TextSink
}

// NewWidget creates a widget with a fresh handle ID.
func NewWidget(label string, bounds Bounds, handle Handle, text TextSink) *Widget {
	return &Widget{
		ID:     NewHandleID(),
		Label:  label,
		Bounds: bounds,
		Handle: handle,
		Text:   text,
	}
}

// Position returns the handle's current position.
func (w *Widget) Position() (x, y int) {
	return w.Handle.Position()
}

// Point is an in-memory Handle.
type Point struct {
	X, Y        int
	TouchAction string
}

// Position implements Handle.
func (p *Point) Position() (int, int) { return p.X, p.Y }

// SetPosition implements Handle.
func (p *Point) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

// SetTouchAction implements Handle.
func (p *Point) SetTouchAction(action string) { p.TouchAction = action }

// Label is an in-memory TextSink.
type Label struct {
	text string
}

// SetText implements TextSink.
func (l *Label) SetText(text string) { l.text = text }

// String returns the last text written.
func (l *Label) String() string { return l.text }
