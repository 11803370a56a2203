package complexslider

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func TestNewDefaults(t *testing.T) {
	m := New()
	if len(m.Sliders) != 2 {
		t.Fatalf("got %d sliders, want 2", len(m.Sliders))
	}
	if got := m.Sliders[0].Readout.String(); got != "44%" {
		t.Errorf("initial readout = %q, want %q", got, "44%")
	}
	if !m.ShowHelp {
		t.Error("help footer should be shown by default")
	}
}

func TestNewWithOptions(t *testing.T) {
	m := New(
		WithSliders(Slider{Label: "gain", Width: 480, Height: 160, HandleSize: 16}),
		WithPhysics(Physics{Interval: time.Millisecond, Step: 2, SnapTolerance: 3}),
		WithHelp(false),
		WithSize(100, 30),
	)
	t.Cleanup(func() { New() })

	if len(m.Sliders) != 1 || m.Sliders[0].Widget.Label != "gain" {
		t.Fatalf("sliders = %d, want the single gain slider", len(m.Sliders))
	}
	if p := m.Registry.Physics(); p.Step != 2 || p.SnapTolerance != 3 {
		t.Errorf("physics = %+v", p)
	}
	if m.ShowHelp {
		t.Error("WithHelp(false) should hide the footer")
	}
	if m.Width != 100 || m.Height != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.Width, m.Height)
	}
}

func TestModelHandlesKeys(t *testing.T) {
	m := New()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if cmd != nil {
		t.Error("stop gravity should not return a command")
	}
	if m.Registry.Running() {
		t.Error("input handler not installed: s did not stop gravity")
	}
}

func TestDisplayValue(t *testing.T) {
	initial := Initial{Top: 64, Left: 200, HandleHeight: 16}
	tests := []struct {
		x, y int
		want string
	}{
		{56, 64, "0%"},
		{384, 64, "100%"},
		{200, 54, "44 + 10i %"},
		{200, 70, "44 + -6i %"},
	}
	for _, tt := range tests {
		if got := DisplayValue(initial, tt.x, tt.y); got != tt.want {
			t.Errorf("DisplayValue(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHeadlessRun(t *testing.T) {
	reg := NewRegistry()
	w := NewWidget("z", Initial{Top: 64, Left: 200, HandleHeight: 16})
	reg.Register(w)

	events := make(chan Event, 3)
	events <- PointerDownEvent{Handle: w.ID}
	events <- PointerMoveEvent{DX: 300, DY: 0}
	events <- PointerUpEvent{}
	close(events)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if err := reg.Run(ctx, events); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() = %v, want deadline exceeded", err)
	}

	if x, y := w.Position(); x != 400 || y != 64 {
		t.Errorf("position = (%d, %d), want (400, 64)", x, y)
	}
	if w.Dragging {
		t.Error("pointer up should end the drag")
	}
	if got := w.Text.(*Label).String(); got != "105%" {
		t.Errorf("readout = %q, want %q", got, "105%")
	}
}
