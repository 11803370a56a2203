package input

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/complexslider/complexslider/internal/app"
	"github.com/complexslider/complexslider/internal/config"
	"github.com/complexslider/complexslider/internal/layout"
	"github.com/complexslider/complexslider/internal/slider"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	return app.New(app.Options{
		Sliders: config.DefaultConfig().Sliders,
		Physics: slider.DefaultPhysics(),
		Grid:    layout.Grid{CellW: 8, CellH: 16},
	})
}

// handleCell returns the screen cell of slider i's handle.
func handleCell(a *app.App, i int) (int, int) {
	s := a.Sliders[i]
	p := s.Container.Cell(s.Widget.Position())
	return p.X, p.Y
}

func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func motion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func release(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestClickStartsDrag(t *testing.T) {
	tests := []struct {
		name     string
		msg      func(a *app.App) tea.MouseClickMsg
		wantDrag bool
	}{
		{
			name:     "left click on handle",
			msg:      func(a *app.App) tea.MouseClickMsg { return click(handleCell(a, 1)) },
			wantDrag: true,
		},
		{
			name: "left click beside glyph still hits",
			msg: func(a *app.App) tea.MouseClickMsg {
				x, y := handleCell(a, 1)
				return click(x+1, y)
			},
			wantDrag: true,
		},
		{
			name: "right click on handle",
			msg: func(a *app.App) tea.MouseClickMsg {
				x, y := handleCell(a, 1)
				return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseRight}
			},
		},
		{
			name: "click on empty container",
			msg:  func(a *app.App) tea.MouseClickMsg { return click(4, 3) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			HandleInput(tt.msg(a), a)

			if a.Registry.Dragging() != tt.wantDrag {
				t.Fatalf("Dragging() = %v, want %v", a.Registry.Dragging(), tt.wantDrag)
			}
			if !tt.wantDrag {
				return
			}
			w := a.Sliders[1].Widget
			if !w.Dragging {
				t.Error("widget flag not set")
			}
			if a.Sliders[1].Point.TouchAction != slider.TouchActionNone {
				t.Errorf("touch action = %q, want none", a.Sliders[1].Point.TouchAction)
			}
			if a.Focused != 1 {
				t.Errorf("Focused = %d, want the clicked slider", a.Focused)
			}
		})
	}
}

func TestDragSequence(t *testing.T) {
	a := newTestApp(t)
	s := a.Sliders[0]
	x0, y0 := handleCell(a, 0)

	HandleInput(click(x0, y0), a)

	// Along the bar: caught, so the lift is ignored.
	HandleInput(motion(x0+5, y0-3), a)
	if x, y := s.Widget.Position(); x != 240 || y != 64 {
		t.Fatalf("after move along bar = (%d, %d), want (240, 64)", x, y)
	}

	// Past the right end of the bar: x clamps to the box.
	HandleInput(motion(x0+52, y0-3), a)
	if x, y := s.Widget.Position(); x != 400 || y != 64 {
		t.Fatalf("after move right = (%d, %d), want (400, 64)", x, y)
	}

	// Off the bar span the handle lifts freely.
	HandleInput(motion(x0+52, y0-5), a)
	if x, y := s.Widget.Position(); x != 400 || y != 32 {
		t.Fatalf("after lift = (%d, %d), want (400, 32)", x, y)
	}

	// Gravity leaves a held handle alone.
	a.Update(app.GravityTickMsg(time.Now()))
	if _, y := s.Widget.Position(); y != 32 {
		t.Errorf("tick moved a dragged handle to y=%d", y)
	}
	if got := s.Readout.String(); got != "105 + 32i %" {
		t.Errorf("readout = %q, want %q", got, "105 + 32i %")
	}

	HandleInput(release(x0+52, y0-5), a)
	if a.Registry.Dragging() || s.Widget.Dragging {
		t.Fatal("release should end the drag")
	}

	a.Update(app.GravityTickMsg(time.Now()))
	if _, y := s.Widget.Position(); y != 37 {
		t.Errorf("released handle should fall, y = %d, want 37", y)
	}
}

func TestMotionWithoutDragIgnored(t *testing.T) {
	a := newTestApp(t)
	HandleInput(motion(40, 4), a)
	if x, y := a.Sliders[0].Widget.Position(); x != 200 || y != 64 {
		t.Errorf("handle moved to (%d, %d) without a drag", x, y)
	}
}

func TestReleaseWithoutDragIsHarmless(t *testing.T) {
	a := newTestApp(t)
	n := len(a.LogMessages)
	HandleInput(release(0, 0), a)
	if len(a.LogMessages) != n {
		t.Error("release without a drag should not log")
	}
}

func TestUnhandledMessage(t *testing.T) {
	a := newTestApp(t)
	model, cmd := HandleInput(tea.FocusMsg{}, a)
	if model != a || cmd != nil {
		t.Error("unknown messages should pass through untouched")
	}
}
