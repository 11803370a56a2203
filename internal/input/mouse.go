package input

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"github.com/complexslider/complexslider/internal/app"
)

// handleMouseClick starts a drag when the left button goes down on a handle.
func handleMouseClick(msg tea.MouseClickMsg, a *app.App) (*app.App, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return a, nil
	}

	i := a.SliderAt(mouse.X, mouse.Y)
	if i == -1 {
		return a, nil
	}

	s := a.Sliders[i]
	if _, ok := a.Registry.PointerDown(s.Widget.ID); !ok {
		return a, nil
	}
	a.Focused = i
	a.LastMouseX = mouse.X
	a.LastMouseY = mouse.Y
	a.LogInfo("drag started on %s", sliderName(s, i))
	return a, nil
}

// handleMouseMotion forwards the pointer delta since the previous event to
// every live drag session.
func handleMouseMotion(msg tea.MouseMotionMsg, a *app.App) (*app.App, tea.Cmd) {
	if !a.Registry.Dragging() {
		return a, nil
	}
	mouse := msg.Mouse()
	dx, dy := a.Grid.Units(mouse.X-a.LastMouseX, mouse.Y-a.LastMouseY)
	a.LastMouseX = mouse.X
	a.LastMouseY = mouse.Y
	if dx != 0 || dy != 0 {
		a.Registry.PointerMove(dx, dy)
	}
	return a, nil
}

// handleMouseRelease ends every live drag session.
func handleMouseRelease(_ tea.MouseReleaseMsg, a *app.App) (*app.App, tea.Cmd) {
	if !a.Registry.Dragging() {
		return a, nil
	}
	a.Registry.PointerUp()
	if s := a.FocusedSlider(); s != nil {
		x, y := s.Widget.Position()
		a.LogInfo("released %s at (%d, %d)", sliderName(s, a.Focused), x, y)
	}
	return a, nil
}

func sliderName(s *app.Slider, i int) string {
	if s.Widget.Label != "" {
		return s.Widget.Label
	}
	return "slider " + strconv.Itoa(i+1)
}
