package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// GravityTickMsg is one gravity step of the registry.
type GravityTickMsg time.Time

// InputHandler is a function type that handles input messages.
// This allows Update to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, a *App) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the gravity loop.
func (a *App) Init() tea.Cmd {
	return GravityTickCmd(a.Registry.Physics().Interval)
}

// GravityTickCmd schedules the next gravity tick after interval. Each tick is
// scheduled only once the previous one has been handled, so ticks never
// overlap.
func GravityTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return GravityTickMsg(t)
	})
}

// Update handles all incoming messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case GravityTickMsg:
		a.Registry.Tick()
		if !a.Registry.Running() {
			a.GravityStopped = true
			a.LogWarn("gravity stopped")
			return a, nil
		}
		return a, GravityTickCmd(a.Registry.Physics().Interval)

	case tea.WindowSizeMsg:
		a.Width = msg.Width
		a.Height = msg.Height
		a.ScrollLogs(0)
		return a, nil
	}

	if inputHandler != nil {
		return inputHandler(msg, a)
	}
	return a, nil
}
