package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/complexslider/complexslider/internal/app"
	"github.com/complexslider/complexslider/internal/config"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

func (d *ActionDispatcher) registerHandlers() {
	d.Register(config.ActionQuit, handleQuit)
	d.Register(config.ActionStopGravity, handleStopGravity)
	d.Register(config.ActionToggleLogs, handleToggleLogs)
	d.Register(config.ActionToggleHelp, handleToggleHelp)
	d.Register(config.ActionNextSlider, handleNextSlider)
	d.Register(config.ActionPrevSlider, handlePrevSlider)

	// One cell per press.
	d.Register(config.ActionNudgeLeft, makeNudgeHandler(-1, 0))
	d.Register(config.ActionNudgeRight, makeNudgeHandler(1, 0))
	d.Register(config.ActionNudgeUp, makeNudgeHandler(0, -1))
	d.Register(config.ActionNudgeDown, makeNudgeHandler(0, 1))

	d.Register(config.ActionScrollLogsUp, makeScrollLogsHandler(-1))
	d.Register(config.ActionScrollLogsDn, makeScrollLogsHandler(1))
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, a)
	}
	return a, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

func handleQuit(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	if a.ShowLogs {
		a.ShowLogs = false
		return a, nil
	}
	a.Registry.PointerUp()
	a.Registry.Stop()
	return a, tea.Quit
}

func handleStopGravity(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.StopGravity()
	return a, nil
}

func handleToggleLogs(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.ShowLogs = !a.ShowLogs
	if a.ShowLogs {
		a.LogInfo("Log viewer opened")
		a.ScrollLogs(len(a.LogMessages))
	}
	return a, nil
}

func handleToggleHelp(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.ShowHelp = !a.ShowHelp
	return a, nil
}

func handleNextSlider(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.CycleFocus(1)
	return a, nil
}

func handlePrevSlider(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.CycleFocus(-1)
	return a, nil
}

// makeNudgeHandler moves the focused handle by whole cells. The readout
// follows on the next gravity tick.
func makeNudgeHandler(cols, rows int) ActionHandler {
	return func(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
		s := a.FocusedSlider()
		if s == nil {
			return a, nil
		}
		dx, dy := a.Grid.Units(cols, rows)
		if !a.Registry.Nudge(s.Widget.ID, dx, dy) {
			a.LogWarn("nudge ignored while a drag is active")
		}
		return a, nil
	}
}

func makeScrollLogsHandler(delta int) ActionHandler {
	return func(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
		if a.ShowLogs {
			a.ScrollLogs(delta)
		}
		return a, nil
	}
}
