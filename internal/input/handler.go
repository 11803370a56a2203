// Package input routes keyboard and mouse messages to the slider registry.
//
// Mouse events become pointer-down, pointer-move and pointer-up calls with
// deltas converted from cells to units. Keys are resolved to actions through
// the config keymap and run by the action dispatcher.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/complexslider/complexslider/internal/app"
	"github.com/complexslider/complexslider/internal/config"
)

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, a *app.App) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, a)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, a)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, a)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, a)
	default:
		return a, nil
	}
}

// HandleKeyPress resolves a key to its action and dispatches it.
func HandleKeyPress(msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	action := config.ActionForKey(msg.String())
	if action == "" {
		return a, nil
	}
	return GetDispatcher().Dispatch(action, msg, a)
}
