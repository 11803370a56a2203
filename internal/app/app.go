// Package app implements the Bubble Tea model that hosts the sliders: it owns
// the registry, drives the gravity tick, and renders every container onto a
// lipgloss canvas.
package app

import (
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/complexslider/complexslider/internal/config"
	"github.com/complexslider/complexslider/internal/layout"
	"github.com/complexslider/complexslider/internal/slider"
)

// Slider pairs a placed container with the widget that lives in it.
type Slider struct {
	Container *layout.Container
	Widget    *slider.Widget
	Point     *slider.Point
	Readout   *slider.Label
}

// App is the main application model.
type App struct {
	Registry *slider.Registry
	Sliders  []*Slider
	Grid     layout.Grid

	// Focused is the slider keyboard nudges apply to.
	Focused int

	Width  int
	Height int

	ShowHelp bool
	ShowLogs bool

	LogMessages     []LogMessage
	LogScrollOffset int

	// LastMouseX and LastMouseY hold the cell of the previous pointer event
	// of the active drag.
	LastMouseX int
	LastMouseY int

	// GravityStopped is set once the tick loop has observed a stop request.
	GravityStopped bool
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// Options configures a new App.
type Options struct {
	Sliders         []config.SliderConfig
	Physics         slider.Physics
	Grid            layout.Grid
	SignedImaginary bool
	ShowHelp        bool

	// Width and Height seed the screen size before the first resize, for
	// sessions whose pty size is already known.
	Width  int
	Height int
}

// OptionsFromConfig builds Options from a loaded config and the runtime
// globals set by config.ApplyOverrides.
func OptionsFromConfig(cfg *config.UserConfig) Options {
	return Options{
		Sliders:         cfg.Sliders,
		Physics:         cfg.PhysicsParams(),
		Grid:            layout.Grid{CellW: config.CellWidth, CellH: config.CellHeight},
		SignedImaginary: config.SignedImaginary,
		ShowHelp:        config.ShowHelp,
	}
}

// sliderTop is the first row containers are placed on.
const sliderTop = 1

// New lays out the declared sliders, registers one widget per container and
// writes each widget's initial value.
func New(opts Options) *App {
	reg := slider.NewRegistry(
		slider.WithPhysics(opts.Physics),
		slider.WithSignedImaginary(opts.SignedImaginary),
	)
	a := &App{
		Registry: reg,
		Grid:     opts.Grid,
		ShowHelp: opts.ShowHelp,
		Width:    opts.Width,
		Height:   opts.Height,
	}

	for _, c := range layout.Discover(opts.Sliders, opts.Grid, sliderTop) {
		point := &slider.Point{X: c.Initial.Left, Y: c.Initial.Top}
		readout := &slider.Label{}
		w := slider.NewWidget(c.Label, slider.DeriveBounds(c.Initial), point, readout)
		reg.Register(w)
		reg.Refresh(w)
		a.Sliders = append(a.Sliders, &Slider{
			Container: c,
			Widget:    w,
			Point:     point,
			Readout:   readout,
		})
	}

	a.LogInfo("%d slider(s) ready, gravity every %s", len(a.Sliders), reg.Physics().Interval)
	return a
}

// FocusedSlider returns the slider keyboard input applies to, or nil.
func (a *App) FocusedSlider() *Slider {
	if a.Focused < 0 || a.Focused >= len(a.Sliders) {
		return nil
	}
	return a.Sliders[a.Focused]
}

// CycleFocus moves keyboard focus by delta, wrapping around.
func (a *App) CycleFocus(delta int) {
	n := len(a.Sliders)
	if n == 0 {
		return
	}
	a.Focused = ((a.Focused+delta)%n + n) % n
}

// SliderAt returns the index of the slider whose handle covers the cell
// (x, y), or -1.
func (a *App) SliderAt(x, y int) int {
	for i, s := range a.Sliders {
		hx, hy := s.Widget.Position()
		area := s.Container.HandleArea(hx, hy)
		if uv.Pos(x, y).In(area) {
			return i
		}
	}
	return -1
}

// StopGravity asks the tick loop to end after its next tick.
func (a *App) StopGravity() {
	if !a.Registry.Running() {
		return
	}
	a.Registry.Stop()
	a.LogWarn("gravity stop requested")
}

// Log adds a new log message to the log buffer.
func (a *App) Log(level, format string, args ...any) {
	a.LogMessages = append(a.LogMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
	if len(a.LogMessages) > config.MaxLogMessages {
		a.LogMessages = a.LogMessages[len(a.LogMessages)-config.MaxLogMessages:]
	}
	if a.ShowLogs {
		a.LogScrollOffset = a.maxLogScroll()
	}
}

// LogInfo logs an informational message.
func (a *App) LogInfo(format string, args ...any) {
	a.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (a *App) LogWarn(format string, args ...any) {
	a.Log("WARN", format, args...)
}

// LogError logs an error message.
func (a *App) LogError(format string, args ...any) {
	a.Log("ERROR", format, args...)
}

// ScrollLogs moves the log viewer by delta lines.
func (a *App) ScrollLogs(delta int) {
	a.LogScrollOffset = max(0, min(a.LogScrollOffset+delta, a.maxLogScroll()))
}

func (a *App) logsPerPage() int {
	// title, blank, blank, hint
	return max(max(a.Height-8, 8)-4, 1)
}

func (a *App) maxLogScroll() int {
	return max(len(a.LogMessages)-a.logsPerPage(), 0)
}
