package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/complexslider/complexslider/internal/config"
	"github.com/complexslider/complexslider/internal/layout"
	"github.com/complexslider/complexslider/internal/slider"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return New(Options{
		Sliders:  config.DefaultConfig().Sliders,
		Physics:  slider.DefaultPhysics(),
		Grid:     layout.Grid{CellW: 8, CellH: 16},
		ShowHelp: true,
	})
}

func plainView(a *App) string {
	return ansi.Strip(lipgloss.Sprint(a.GetCanvas().Render()))
}

func TestNewRegistersSliders(t *testing.T) {
	a := newTestApp(t)

	if len(a.Sliders) != 2 || len(a.Registry.Widgets()) != 2 {
		t.Fatalf("sliders = %d, widgets = %d, want 2", len(a.Sliders), len(a.Registry.Widgets()))
	}
	for i, s := range a.Sliders {
		if got := s.Readout.String(); got != "44%" {
			t.Errorf("slider %d readout = %q, want 44%%", i, got)
		}
		if x, y := s.Widget.Position(); x != 200 || y != 64 {
			t.Errorf("slider %d at (%d, %d), want (200, 64)", i, x, y)
		}
	}
	if len(a.LogMessages) == 0 {
		t.Error("startup should be logged")
	}
}

func TestGravityTick(t *testing.T) {
	a := newTestApp(t)
	s := a.Sliders[0]
	s.Point.SetPosition(200, 20)

	_, cmd := a.Update(GravityTickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should re-arm while gravity runs")
	}
	if _, y := s.Widget.Position(); y != 25 {
		t.Errorf("y = %d after one tick, want 25", y)
	}
	if got := s.Readout.String(); got != "44 + 39i %" {
		t.Errorf("readout = %q, want %q", got, "44 + 39i %")
	}
}

func TestGravityTickStops(t *testing.T) {
	a := newTestApp(t)
	s := a.Sliders[1]
	s.Point.SetPosition(200, 0)

	a.StopGravity()
	_, cmd := a.Update(GravityTickMsg(time.Now()))
	if cmd != nil {
		t.Error("no tick should be scheduled after stop")
	}
	if _, y := s.Widget.Position(); y != 5 {
		t.Errorf("the tick that observes stop still relaxes, y = %d, want 5", y)
	}
	if !a.GravityStopped {
		t.Error("GravityStopped not set")
	}
	if !strings.Contains(plainView(a), "gravity stopped") {
		t.Error("help footer should report stopped gravity")
	}
}

func TestInitSchedulesTick(t *testing.T) {
	if newTestApp(t).Init() == nil {
		t.Error("Init should schedule the first gravity tick")
	}
}

func TestWindowSize(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if a.GetRenderWidth() != 100 || a.GetRenderHeight() != 40 {
		t.Errorf("render size = %dx%d, want 100x40", a.GetRenderWidth(), a.GetRenderHeight())
	}
}

func TestUpdateDelegatesInput(t *testing.T) {
	t.Cleanup(func() { SetInputHandler(nil) })

	var got tea.Msg
	SetInputHandler(func(msg tea.Msg, a *App) (tea.Model, tea.Cmd) {
		got = msg
		return a, nil
	})

	a := newTestApp(t)
	key := tea.KeyPressMsg{Code: 'q', Text: "q"}
	a.Update(key)
	if _, ok := got.(tea.KeyPressMsg); !ok {
		t.Errorf("handler got %T, want the key press", got)
	}
}

func TestCycleFocus(t *testing.T) {
	a := newTestApp(t)
	tests := []struct {
		delta int
		want  int
	}{
		{1, 1},
		{1, 0},
		{-1, 1},
		{-3, 0},
	}
	for _, tt := range tests {
		a.CycleFocus(tt.delta)
		if a.Focused != tt.want {
			t.Errorf("CycleFocus(%d) -> %d, want %d", tt.delta, a.Focused, tt.want)
		}
	}
}

func TestSliderAt(t *testing.T) {
	a := newTestApp(t)
	for i, s := range a.Sliders {
		p := s.Container.Cell(s.Widget.Position())
		if got := a.SliderAt(p.X, p.Y); got != i {
			t.Errorf("SliderAt(handle %d) = %d", i, got)
		}
	}
	if got := a.SliderAt(0, 0); got != -1 {
		t.Errorf("SliderAt(0, 0) = %d, want -1", got)
	}
}

func TestViewShowsSliders(t *testing.T) {
	a := newTestApp(t)
	out := plainView(a)

	for _, want := range []string{"z₁", "z₂", "44%", config.HandleGlyph, config.BarGlyph, "Stop gravity"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	a.Sliders[0].Widget.Dragging = true
	if !strings.Contains(plainView(a), config.HandleGlyphDragging) {
		t.Error("dragged handle should use the dragging glyph")
	}
}

func TestViewHandleOnBarRow(t *testing.T) {
	a := newTestApp(t)
	a.ShowHelp = false
	s := a.Sliders[0]
	row, _, _ := s.Container.BarCells(s.Widget.Bounds)

	lines := strings.Split(plainView(a), "\n")
	if row >= len(lines) {
		t.Fatalf("bar row %d outside %d rendered lines", row, len(lines))
	}
	if !strings.Contains(lines[row], config.HandleGlyph) {
		t.Errorf("handle resting on the bar should render on row %d: %q", row, lines[row])
	}
}

func TestLogRingBuffer(t *testing.T) {
	a := newTestApp(t)
	for i := range config.MaxLogMessages + 10 {
		a.LogInfo("message %d", i)
	}
	if len(a.LogMessages) != config.MaxLogMessages {
		t.Fatalf("log buffer = %d, want %d", len(a.LogMessages), config.MaxLogMessages)
	}
	last := a.LogMessages[len(a.LogMessages)-1].Message
	if last != "message 209" {
		t.Errorf("last message = %q", last)
	}
}

func TestLogViewerScroll(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	for i := range 30 {
		a.LogWarn("w%d", i)
	}
	a.ShowLogs = true
	a.ScrollLogs(1000)
	if a.LogScrollOffset != a.maxLogScroll() {
		t.Errorf("offset = %d, want clamp to %d", a.LogScrollOffset, a.maxLogScroll())
	}
	a.ScrollLogs(-1000)
	if a.LogScrollOffset != 0 {
		t.Errorf("offset = %d, want 0", a.LogScrollOffset)
	}
	if !strings.Contains(plainView(a), "Logs") {
		t.Error("log viewer not rendered")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	t.Cleanup(func() {
		config.CellWidth, config.CellHeight = config.DefaultCellWidth, config.DefaultCellHeight
		config.ShowHelp = true
		config.SignedImaginary = false
	})

	cfg := config.DefaultConfig()
	cfg.Physics.GravityStep = 7
	config.ApplyOverrides(config.Overrides{CellWidth: 4, NoHelp: true, SignedImaginary: true}, cfg)

	opts := OptionsFromConfig(cfg)
	if opts.Grid.CellW != 4 || opts.Grid.CellH != config.DefaultCellHeight {
		t.Errorf("grid = %+v, want 4x%d", opts.Grid, config.DefaultCellHeight)
	}
	if opts.Physics.Step != 7 {
		t.Errorf("physics step = %d, want 7", opts.Physics.Step)
	}
	if opts.ShowHelp || !opts.SignedImaginary {
		t.Errorf("ShowHelp = %v, SignedImaginary = %v", opts.ShowHelp, opts.SignedImaginary)
	}
	if len(opts.Sliders) != len(cfg.Sliders) {
		t.Errorf("sliders = %d, want %d", len(opts.Sliders), len(cfg.Sliders))
	}
}
