package app

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/complexslider/complexslider/internal/config"
	"github.com/complexslider/complexslider/internal/theme"
)

// GetRenderWidth returns the canvas width, falling back to the width the
// containers need before the first WindowSizeMsg arrives.
func (a *App) GetRenderWidth() int {
	if a.Width > 0 {
		return a.Width
	}
	w := 0
	for _, s := range a.Sliders {
		w = max(w, s.Container.Outer.Max.X+config.ScreenMargin)
	}
	return max(w, config.LogViewerWidth)
}

// GetRenderHeight returns the canvas height.
func (a *App) GetRenderHeight() int {
	if a.Height > 0 {
		return a.Height
	}
	h := sliderTop
	if n := len(a.Sliders); n > 0 {
		h = a.Sliders[n-1].Container.Outer.Max.Y
	}
	if a.ShowHelp {
		h += config.HelpBarHeight + 1
	}
	return h
}

// GetCanvas composes every slider and overlay into one canvas.
func (a *App) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(a.GetRenderWidth(), a.GetRenderHeight())

	var layers []*lipgloss.Layer
	for i, s := range a.Sliders {
		layers = append(layers, a.renderSlider(s, i == a.Focused)...)
	}
	if a.ShowHelp {
		layers = append(layers, a.renderHelp())
	}
	if a.ShowLogs {
		layers = append(layers, a.renderLogViewer())
	}

	for _, layer := range layers {
		canvas.Compose(layer)
	}
	return canvas
}

// View renders the current frame.
func (a *App) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(a.GetCanvas().Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	return view
}

func (a *App) renderSlider(s *Slider, focused bool) []*lipgloss.Layer {
	c := s.Container
	id := string(s.Widget.ID)

	borderColor := theme.ContainerBorder()
	if focused {
		borderColor = theme.ContainerBorderFocused()
	}
	box := lipgloss.NewStyle().
		Border(config.GetBorder()).
		BorderForeground(borderColor).
		Width(c.Outer.Dx()).
		Height(c.Outer.Dy()).
		Render("")

	row, from, to := c.BarCells(s.Widget.Bounds)
	bar := lipgloss.NewStyle().
		Foreground(theme.Bar()).
		Render(strings.Repeat(config.GetBarGlyph(), to-from+1))

	hx, hy := s.Widget.Position()
	handleCell := c.Cell(hx, hy)
	handleColor := theme.Handle()
	if s.Widget.Dragging {
		handleColor = theme.HandleDragging()
	}
	handle := lipgloss.NewStyle().
		Foreground(handleColor).
		Bold(true).
		Render(config.GetHandleGlyph(s.Widget.Dragging))

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(box).X(c.Outer.Min.X).Y(c.Outer.Min.Y).Z(config.ZIndexContainer).ID(id + "-box"),
		lipgloss.NewLayer(bar).X(from).Y(row).Z(config.ZIndexBar).ID(id + "-bar"),
		lipgloss.NewLayer(handle).X(handleCell.X).Y(handleCell.Y).Z(config.ZIndexHandle).ID(id),
	}

	inner := c.Outer.Dx() - 4
	if s.Widget.Label != "" && inner > 0 {
		label := ansi.Truncate(" "+s.Widget.Label+" ", inner, "…")
		layers = append(layers, lipgloss.NewLayer(
			lipgloss.NewStyle().Foreground(theme.LabelText()).Render(label),
		).X(c.Outer.Min.X+2).Y(c.LabelRow()).Z(config.ZIndexText).ID(id+"-label"))
	}

	if text := s.Readout.String(); text != "" && inner > 0 {
		value := ansi.Truncate(" "+text+" ", inner, "…")
		x := c.Outer.Min.X + (c.Outer.Dx()-ansi.StringWidth(value))/2
		layers = append(layers, lipgloss.NewLayer(
			lipgloss.NewStyle().Foreground(theme.ValueText()).Bold(true).Render(value),
		).X(x).Y(c.ValueRow()).Z(config.ZIndexText).ID(id+"-value"))
	}

	return layers
}

func (a *App) renderHelp() *lipgloss.Layer {
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKey()).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.HelpText())

	var parts []string
	if a.GravityStopped {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.LogViewerWarn()).Render("gravity stopped"))
	}
	for _, kb := range config.HelpKeybindings() {
		parts = append(parts, keyStyle.Render(kb.Key)+" "+descStyle.Render(kb.Description))
	}

	line := ansi.Truncate(strings.Join(parts, descStyle.Render(" • ")), a.GetRenderWidth()-config.ScreenMargin, "…")
	return lipgloss.NewLayer(line).
		X(config.ScreenMargin).
		Y(a.GetRenderHeight() - config.HelpBarHeight).
		Z(config.ZIndexOverlay).
		ID("help")
}

func (a *App) renderLogViewer() *lipgloss.Layer {
	logTitle := lipgloss.NewStyle().
		Foreground(theme.LogViewerTitle()).
		Bold(true).
		Render("Logs")

	perPage := a.logsPerPage()
	a.LogScrollOffset = max(0, min(a.LogScrollOffset, a.maxLogScroll()))

	lines := []string{logTitle, ""}
	start := a.LogScrollOffset
	end := min(start+perPage, len(a.LogMessages))
	for _, msg := range a.LogMessages[start:end] {
		var levelColor color.Color
		switch msg.Level {
		case "ERROR":
			levelColor = theme.LogViewerError()
		case "WARN":
			levelColor = theme.LogViewerWarn()
		default:
			levelColor = theme.LogViewerInfo()
		}
		level := lipgloss.NewStyle().Foreground(levelColor).Render(fmt.Sprintf("[%s]", msg.Level))
		lines = append(lines, fmt.Sprintf("%s %s %s", msg.Time.Format("15:04:05"), level, msg.Message))
	}

	hint := "L to close"
	if a.maxLogScroll() > 0 {
		hint = fmt.Sprintf("%d-%d of %d, pgup/pgdown to scroll, L to close", start+1, end, len(a.LogMessages))
	}
	lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.HelpText()).Render(hint))

	logBox := lipgloss.NewStyle().
		Border(config.GetBorder()).
		BorderForeground(theme.LogViewerTitle()).
		Padding(0, 1).
		Width(min(config.LogViewerWidth, a.GetRenderWidth())).
		Background(theme.LogViewerBg()).
		Render(strings.Join(lines, "\n"))

	centered := lipgloss.Place(a.GetRenderWidth(), a.GetRenderHeight(),
		lipgloss.Center, lipgloss.Center, logBox)

	return lipgloss.NewLayer(centered).X(0).Y(0).Z(config.ZIndexOverlay).ID("logs")
}
