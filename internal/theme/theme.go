// Package theme maps bubbletint palettes onto the colors of the slider UI.
//
// When no theme is selected every accessor returns a fixed ANSI color so the
// slider follows the terminal's own palette.
package theme

import (
	"fmt"
	"image/color"
	"log"
	"slices"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// If themeName is empty, theming is disabled and terminal colors are used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	if !tint.SetTintID(themeName) {
		tint.SetTintID("default")
		return fmt.Errorf("unknown theme %q, using default", themeName)
	}
	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme, or nil when theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// IDs returns every registered theme ID, sorted, including custom themes.
func IDs() []string {
	tint.NewDefaultRegistry()
	if themesDir, err := GetThemesDir(); err == nil {
		_, _ = LoadCustomThemes(themesDir)
	}
	ids := slices.Clone(tint.TintIDs())
	slices.Sort(ids)
	return ids
}

// Lookup activates and returns the theme with the given ID without enabling
// theming for the UI. It returns false when no such theme exists.
func Lookup(id string) (*tint.Tint, bool) {
	tint.NewDefaultRegistry()
	if themesDir, err := GetThemesDir(); err == nil {
		_, _ = LoadCustomThemes(themesDir)
	}
	if !tint.SetTintID(id) {
		return nil, false
	}
	return tint.Current(), true
}

// Swatches returns the named colors of a theme in display order.
func Swatches(t *tint.Tint) []Swatch {
	return []Swatch{
		{"fg", t.Fg}, {"bg", t.Bg},
		{"black", t.Black}, {"red", t.Red}, {"green", t.Green}, {"yellow", t.Yellow},
		{"blue", t.Blue}, {"purple", t.Purple}, {"cyan", t.Cyan}, {"white", t.White},
	}
}

// Swatch is a named theme color.
type Swatch struct {
	Name  string
	Color *tint.Color
}

// ContainerBorder returns the border color of an unfocused slider container.
func ContainerBorder() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("8")
	}
	return t.BrightBlack
}

// ContainerBorderFocused returns the border color of the keyboard-focused container.
func ContainerBorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("14")
	}
	return t.BrightCyan
}

// Bar returns the color of the bar glyphs.
func Bar() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("12")
	}
	return t.Blue
}

// Handle returns the color of a resting or falling handle.
func Handle() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("11")
	}
	return t.Yellow
}

// HandleDragging returns the color of a handle held by the pointer.
func HandleDragging() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("13")
	}
	return t.BrightPurple
}

// ValueText returns the color of the value readout.
func ValueText() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("15")
	}
	return t.Fg
}

// LabelText returns the color of container labels.
func LabelText() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("6")
	}
	return t.Cyan
}

// HelpKey returns the color for key names in the help footer.
func HelpKey() color.Color {
	return lipgloss.Color("5")
}

// HelpText returns the color for descriptions in the help footer.
func HelpText() color.Color {
	return lipgloss.Color("8")
}

// LogViewerTitle returns the color for log viewer titles.
func LogViewerTitle() color.Color {
	return lipgloss.Color("14")
}

// LogViewerError returns the color for error messages in the log viewer.
func LogViewerError() color.Color {
	return lipgloss.Color("9")
}

// LogViewerWarn returns the color for warning messages in the log viewer.
func LogViewerWarn() color.Color {
	return lipgloss.Color("11")
}

// LogViewerInfo returns the color for info messages in the log viewer.
func LogViewerInfo() color.Color {
	return lipgloss.Color("10")
}

// LogViewerBg returns the background color for the log viewer.
func LogViewerBg() color.Color {
	return lipgloss.Color("#1a1a2a")
}

// CLITableHeader returns the color for CLI table headers.
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

// CLITableKey returns the color for CLI table keys.
func CLITableKey() color.Color {
	return lipgloss.Color("11")
}

// CLITableDim returns the dimmed color for CLI table elements.
func CLITableDim() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string.
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
