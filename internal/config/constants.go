// Package config provides configuration constants, keybindings, and user settings.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Gravity
// =============================================================================

const (
	// GravityTickInterval is the delay between the end of one gravity tick
	// and the start of the next.
	GravityTickInterval = 20 * time.Millisecond

	// GravityStep is how many units a released handle falls per tick.
	GravityStep = 5

	// SnapTolerance is the half-width of the window around the bar inside
	// which a falling handle snaps onto the bar.
	SnapTolerance = 5
)

// =============================================================================
// Geometry
// =============================================================================

const (
	// DefaultCellWidth is the number of units one terminal column spans.
	DefaultCellWidth = 8

	// DefaultCellHeight is the number of units one terminal row spans.
	DefaultCellHeight = 16

	// DefaultSliderWidth is the container width in units.
	DefaultSliderWidth = 400

	// DefaultSliderHeight is the container height in units.
	DefaultSliderHeight = 128

	// DefaultHandleSize is the handle height in units.
	DefaultHandleSize = 16

	// SliderSpacing is the number of blank rows between stacked sliders.
	SliderSpacing = 1

	// ScreenMargin is the number of columns left of every slider.
	ScreenMargin = 2
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// HelpBarHeight is the height of the key hint footer
	HelpBarHeight = 1

	// LogViewerWidth is the width of the log viewer overlay
	LogViewerWidth = 72

	// MaxLogMessages is the size of the in-app log ring buffer
	MaxLogMessages = 200

	// NormalFPS is the renderer frame rate
	NormalFPS = 60
)

// Z-indices for canvas layers.
const (
	ZIndexContainer = 0
	ZIndexBar       = 1
	ZIndexHandle    = 2
	ZIndexText      = 3
	ZIndexOverlay   = 10
)

// =============================================================================
// Glyphs
// =============================================================================

const (
	// HandleGlyph is drawn at the handle position.
	HandleGlyph = "●"

	// HandleGlyphDragging is drawn while the handle is held.
	HandleGlyphDragging = "◉"

	// BarGlyph fills the bar span.
	BarGlyph = "━"

	// HandleGlyphASCII is the ASCII fallback for HandleGlyph
	HandleGlyphASCII = "o"

	// HandleGlyphDraggingASCII is the ASCII fallback for HandleGlyphDragging
	HandleGlyphDraggingASCII = "O"

	// BarGlyphASCII is the ASCII fallback for BarGlyph
	BarGlyphASCII = "="
)

// =============================================================================
// Runtime Configuration
// =============================================================================

// UseASCIIOnly replaces box-drawing and circle glyphs with ASCII.
// Set via --ascii-only or appearance.ascii_only.
var UseASCIIOnly = false

// BorderStyle is the container border style.
var BorderStyle = "rounded"

// CellWidth and CellHeight convert terminal cells to units.
var (
	CellWidth  = DefaultCellWidth
	CellHeight = DefaultCellHeight
)

// ShowHelp controls the key hint footer.
var ShowHelp = true

// SignedImaginary prints negative imaginary parts as "a - bi %".
var SignedImaginary = false

// GetHandleGlyph returns the handle glyph honouring ASCII mode.
func GetHandleGlyph(dragging bool) string {
	switch {
	case UseASCIIOnly && dragging:
		return HandleGlyphDraggingASCII
	case UseASCIIOnly:
		return HandleGlyphASCII
	case dragging:
		return HandleGlyphDragging
	default:
		return HandleGlyph
	}
}

// GetBarGlyph returns the bar glyph honouring ASCII mode.
func GetBarGlyph() string {
	if UseASCIIOnly {
		return BarGlyphASCII
	}
	return BarGlyph
}

// GetBorder returns the lipgloss border for BorderStyle.
func GetBorder() lipgloss.Border {
	if UseASCIIOnly {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "ascii":
		return lipgloss.ASCIIBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// ValidBorderStyles lists the accepted border_style values.
var ValidBorderStyles = []string{"rounded", "normal", "thick", "double", "hidden", "block", "ascii"}
