// Package layout places slider containers on the terminal grid and reports
// the initial handle geometry of each one.
//
// Containers are measured in units and drawn in cells; one cell spans
// cellW x cellH units. Every conversion between the two lives here.
package layout

import (
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/complexslider/complexslider/internal/config"
	"github.com/complexslider/complexslider/internal/slider"
)

// Container is one slider box after placement.
type Container struct {
	Label string

	// Outer is the box including its border, in cells.
	Outer uv.Rectangle
	// Content is the area inside the border, in cells. Unit (0, 0) maps to
	// Content.Min.
	Content uv.Rectangle

	// Initial is the handle geometry reported to the slider registry.
	Initial slider.Initial

	cellW, cellH int
}

// Grid converts between units and cells.
type Grid struct {
	CellW, CellH int
}

// Discover lays out one container per declared slider, stacked vertically
// starting at row top.
func Discover(sliders []config.SliderConfig, g Grid, top int) []*Container {
	g = g.normalized()
	out := make([]*Container, 0, len(sliders))
	y := top
	for _, s := range sliders {
		cols := ceilDiv(s.Width, g.CellW)
		rows := ceilDiv(s.Height, g.CellH)
		outer := uv.Rect(config.ScreenMargin, y, cols+2, rows+2)
		out = append(out, &Container{
			Label:   s.Label,
			Outer:   outer,
			Content: uv.Rect(outer.Min.X+1, outer.Min.Y+1, cols, rows),
			Initial: config.SliderInitial(s),
			cellW:   g.CellW,
			cellH:   g.CellH,
		})
		y += outer.Dy() + config.SliderSpacing
	}
	return out
}

// Height returns the number of rows the containers occupy below top.
func Height(containers []*Container, top int) int {
	if len(containers) == 0 {
		return 0
	}
	return containers[len(containers)-1].Outer.Max.Y - top
}

// Cell maps a unit position inside the container to an absolute cell,
// clamped to the content area.
func (c *Container) Cell(x, y int) uv.Position {
	col := clampInt(c.Content.Min.X+floorDiv(x, c.cellW), c.Content.Min.X, c.Content.Max.X-1)
	row := clampInt(c.Content.Min.Y+floorDiv(y, c.cellH), c.Content.Min.Y, c.Content.Max.Y-1)
	return uv.Pos(col, row)
}

// BarCells returns the absolute cell row of the bar and the column span
// [from, to] that covers the bar's units.
func (c *Container) BarCells(b slider.Bounds) (row, from, to int) {
	start := c.Cell(b.BarMinX, b.BarY)
	end := c.Cell(b.BarMaxX, b.BarY)
	return start.Y, start.X, end.X
}

// HandleArea returns the clickable cells of a handle whose top-left unit
// position is (x, y). It is one column wider on each side than the glyph
// and covers every row the handle's height touches.
func (c *Container) HandleArea(x, y int) uv.Rectangle {
	p := c.Cell(x, y)
	rows := ceilDiv(c.Initial.HandleHeight, c.cellH)
	if rows < 1 {
		rows = 1
	}
	return uv.Rect(p.X-1, p.Y, 3, rows)
}

// UnitsForCells converts a pointer delta in cells to units.
func (c *Container) UnitsForCells(dx, dy int) (int, int) {
	return Grid{CellW: c.cellW, CellH: c.cellH}.Units(dx, dy)
}

// Units converts a delta in cells to units.
func (g Grid) Units(dx, dy int) (int, int) {
	g = g.normalized()
	return dx * g.CellW, dy * g.CellH
}

// LabelRow is the top border row, where the label is drawn.
func (c *Container) LabelRow() int {
	return c.Outer.Min.Y
}

// ValueRow is the bottom border row, where the value readout is centred.
func (c *Container) ValueRow() int {
	return c.Outer.Max.Y - 1
}

func (g Grid) normalized() Grid {
	if g.CellW <= 0 {
		g.CellW = config.DefaultCellWidth
	}
	if g.CellH <= 0 {
		g.CellH = config.DefaultCellHeight
	}
	return g
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// floorDiv rounds toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
