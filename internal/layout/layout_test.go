package layout

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/complexslider/complexslider/internal/config"
	"github.com/complexslider/complexslider/internal/slider"
)

func defaultSliders() []config.SliderConfig {
	return config.DefaultConfig().Sliders
}

func TestDiscoverStacksContainers(t *testing.T) {
	cs := Discover(defaultSliders(), Grid{CellW: 8, CellH: 16}, 1)
	if len(cs) != 2 {
		t.Fatalf("containers = %d, want 2", len(cs))
	}

	tests := []struct {
		name string
		got  uv.Rectangle
		want uv.Rectangle
	}{
		{"first outer", cs[0].Outer, uv.Rect(config.ScreenMargin, 1, 52, 10)},
		{"first content", cs[0].Content, uv.Rect(config.ScreenMargin+1, 2, 50, 8)},
		{"second outer", cs[1].Outer, uv.Rect(config.ScreenMargin, 12, 52, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := Height(cs, 1); got != 21 {
		t.Errorf("Height = %d, want 21", got)
	}
	if cs[0].Label != "z₁" {
		t.Errorf("label = %q", cs[0].Label)
	}
	want := slider.Initial{Top: 64, Left: 200, HandleHeight: 16}
	if cs[1].Initial != want {
		t.Errorf("Initial = %+v, want %+v", cs[1].Initial, want)
	}
}

func TestDiscoverRoundsPartialCellsUp(t *testing.T) {
	cs := Discover([]config.SliderConfig{{Width: 401, Height: 130, HandleSize: 16}}, Grid{CellW: 8, CellH: 16}, 0)
	if cs[0].Content.Dx() != 51 || cs[0].Content.Dy() != 9 {
		t.Errorf("content = %dx%d, want 51x9", cs[0].Content.Dx(), cs[0].Content.Dy())
	}
}

func TestDiscoverDefaultsGrid(t *testing.T) {
	cs := Discover(defaultSliders(), Grid{}, 0)
	if cs[0].Content.Dx() != 50 {
		t.Errorf("zero grid should fall back to default cell size, got width %d", cs[0].Content.Dx())
	}
	if Height(nil, 0) != 0 {
		t.Error("no containers occupy no rows")
	}
}

func TestCell(t *testing.T) {
	c := Discover(defaultSliders(), Grid{CellW: 8, CellH: 16}, 0)[0]
	origin := c.Content.Min

	tests := []struct {
		name string
		x, y int
		want uv.Position
	}{
		{"origin", 0, 0, origin},
		{"inside first cell", 7, 15, origin},
		{"bar rest", 200, 64, uv.Pos(origin.X+25, origin.Y+4)},
		{"floor", 200, 112, uv.Pos(origin.X+25, origin.Y+7)},
		{"right edge clamps inside", 400, 0, uv.Pos(c.Content.Max.X-1, origin.Y)},
		{"negative clamps inside", -3, -1, origin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Cell(tt.x, tt.y); got != tt.want {
				t.Errorf("Cell(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBarCells(t *testing.T) {
	c := Discover(defaultSliders(), Grid{CellW: 8, CellH: 16}, 0)[0]
	row, from, to := c.BarCells(slider.DeriveBounds(c.Initial))
	if row != c.Content.Min.Y+4 {
		t.Errorf("row = %d", row)
	}
	if from != c.Content.Min.X+7 || to != c.Content.Min.X+48 {
		t.Errorf("span = [%d, %d], want [%d, %d]", from, to, c.Content.Min.X+7, c.Content.Min.X+48)
	}
}

func TestHandleArea(t *testing.T) {
	c := Discover(defaultSliders(), Grid{CellW: 8, CellH: 16}, 0)[0]
	area := c.HandleArea(200, 64)
	glyph := c.Cell(200, 64)

	for _, tt := range []struct {
		p    uv.Position
		want bool
	}{
		{glyph, true},
		{uv.Pos(glyph.X-1, glyph.Y), true},
		{uv.Pos(glyph.X+1, glyph.Y), true},
		{uv.Pos(glyph.X+2, glyph.Y), false},
		{uv.Pos(glyph.X, glyph.Y+1), false},
	} {
		if got := tt.p.In(area); got != tt.want {
			t.Errorf("%v in handle area = %v, want %v", tt.p, got, tt.want)
		}
	}

	tall := Discover([]config.SliderConfig{{Width: 400, Height: 128, HandleSize: 40}}, Grid{CellW: 8, CellH: 16}, 0)[0]
	if got := tall.HandleArea(0, 0).Dy(); got != 3 {
		t.Errorf("40-unit handle should cover 3 rows, got %d", got)
	}
}

func TestUnitsForCells(t *testing.T) {
	c := Discover(defaultSliders(), Grid{CellW: 10, CellH: 20}, 0)[0]
	dx, dy := c.UnitsForCells(2, -1)
	if dx != 20 || dy != -20 {
		t.Errorf("UnitsForCells(2, -1) = (%d, %d), want (20, -20)", dx, dy)
	}
}

func TestBorderRows(t *testing.T) {
	c := Discover(defaultSliders(), Grid{CellW: 8, CellH: 16}, 3)[0]
	if c.LabelRow() != 3 || c.ValueRow() != 12 {
		t.Errorf("label row %d, value row %d, want 3 and 12", c.LabelRow(), c.ValueRow())
	}
}
