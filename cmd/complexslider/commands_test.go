package main

import "testing"

func TestFormatValue(t *testing.T) {
	defaults := valueOptions{width: 400, height: 128, handleSize: 16}
	tests := []struct {
		name   string
		x, y   int
		opts   valueOptions
		signed bool
		want   string
	}{
		{"centre of the bar", 200, 64, defaults, false, "44%"},
		{"left end of the bar", 56, 64, defaults, false, "0%"},
		{"lifted", 200, 40, defaults, false, "44 + 24i %"},
		{"below the bar", 200, 80, defaults, false, "44 + -16i %"},
		{"below the bar signed", 200, 80, defaults, true, "44 - 16i %"},
		{"explicit offsets", 56, 30, valueOptions{width: 400, height: 128, handleSize: 16, top: 40, left: 100}, false, "0 + 10i %"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := formatValue(tt.x, tt.y, tt.opts, tt.signed)
			if got != tt.want {
				t.Errorf("formatValue(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFormatValueBounds(t *testing.T) {
	_, b := formatValue(0, 0, valueOptions{width: 400, height: 128, handleSize: 16}, false)
	if b.BarY != 64 || b.MaxY != 112 || b.MaxX != 400 || b.BarMinX != 56 || b.BarMaxX != 384 {
		t.Errorf("bounds = %+v", b)
	}
}
