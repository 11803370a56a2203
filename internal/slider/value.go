package slider

import (
	"math"
	"strconv"
)

// DisplayValue maps a handle position to the text shown above the slider.
//
// The real part interpolates x across the bar and is not clamped: positions
// left or right of the bar read below 0 or above 100. The imaginary part is
// the height above the bar. A negative imaginary part is printed as "+ -N".
func DisplayValue(b Bounds, x, y int) string {
	return formatValue(b, x, y, false)
}

// SignedDisplayValue is DisplayValue with the sign folded into the operator,
// so a handle below the bar reads "a - bi %".
func SignedDisplayValue(b Bounds, x, y int) string {
	return formatValue(b, x, y, true)
}

// Parts returns the rounded real and imaginary readings.
func Parts(b Bounds, x, y int) (re, im int) {
	span := b.BarMaxX - b.BarMinX
	if span != 0 {
		re = roundHalfUp(float64(x-b.BarMinX) * 100 / float64(span))
	}
	im = -(y - b.BarY)
	return re, im
}

func formatValue(b Bounds, x, y int, signed bool) string {
	re, im := Parts(b, x, y)
	if im == 0 {
		return strconv.Itoa(re) + "%"
	}
	op := " + "
	if signed && im < 0 {
		op = " - "
		im = -im
	}
	return strconv.Itoa(re) + op + strconv.Itoa(im) + "i %"
}

// roundHalfUp rounds halves toward positive infinity (2.5 -> 3, -2.5 -> -2).
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
