package render

import "math"

// CellAspect compensates for terminal cells being roughly twice as
// tall as they are wide; x distances are stretched by this factor so
// the dial reads as a circle
const CellAspect = 2.0

// HandAngle converts a dial value to degrees with 12 o'clock at -90
func HandAngle(value, max float64) float64 {
	return value/max*360 - 90
}

// PolarCell converts a dial angle (degrees) and radius (rows) to cell
// coordinates around the given center
func PolarCell(cx, cy int, radius, angleDeg float64) (int, int) {
	rad := angleDeg * math.Pi / 180
	x := float64(cx) + radius*CellAspect*math.Cos(rad)
	y := float64(cy) + radius*math.Sin(rad)
	return int(math.Round(x)), int(math.Round(y))
}

// HandFractions decomposes a display instant into smooth hand values:
// the minute value carries the second fraction and the hour value the
// minute fraction, so hands sweep instead of stepping
func HandFractions(hour, minute, second, nano int) (h, m, s float64) {
	s = float64(second) + float64(nano)/1e9
	m = float64(minute) + s/60
	h = float64(hour%12) + m/60
	return h, m, s
}
