package gamemath

import "math"

// CameraX keeps the followed x one third from the left edge of the viewport and
// never scrolls left of the level origin.
func CameraX(playerX, viewportWidth float64) float64 {
	return math.Max(0, playerX-viewportWidth/3)
}

// ProgressFraction maps the farthest x reached onto [0, 1] relative to the door.
func ProgressFraction(maxX, doorX, playerSize float64) float64 {
	span := doorX - playerSize
	if span <= 0 {
		return 1
	}
	return math.Max(0, math.Min(maxX/span, 1))
}
