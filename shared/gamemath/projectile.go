package gamemath

import "math"

// CalculateAimVelocity returns a velocity of the given speed pointing from
// (fromX, fromY) toward (toX, toY). ok is false when both points coincide.
func CalculateAimVelocity(fromX, fromY, toX, toY, speed float64) (velX, velY float64, ok bool) {
	dirX := toX - fromX
	dirY := toY - fromY
	dist := math.Hypot(dirX, dirY)
	if dist == 0 {
		return 0, 0, false
	}
	return dirX / dist * speed, dirY / dist * speed, true
}

// RangeExhausted reports whether a projectile has used up its range.
func RangeExhausted(traveled, maxDistance float64) bool {
	return traveled >= maxDistance
}
