package gamemath

import "math"

// JumpVelocity returns the upward launch speed whose apex sits jumpHeight above
// the take-off point under the given gravity.
func JumpVelocity(gravity, jumpHeight float64) float64 {
	if jumpHeight <= 0 || gravity <= 0 {
		return 0
	}
	return -math.Sqrt(2 * gravity * jumpHeight)
}

// ApplyGravity integrates one frame of vertical motion: velocity first, then position.
func ApplyGravity(y, speedY, gravity float64) (newY, newSpeedY float64) {
	newSpeedY = speedY + gravity
	return y + newSpeedY, newSpeedY
}

// SnapToGround clamps an object of height h onto groundY. grounded reports whether
// the object touched the ground this frame.
func SnapToGround(y, h, speedY, groundY float64) (newY, newSpeedY float64, grounded bool) {
	if y+h >= groundY {
		return groundY - h, 0, true
	}
	return y, speedY, false
}

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
