package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJumpApexMatchesJumpHeight(t *testing.T) {
	const (
		gravity = 0.15
		height  = 60.0
		groundY = 380.0
		size    = 15.0
	)

	y := groundY - size
	speedY := JumpVelocity(gravity, height)
	v0 := -speedY
	apex := y

	for i := 0; i < 1000; i++ {
		var grounded bool
		y, speedY = ApplyGravity(y, speedY, gravity)
		y, speedY, grounded = SnapToGround(y, size, speedY, groundY)
		if y < apex {
			apex = y
		}
		if grounded {
			break
		}
	}

	rise := groundY - size - apex
	assert.LessOrEqual(t, rise, height)
	assert.GreaterOrEqual(t, rise, height-v0)
}

func TestJumpVelocityZeroHeight(t *testing.T) {
	assert.Zero(t, JumpVelocity(0.15, 0))
}

func TestSnapToGround(t *testing.T) {
	y, dy, grounded := SnapToGround(370, 15, 3, 380)
	assert.True(t, grounded)
	assert.Equal(t, 365.0, y)
	assert.Zero(t, dy)

	y, dy, grounded = SnapToGround(100, 15, 3, 380)
	assert.False(t, grounded)
	assert.Equal(t, 100.0, y)
	assert.Equal(t, 3.0, dy)
}

func TestCalculateAimVelocity(t *testing.T) {
	vx, vy, ok := CalculateAimVelocity(0, 0, 3, 4, 6)
	assert.True(t, ok)
	assert.InDelta(t, 3.6, vx, 1e-9)
	assert.InDelta(t, 4.8, vy, 1e-9)

	_, _, ok = CalculateAimVelocity(10, 10, 10, 10, 6)
	assert.False(t, ok)
}
