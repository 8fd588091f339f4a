package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCameraX(t *testing.T) {
	assert.Zero(t, CameraX(50, 800))
	assert.InDelta(t, 100.0, CameraX(800.0/3+100, 800), 1e-9)
}

func TestProgressFraction(t *testing.T) {
	assert.InDelta(t, 0.5, ProgressFraction(367.5, 750, 15), 1e-9)
	assert.Equal(t, 1.0, ProgressFraction(2000, 750, 15))
	assert.Equal(t, 1.0, ProgressFraction(10, 10, 15))
}

func TestProgressFractionBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxX := rapid.Float64Range(0, 1e5).Draw(t, "maxX")
		doorX := rapid.Float64Range(-100, 1e5).Draw(t, "doorX")
		p := ProgressFraction(maxX, doorX, 15)
		if p < 0 || p > 1 {
			t.Fatalf("progress %v out of [0,1]", p)
		}
	})
}
