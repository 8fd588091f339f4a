package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveWithoutBoost(t *testing.T) {
	setup := StatSetup{
		Jumping:       3,
		Speed:         6,
		FireballRange: 10,
		Damage:        20,
		Health:        100,
		Defense:       5,
	}

	stats := setup.Derive(20)

	assert.Equal(t, 60.0, stats.JumpHeight)
	assert.Equal(t, 2.0, stats.Speed)
	assert.Equal(t, 200.0, stats.FireballRange)
	assert.Equal(t, 20.0, stats.Damage)
	assert.Equal(t, 100.0, stats.MaxHealth)
	assert.Equal(t, 5.0, stats.Defense)
	assert.Equal(t, 3.0, stats.MaxJumpStat)
	assert.Equal(t, 6.0, stats.MaxSpeedStat)
}

func TestDeriveBoostSkipsDefense(t *testing.T) {
	setup := StatSetup{
		Jumping:       2,
		Speed:         6,
		FireballRange: 5,
		Damage:        10,
		Health:        100,
		Defense:       4,
		BoostPercent:  50,
	}

	stats := setup.Derive(20)

	assert.InDelta(t, 60.0, stats.JumpHeight, 1e-9)
	assert.InDelta(t, 3.0, stats.Speed, 1e-9)
	assert.InDelta(t, 150.0, stats.FireballRange, 1e-9)
	assert.InDelta(t, 15.0, stats.Damage, 1e-9)
	assert.InDelta(t, 150.0, stats.MaxHealth, 1e-9)
	assert.Equal(t, 4.0, stats.Defense)
	assert.InDelta(t, 9.0, stats.MaxSpeedStat, 1e-9)
}
