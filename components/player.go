package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Color string

	// Derived stats, per frame where applicable
	Speed         float64
	JumpHeight    float64
	FireballRange float64
	Damage        float64
	Defense       float64

	// Slime contact immunity
	Immune       bool
	LastSlimeHit time.Duration

	// Any damage taken; drives the red hit flash
	HitTime time.Duration
	WasHit  bool

	// Spike cooldown is shared by every spike
	LastSpikeHit time.Duration
	HasSpikeHit  bool

	// Runtime tuning bounds (stat units) and whether tuning is allowed
	MaxJumpStat  float64
	MaxSpeedStat float64
	JumpControl  bool
	SpeedControl bool
}

var Player = donburi.NewComponentType[PlayerData]()
