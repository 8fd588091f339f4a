package config

import (
	"image/color"
	"time"

	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer; everything is drawn in one pass.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Block  float64 // size of one level block in pixels
	TPS    int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Size    float64
	Gravity float64

	// Combat
	ImmunityDuration  time.Duration // no slime contact damage inside this window
	KnockbackDistance float64
	HitFlashDuration  time.Duration

	// Runtime tuning slider bounds (in stat units)
	JumpStatMin  float64
	SpeedStatMin float64
	TuningSteps  int
}

// SlimeConfig contains slime batch configuration
type SlimeConfig struct {
	Size        float64
	PatrolSpeed float64
	PatrolRange float64
	Colors      []string
}

// SpikeConfig contains spike hazard configuration
type SpikeConfig struct {
	DamageInterval time.Duration
}

// FireballConfig contains fireball projectile configuration
type FireballConfig struct {
	Speed  float64
	Radius float64
}

// UIConfig contains HUD layout and colors
type UIConfig struct {
	BarWidth    float64
	BarHeight   float64
	BarMargin   float64
	PanelWidth  float64
	PanelHeight float64

	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	SpikeColor      color.RGBA
	DoorColor       color.RGBA
	DoorbellColor   color.RGBA
	FireballColor   color.RGBA
	HealthBarColor  color.RGBA
	BarBgColor      color.RGBA
	PanelColor      color.RGBA
	FlashColor      color.RGBA

	// SlimeColors maps slime and player color names to fill colors
	SlimeColors map[string]color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Slime SlimeConfig
var Spike SpikeConfig
var Fireball FireballConfig

// Setup holds the stat values used when no setup was given or saved
var Setup gamemath.StatSetup
var UI UIConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	Blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Purple = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	Pink   = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	Gray   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Brown  = color.RGBA{R: 165, G: 42, B: 42, A: 255}
)

// Direction constants for slime patrol
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 400,
		Block:  20,
		TPS:    60,
	}

	Player = PlayerConfig{
		Size:    15,
		Gravity: 0.15,

		ImmunityDuration:  1000 * time.Millisecond,
		KnockbackDistance: 2 * C.Block,
		HitFlashDuration:  300 * time.Millisecond,

		JumpStatMin:  1.5,
		SpeedStatMin: 4,
		TuningSteps:  20,
	}

	Slime = SlimeConfig{
		Size:        15,
		PatrolSpeed: 0.33,
		PatrolRange: 4 * C.Block,
		Colors:      gamemath.SlimeColors,
	}

	Spike = SpikeConfig{
		DamageInterval: 100 * time.Millisecond,
	}

	Fireball = FireballConfig{
		Speed:  6,
		Radius: 4,
	}

	Setup = gamemath.StatSetup{
		Jumping:       3,
		Speed:         6,
		FireballRange: 10,
		Damage:        20,
		Health:        100,
		Defense:       0,
		Color:         "blue",
	}

	UI = UIConfig{
		BarWidth:    200,
		BarHeight:   18,
		BarMargin:   10,
		PanelWidth:  210,
		PanelHeight: 140,

		BackgroundColor: color.RGBA{R: 135, G: 206, B: 235, A: 255},
		GroundColor:     Green,
		SpikeColor:      Gray,
		DoorColor:       Brown,
		DoorbellColor:   Yellow,
		FireballColor:   Orange,
		HealthBarColor:  color.RGBA{R: 63, G: 191, B: 63, A: 255},
		BarBgColor:      Black,
		PanelColor:      color.RGBA{R: 0, G: 0, B: 0, A: 178},
		FlashColor:      Red,

		SlimeColors: map[string]color.RGBA{
			"red":    Red,
			"orange": Orange,
			"yellow": Yellow,
			"green":  Green,
			"blue":   Blue,
			"purple": Purple,
			"pink":   Pink,
		},
	}
}
