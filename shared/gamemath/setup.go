package gamemath

// StatSetup is the player configuration chosen before a stage starts. Values
// are in stat units; BoostPercent scales every stat except defense.
type StatSetup struct {
	Jumping       float64 `json:"jumping"`
	Speed         float64 `json:"speed"`
	FireballRange float64 `json:"fireballRange"`
	Damage        float64 `json:"damage"`
	Health        float64 `json:"health"`
	Defense       float64 `json:"defense"`
	BoostPercent  float64 `json:"boostPercent"`
	Color         string  `json:"color"`
	JumpControl   bool    `json:"jumpControl"`
	SpeedControl  bool    `json:"speedControl"`
}

// PlayerStats are the in-game values derived from a StatSetup.
type PlayerStats struct {
	JumpHeight    float64 // pixels
	Speed         float64 // pixels per frame
	FireballRange float64 // pixels
	Damage        float64
	MaxHealth     float64
	Defense       float64

	// Upper bounds for runtime tuning, in stat units
	MaxJumpStat  float64
	MaxSpeedStat float64
}

// Boost returns the multiplier applied by BoostPercent.
func (s StatSetup) Boost() float64 {
	return 1 + s.BoostPercent/100
}

// Derive converts setup values into player stats for the given block size.
func (s StatSetup) Derive(block float64) PlayerStats {
	boost := s.Boost()
	return PlayerStats{
		JumpHeight:    JumpHeightFromStat(s.Jumping*boost, block),
		Speed:         SpeedFromStat(s.Speed*boost, block),
		FireballRange: s.FireballRange * block * boost,
		Damage:        s.Damage * boost,
		MaxHealth:     s.Health * boost,
		Defense:       s.Defense,
		MaxJumpStat:   s.Jumping * boost,
		MaxSpeedStat:  s.Speed * boost,
	}
}

// JumpHeightFromStat converts a jump stat to a jump height in pixels.
func JumpHeightFromStat(stat, block float64) float64 {
	return stat * block
}

// SpeedFromStat converts a speed stat (blocks per second) to pixels per frame.
func SpeedFromStat(stat, block float64) float64 {
	return stat * block / 60
}
