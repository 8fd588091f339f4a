package gamemath

import "math"

// SlimeColors is the fixed color ordering. A slime's color index selects its
// stat multiplier tier.
var SlimeColors = []string{"red", "orange", "yellow", "green", "blue", "purple", "pink"}

// ColorIndex returns the tier of a slime color.
func ColorIndex(color string) (int, bool) {
	for i, c := range SlimeColors {
		if c == color {
			return i, true
		}
	}
	return -1, false
}

// SlimeStats holds the generated combat values of one slime.
type SlimeStats struct {
	Health  int
	Damage  int
	Defense int
	XP      int
}

// GenerateSlimeStats applies every stage/color formula at once.
func GenerateSlimeStats(stage, colorIndex int) SlimeStats {
	return SlimeStats{
		Health:  SlimeHealth(stage, colorIndex),
		Damage:  SlimeDamage(stage, colorIndex),
		Defense: SlimeDefense(stage, colorIndex),
		XP:      SlimeXP(stage, colorIndex),
	}
}

// SlimeHealth is 50 * stage * 2^colorIndex.
func SlimeHealth(stage, colorIndex int) int {
	return 50 * stage * (1 << colorIndex)
}

// SlimeDamage is 10 * stage * 2^colorIndex.
func SlimeDamage(stage, colorIndex int) int {
	return 10 * stage * (1 << colorIndex)
}

// SlimeDefense is zero before stage 11 and floor((2*stage-20)^1.2 * 1.5^colorIndex) after.
func SlimeDefense(stage, colorIndex int) int {
	if stage < 11 {
		return 0
	}
	return int(math.Floor(math.Pow(float64(2*stage-20), 1.2) * math.Pow(1.5, float64(colorIndex))))
}

// SlimeXP is floor(4 * stage * 2.5^colorIndex).
func SlimeXP(stage, colorIndex int) int {
	return int(math.Floor(float64(4*stage) * math.Pow(2.5, float64(colorIndex))))
}

// StageBonusXP is the reward for reaching the door: floor(5 * stage * stage^1.4).
func StageBonusXP(stage int) int {
	return int(math.Floor(float64(5*stage) * math.Pow(float64(stage), 1.4)))
}

// SpikeDamage is floor(stage^(1.008^stage)).
func SpikeDamage(stage int) int {
	s := float64(stage)
	return int(math.Floor(math.Pow(s, math.Pow(1.008, s))))
}

// Mitigate subtracts defense from an attack. The result is never negative.
func Mitigate(attack, defense float64) float64 {
	return math.Max(0, attack-defense)
}
