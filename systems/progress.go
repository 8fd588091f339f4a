package systems

import (
	"math"

	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgress tracks the farthest x the player has reached relative to the door.
// Backtracking never lowers the fraction.
func UpdateProgress(e *ecs.ECS) {
	progressEntry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	doorEntry, ok := tags.Door.First(e.World)
	if !ok {
		return
	}
	progress := components.Progress.Get(progressEntry)

	progress.MaxX = math.Max(progress.MaxX, components.Object.Get(playerEntry).X)
	fraction := gamemath.ProgressFraction(progress.MaxX, components.Object.Get(doorEntry).X, cfg.Player.Size)
	progress.Fraction = math.Max(progress.Fraction, fraction)
}
