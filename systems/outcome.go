package systems

import (
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOutcome fails the stage as soon as the player's health is gone.
func UpdateOutcome(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	if components.Health.Get(playerEntry).Current <= 0 {
		endStage(e, cfg.StateFailed)
	}
}
