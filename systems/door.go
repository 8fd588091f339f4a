package systems

import (
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDoor completes the stage when the player stands in the door and holds
// the exit key.
func UpdateDoor(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	doorEntry, ok := tags.Door.First(e.World)
	if !ok {
		return
	}
	door := components.Door.Get(doorEntry)

	playerRect := components.Object.Get(playerEntry).Bounds()
	door.PlayerInside = gamemath.Overlaps(playerRect, components.Object.Get(doorEntry).Bounds())
	if !door.PlayerInside {
		return
	}

	if GetOrCreateInput(e).Pressed(cfg.ActionConfirmExit) {
		endStage(e, cfg.StateCompleted)
	}
}
