package systems

import (
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateImmunity clears slime contact immunity once the window has elapsed.
// Runs before contact resolution so a hit exactly at the window edge lands.
func UpdateImmunity(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Immune && Now(e)-player.LastSlimeHit >= cfg.Player.ImmunityDuration {
		player.Immune = false
	}
}
