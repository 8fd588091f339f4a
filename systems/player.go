package systems

import (
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/systems/factory"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies horizontal movement, jumping and firing from input.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := GetOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	// Movement is direct, no inertia
	if input.Pressed(cfg.ActionMoveLeft) {
		obj.X -= player.Speed
	}
	if input.Pressed(cfg.ActionMoveRight) {
		obj.X += player.Speed
	}

	if input.Pressed(cfg.ActionJump) && physics.Grounded {
		physics.SpeedY = gamemath.JumpVelocity(physics.Gravity, player.JumpHeight)
		physics.Grounded = false
	}

	// One fireball per press
	if input.JustPressed(cfg.ActionFire) {
		shootFireball(e, obj, player, input)
	}
}

func shootFireball(e *ecs.ECS, obj *components.ObjectData, player *components.PlayerData, input *components.InputData) {
	startX := obj.X + obj.W/2
	startY := obj.Y + obj.H/2
	velX, velY, ok := gamemath.CalculateAimVelocity(startX, startY, input.MouseX, input.MouseY, cfg.Fireball.Speed)
	if !ok {
		return
	}
	factory.CreateFireball(e, startX, startY, velX, velY, player.FireballRange)
}
