package systems

import (
	"github.com/automoto/slimerun/components"
	"github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player a third of the way across the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	camera.Position.X = gamemath.CameraX(playerObject.X, float64(config.C.Width))
	camera.Position.Y = 0
}
