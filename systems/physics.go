package systems

import (
	"github.com/automoto/slimerun/components"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity for every entity with a Physics component and
// rests it on the stage ground line.
func UpdatePhysics(e *ecs.ECS) {
	stage := GetStage(e)
	if stage == nil || stage.Layout == nil {
		return
	}
	groundY := stage.Layout.GroundY

	for entry := range components.Physics.Iter(e.World) {
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		obj.Y, physics.SpeedY = gamemath.ApplyGravity(obj.Y, physics.SpeedY, physics.Gravity)
		var grounded bool
		obj.Y, physics.SpeedY, grounded = gamemath.SnapToGround(obj.Y, obj.H, physics.SpeedY, groundY)
		if grounded {
			physics.Grounded = true
		}
	}
}
