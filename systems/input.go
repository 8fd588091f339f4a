package systems

import (
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/yohamta/donburi/ecs"
)

// ApplyInput stores this frame's input snapshot. The mouse is converted to level
// coordinates with the camera offset of the previous frame.
// Must run BEFORE UpdatePlayer.
func ApplyInput(e *ecs.ECS, snap components.InputSnapshot) {
	input := GetOrCreateInput(e)

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = snap.Actions

	var cameraX float64
	if camEntry, ok := components.Camera.First(e.World); ok {
		cameraX = components.Camera.Get(camEntry).Position.X
	}
	input.MouseX = snap.MouseX + cameraX
	input.MouseY = snap.MouseY
	input.Clicked = snap.Click
}

// ClearInput releases every action, e.g. when the window loses focus.
func ClearInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Clicked = false
}
