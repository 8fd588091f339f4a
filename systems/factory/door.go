package factory

import (
	"github.com/automoto/slimerun/archetypes"
	"github.com/automoto/slimerun/components"
	"github.com/automoto/slimerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDoor creates the stage exit
func CreateDoor(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvDoor)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = door

	components.Object.SetValue(door, components.ObjectData{Object: obj})
	components.Door.SetValue(door, components.DoorData{})

	return door
}
