package factory

import (
	"github.com/automoto/slimerun/archetypes"
	"github.com/automoto/slimerun/components"
	"github.com/automoto/slimerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpike(ecs *ecs.ECS, x, y, w, h, damage float64) *donburi.Entry {
	spike := archetypes.Spike.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSpike)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = spike

	components.Object.SetValue(spike, components.ObjectData{Object: obj})
	components.Spike.SetValue(spike, components.SpikeData{Damage: damage})

	return spike
}
