package archetypes

import (
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
	)
	Slime = newArchetype(
		tags.Slime,
		components.Slime,
		components.Object,
		components.Health,
	)
	Spike = newArchetype(
		tags.Spike,
		components.Spike,
		components.Object,
	)
	Fireball = newArchetype(
		tags.Fireball,
		components.Fireball,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Object,
	)
	Stage = newArchetype(
		components.Stage,
		components.Progress,
		components.Outcome,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
