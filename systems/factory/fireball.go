package factory

import (
	"github.com/automoto/slimerun/archetypes"
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateFireball spawns a fireball centred on (x, y).
func CreateFireball(ecs *ecs.ECS, x, y, velX, velY, maxDistance float64) *donburi.Entry {
	fireball := archetypes.Fireball.Spawn(ecs)
	r := cfg.Fireball.Radius

	obj := resolv.NewObject(x-r, y-r, 2*r, 2*r, tags.ResolvFireball)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	obj.Data = fireball

	components.Object.SetValue(fireball, components.ObjectData{Object: obj})
	components.Fireball.SetValue(fireball, components.FireballData{
		Velocity:    math.NewVec2(velX, velY),
		MaxDistance: maxDistance,
		Radius:      r,
	})

	return fireball
}
