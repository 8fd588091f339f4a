package factory

import (
	"fmt"

	"github.com/automoto/slimerun/archetypes"
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSlime spawns a slime resting on groundY with stats generated from the
// stage number and its color tier.
func CreateSlime(ecs *ecs.ECS, x, groundY float64, stage int, color string) (*donburi.Entry, error) {
	colorIndex, ok := gamemath.ColorIndex(color)
	if !ok {
		return nil, fmt.Errorf("create slime: unknown color %q", color)
	}
	stats := gamemath.GenerateSlimeStats(stage, colorIndex)

	slime := archetypes.Slime.Spawn(ecs)
	size := cfg.Slime.Size

	obj := resolv.NewObject(x, groundY-size, size, size, tags.ResolvSlime)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = slime
	components.Object.SetValue(slime, components.ObjectData{Object: obj})

	components.Slime.SetValue(slime, components.SlimeData{
		Color:     color,
		OriginalX: x,
		Direction: cfg.DirectionRight,
		Damage:    float64(stats.Damage),
		Defense:   float64(stats.Defense),
		XP:        stats.XP,
	})
	components.Health.SetValue(slime, components.HealthData{
		Current: float64(stats.Health),
		Max:     float64(stats.Health),
	})

	return slime, nil
}
