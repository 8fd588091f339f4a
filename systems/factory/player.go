package factory

import (
	"github.com/automoto/slimerun/archetypes"
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64, setup gamemath.StatSetup) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	size := cfg.Player.Size

	obj := resolv.NewObject(x, y, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	stats := setup.Derive(cfg.C.Block)
	components.Player.SetValue(player, components.PlayerData{
		Color:         setup.Color,
		Speed:         stats.Speed,
		JumpHeight:    stats.JumpHeight,
		FireballRange: stats.FireballRange,
		Damage:        stats.Damage,
		Defense:       stats.Defense,
		MaxJumpStat:   stats.MaxJumpStat,
		MaxSpeedStat:  stats.MaxSpeedStat,
		JumpControl:   setup.JumpControl,
		SpeedControl:  setup.SpeedControl,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Player.Gravity,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: stats.MaxHealth,
		Max:     stats.MaxHealth,
	})

	return player
}
