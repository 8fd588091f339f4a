package systems

import (
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSlimes moves each slime back and forth around its anchor.
func UpdateSlimes(e *ecs.ECS) {
	tags.Slime.Each(e.World, func(entry *donburi.Entry) {
		slime := components.Slime.Get(entry)
		obj := components.Object.Get(entry)

		obj.X += cfg.Slime.PatrolSpeed * slime.Direction
		if obj.X > slime.OriginalX+cfg.Slime.PatrolRange {
			slime.Direction = cfg.DirectionLeft
		}
		if obj.X < slime.OriginalX-cfg.Slime.PatrolRange {
			slime.Direction = cfg.DirectionRight
		}
	})
}
