package systems

import (
	"math"

	"github.com/automoto/slimerun/components"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFireballs moves fireballs along their velocity and removes those that
// have used up their range.
func UpdateFireballs(e *ecs.ECS) {
	var spent []*donburi.Entry

	tags.Fireball.Each(e.World, func(entry *donburi.Entry) {
		fb := components.Fireball.Get(entry)
		obj := components.Object.Get(entry)

		obj.X += fb.Velocity.X
		obj.Y += fb.Velocity.Y
		fb.Traveled += math.Hypot(fb.Velocity.X, fb.Velocity.Y)

		if gamemath.RangeExhausted(fb.Traveled, fb.MaxDistance) {
			spent = append(spent, entry)
		}
	})

	for _, entry := range spent {
		e.World.Remove(entry.Entity())
	}
}

// fireballCenter returns the projectile position of a fireball entry.
func fireballCenter(entry *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(entry)
	return obj.X + obj.W/2, obj.Y + obj.H/2
}
