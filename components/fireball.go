package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FireballData tracks a projectile in flight. The fireball's Object is a
// 2*Radius square centred on the projectile position.
type FireballData struct {
	Velocity    math.Vec2
	Traveled    float64
	MaxDistance float64
	Radius      float64
}

var Fireball = donburi.NewComponentType[FireballData]()
