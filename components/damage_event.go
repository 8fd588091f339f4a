package components

import "github.com/yohamta/donburi"

// DamageEventData is damage queued against an entity this frame. Amount is
// already mitigated; multiple hits in a frame accumulate.
type DamageEventData struct {
	Amount     float64
	KnockbackX float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
