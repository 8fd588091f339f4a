package systems

import (
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpikes damages a player standing in spikes. Defense does not apply and
// the cooldown is shared by every spike.
func UpdateSpikes(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerRect := components.Object.Get(playerEntry).Bounds()
	now := Now(e)

	tags.Spike.Each(e.World, func(entry *donburi.Entry) {
		if !gamemath.Overlaps(playerRect, components.Object.Get(entry).Bounds()) {
			return
		}
		if player.HasSpikeHit && now-player.LastSpikeHit <= cfg.Spike.DamageInterval {
			return
		}
		spike := components.Spike.Get(entry)
		QueueDamage(playerEntry, spike.Damage, 0)
		player.LastSpikeHit = now
		player.HasSpikeHit = true
		player.HitTime = now
		player.WasHit = true
	})
}
