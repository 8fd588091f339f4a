package systems

import (
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// QueueDamage adds mitigated damage to an entity for this frame's combat pass.
// Several hits in one frame accumulate.
func QueueDamage(entry *donburi.Entry, amount, knockbackX float64) {
	if entry.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(entry)
		dmg.Amount += amount
		dmg.KnockbackX += knockbackX
		return
	}
	donburi.Add(entry, components.DamageEvent, &components.DamageEventData{
		Amount:     amount,
		KnockbackX: knockbackX,
	})
}

// UpdateCombat resolves slime contact and fireball hits, applies queued damage,
// removes consumed fireballs and defeated slimes, and keeps health values within
// their valid range.
func UpdateCombat(e *ecs.ECS) {
	// Stable snapshots so removals never skip entries
	slimes := collect(e, tags.Slime)
	fireballs := collect(e, tags.Fireball)

	resolveSlimeContact(e, slimes)
	consumed := resolveFireballHits(e, slimes, fireballs)

	applyDamageEvents(e)

	for _, fb := range consumed {
		e.World.Remove(fb.Entity())
	}
	removeDefeatedSlimes(e, slimes)

	// Clamp health ranges (0..Max)
	for entry := range components.Health.Iter(e.World) {
		hp := components.Health.Get(entry)
		hp.Current = gamemath.ClampFloat(hp.Current, 0, hp.Max)
	}
}

type eacher interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

func collect(e *ecs.ECS, tag eacher) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

// resolveSlimeContact damages and knocks back a player touching a slime unless
// the player is immune. The first slime found sets immunity for the rest.
func resolveSlimeContact(e *ecs.ECS, slimes []*donburi.Entry) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry)
	now := Now(e)

	for _, slimeEntry := range slimes {
		if player.Immune {
			return
		}
		slimeObj := components.Object.Get(slimeEntry)
		if !gamemath.Overlaps(playerObj.Bounds(), slimeObj.Bounds()) {
			continue
		}
		slime := components.Slime.Get(slimeEntry)

		knockback := cfg.Player.KnockbackDistance
		if playerObj.X < slimeObj.X {
			knockback = -knockback
		}
		QueueDamage(playerEntry, gamemath.Mitigate(slime.Damage, player.Defense), knockback)

		player.Immune = true
		player.LastSlimeHit = now
		player.HitTime = now
		player.WasHit = true
	}
}

// resolveFireballHits queues damage on the first slime each fireball's centre
// lies inside and returns the fireballs that hit something.
func resolveFireballHits(e *ecs.ECS, slimes, fireballs []*donburi.Entry) []*donburi.Entry {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return nil
	}
	player := components.Player.Get(playerEntry)

	var consumed []*donburi.Entry
	for _, fbEntry := range fireballs {
		x, y := fireballCenter(fbEntry)
		for _, slimeEntry := range slimes {
			if !components.Object.Get(slimeEntry).Bounds().Contains(x, y) {
				continue
			}
			slime := components.Slime.Get(slimeEntry)
			QueueDamage(slimeEntry, gamemath.Mitigate(player.Damage, slime.Defense), 0)
			consumed = append(consumed, fbEntry)
			break
		}
	}
	return consumed
}

// applyDamageEvents subtracts queued damage, applies knockback and credits the
// stage when a slime's health reaches zero.
func applyDamageEvents(e *ecs.ECS) {
	stage := GetStage(e)

	var processed []*donburi.Entry
	for entry := range components.DamageEvent.Iter(e.World) {
		dmg := components.DamageEvent.Get(entry)
		hp := components.Health.Get(entry)

		before := hp.Current
		hp.Current -= dmg.Amount
		if hp.Current < 0 {
			hp.Current = 0
		}

		if dmg.KnockbackX != 0 {
			components.Object.Get(entry).X += dmg.KnockbackX
		}

		if entry.HasComponent(tags.Slime) && before > 0 && hp.Current == 0 && stage != nil {
			stage.SlimesDefeated++
			stage.SlimeXP += components.Slime.Get(entry).XP
		}
		processed = append(processed, entry)
	}

	// Remove the damage event component so it is processed only once.
	for _, entry := range processed {
		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
	}
}

func removeDefeatedSlimes(e *ecs.ECS, slimes []*donburi.Entry) {
	stage := GetStage(e)
	for _, entry := range slimes {
		if !entry.Valid() || components.Health.Get(entry).Current > 0 {
			continue
		}
		if stage != nil && stage.Selected == entry {
			stage.Selected = nil
		}
		e.World.Remove(entry.Entity())
	}
}
