package systems

import (
	"testing"
	"time"

	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/systems/factory"
	"github.com/automoto/slimerun/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
	"pgregory.net/rapid"
)

func firstSlime(t *testing.T, w *ecs.ECS) *components.ObjectData {
	t.Helper()
	slimes := entries(w, tags.Slime)
	require.NotEmpty(t, slimes)
	return components.Object.Get(slimes[0])
}

func TestSlimeContactImmunityWindow(t *testing.T) {
	w := newTestWorld(t, testLayout(), 1, []string{"red"}, testSetup())
	obj := playerObj(t, w)

	touch := func(now time.Duration) {
		placeOn(obj, firstSlime(t, w))
		setNow(w, now)
		UpdateImmunity(w)
		UpdateCombat(w)
	}

	touch(0)
	assert.Equal(t, 90.0, playerHealth(t, w).Current)
	assert.True(t, components.Player.Get(playerEntry(t, w)).Immune)

	touch(500 * time.Millisecond)
	assert.Equal(t, 90.0, playerHealth(t, w).Current)

	touch(999 * time.Millisecond)
	assert.Equal(t, 90.0, playerHealth(t, w).Current)

	touch(1000 * time.Millisecond)
	assert.Equal(t, 80.0, playerHealth(t, w).Current)
}

func TestSlimeContactKnockback(t *testing.T) {
	w := newTestWorld(t, testLayout(), 1, []string{"red"}, testSetup())
	obj := playerObj(t, w)
	slime := firstSlime(t, w)

	// Player left of the slime is pushed left
	placeOn(obj, slime)
	before := obj.X
	UpdateCombat(w)
	assert.Equal(t, before-cfg.Player.KnockbackDistance, obj.X)

	// Player right of the slime is pushed right
	components.Player.Get(playerEntry(t, w)).Immune = false
	obj.X, obj.Y = slime.X+slime.W/2, slime.Y
	before = obj.X
	UpdateCombat(w)
	assert.Equal(t, before+cfg.Player.KnockbackDistance, obj.X)
}

func TestSlimeContactRespectsDefense(t *testing.T) {
	setup := testSetup()
	setup.Defense = 25
	w := newTestWorld(t, testLayout(), 1, []string{"red"}, setup)

	placeOn(playerObj(t, w), firstSlime(t, w))
	UpdateCombat(w)

	// 10 damage against 25 defense never heals
	assert.Equal(t, 100.0, playerHealth(t, w).Current)
	assert.True(t, components.Player.Get(playerEntry(t, w)).Immune)
}

func TestFireballDefeatsSlime(t *testing.T) {
	setup := testSetup()
	setup.Damage = 30
	w := newTestWorld(t, testLayout(), 1, []string{"red"}, setup)

	slimeEntry := entries(w, tags.Slime)[0]
	slime := components.Object.Get(slimeEntry)
	cx, cy := slime.X+slime.W/2, slime.Y+slime.H/2

	// Select it to check the selection is cleared on removal
	GetStage(w).Selected = slimeEntry

	factory.CreateFireball(w, cx, cy, 0, 0, 100)
	UpdateCombat(w)
	assert.Equal(t, 20.0, components.Health.Get(slimeEntry).Current)
	assert.Empty(t, entries(w, tags.Fireball), "fireball consumed on hit")
	assert.Equal(t, 0, GetStage(w).SlimesDefeated)

	factory.CreateFireball(w, cx, cy, 0, 0, 100)
	UpdateCombat(w)

	stage := GetStage(w)
	assert.Empty(t, entries(w, tags.Slime))
	assert.Equal(t, 1, stage.SlimesDefeated)
	assert.Equal(t, 4, stage.SlimeXP)
	assert.Nil(t, stage.Selected)
	_, ok := SelectedSlime(w)
	assert.False(t, ok)
}

func TestFireballHitsOneSlime(t *testing.T) {
	setup := testSetup()
	setup.Damage = 5
	layout := testLayout()
	layout.SlimeSpacing = 0
	w := newTestWorld(t, layout, 1, []string{"red", "red"}, setup)

	slimes := entries(w, tags.Slime)
	require.Len(t, slimes, 2)
	obj := components.Object.Get(slimes[0])
	factory.CreateFireball(w, obj.X+obj.W/2, obj.Y+obj.H/2, 0, 0, 100)

	UpdateCombat(w)

	total := components.Health.Get(slimes[0]).Current + components.Health.Get(slimes[1]).Current
	assert.Equal(t, 95.0, total)
}

func TestFireballNeedsCentreInside(t *testing.T) {
	w := newTestWorld(t, testLayout(), 1, []string{"red"}, testSetup())
	slime := firstSlime(t, w)

	// Centre on the slime's left edge is not strictly inside
	factory.CreateFireball(w, slime.X, slime.Y+slime.H/2, 0, 0, 100)
	UpdateCombat(w)

	assert.Len(t, entries(w, tags.Fireball), 1)
	assert.Equal(t, 50.0, components.Health.Get(entries(w, tags.Slime)[0]).Current)
}

func TestFireballAgainstHighDefense(t *testing.T) {
	setup := testSetup()
	setup.Damage = 2
	w := newTestWorld(t, testLayout(), 11, []string{"orange"}, setup)

	slimeEntry := entries(w, tags.Slime)[0]
	require.Equal(t, 3.0, components.Slime.Get(slimeEntry).Defense)
	slime := components.Object.Get(slimeEntry)

	factory.CreateFireball(w, slime.X+slime.W/2, slime.Y+slime.H/2, 0, 0, 100)
	UpdateCombat(w)

	hp := components.Health.Get(slimeEntry)
	assert.Equal(t, hp.Max, hp.Current)
	assert.Empty(t, entries(w, tags.Fireball))
}

func TestQueueDamageAccumulates(t *testing.T) {
	w := newTestWorld(t, testLayout(), 1, nil, testSetup())
	player := playerEntry(t, w)

	QueueDamage(player, 10, 0)
	QueueDamage(player, 15, 0)
	UpdateCombat(w)

	assert.Equal(t, 75.0, playerHealth(t, w).Current)
	assert.False(t, player.HasComponent(components.DamageEvent))
}

func TestHealthStaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := newTestWorld(t, testLayout(), 1, nil, testSetup())
		player := playerEntry(t, w)

		hits := rapid.SliceOfN(rapid.Float64Range(0, 60), 1, 20).Draw(rt, "hits")
		for _, amount := range hits {
			QueueDamage(player, amount, 0)
			UpdateCombat(w)

			hp := components.Health.Get(player)
			if hp.Current < 0 || hp.Current > hp.Max {
				rt.Fatalf("health %v outside 0..%v", hp.Current, hp.Max)
			}
		}
	})
}

func TestOutcomeFailsAtZeroHealth(t *testing.T) {
	w := newTestWorld(t, testLayout(), 1, nil, testSetup())
	setNow(w, 2*time.Second)

	QueueDamage(playerEntry(t, w), 500, 0)
	UpdateCombat(w)
	UpdateOutcome(w)

	outcome := GetOutcome(w)
	assert.Equal(t, cfg.StateFailed, outcome.State)
	assert.Equal(t, 2*time.Second, outcome.EndTime)
	assert.False(t, IsRunning(w))

	// Ended stages ignore later transitions
	endStage(w, cfg.StateCompleted)
	assert.Equal(t, cfg.StateFailed, GetOutcome(w).State)
}
