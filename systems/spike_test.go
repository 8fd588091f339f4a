package systems

import (
	"testing"
	"time"

	"github.com/automoto/slimerun/components"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/shared/leveldata"
	"github.com/automoto/slimerun/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpikeCooldown(t *testing.T) {
	layout := testLayout()
	layout.Spikes = []leveldata.Rect{{X: 100, Y: 370, W: 20, H: 10}}
	w := newTestWorld(t, layout, 5, nil, testSetup())

	obj := playerObj(t, w)
	obj.X, obj.Y = 100, 365
	dmg := float64(gamemath.SpikeDamage(5))
	require.Equal(t, 5.0, dmg)

	steps := []struct {
		now  time.Duration
		want float64
	}{
		{0, 100 - dmg},
		{50 * time.Millisecond, 100 - dmg},
		{100 * time.Millisecond, 100 - dmg},
		{150 * time.Millisecond, 100 - 2*dmg},
		{200 * time.Millisecond, 100 - 2*dmg},
		{251 * time.Millisecond, 100 - 3*dmg},
	}
	for _, s := range steps {
		setNow(w, s.now)
		UpdateSpikes(w)
		UpdateCombat(w)
		assert.Equal(t, s.want, playerHealth(t, w).Current, "at %v", s.now)
	}
}

func TestSpikeIgnoresDefenseAndSharesCooldown(t *testing.T) {
	layout := testLayout()
	// Two touching spikes both under the player
	layout.Spikes = []leveldata.Rect{
		{X: 100, Y: 370, W: 10, H: 10},
		{X: 110, Y: 370, W: 10, H: 10},
	}
	setup := testSetup()
	setup.Defense = 50
	w := newTestWorld(t, layout, 5, nil, setup)

	obj := playerObj(t, w)
	obj.X, obj.Y = 102, 365

	setNow(w, 0)
	UpdateSpikes(w)
	UpdateCombat(w)

	assert.Equal(t, 95.0, playerHealth(t, w).Current)
	player := components.Player.Get(playerEntry(t, w))
	assert.True(t, player.WasHit)
	assert.Equal(t, time.Duration(0), player.HitTime)
}

func TestSpikeNoDamageWithoutOverlap(t *testing.T) {
	layout := testLayout()
	layout.Spikes = []leveldata.Rect{{X: 100, Y: 370, W: 20, H: 10}}
	w := newTestWorld(t, layout, 5, nil, testSetup())

	// Touching edges only
	obj := playerObj(t, w)
	obj.X, obj.Y = 85, 365

	UpdateSpikes(w)
	UpdateCombat(w)
	assert.Equal(t, 100.0, playerHealth(t, w).Current)
	assert.Len(t, entries(w, tags.Spike), 1)
}
