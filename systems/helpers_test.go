package systems

import (
	"testing"
	"time"

	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/shared/leveldata"
	"github.com/automoto/slimerun/systems/factory"
	"github.com/automoto/slimerun/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testLayout is an 800x400 stage with no spikes unless a test adds them.
func testLayout() *leveldata.Layout {
	l := leveldata.DefaultLayout(800, 400, 20)
	l.Spikes = nil
	return l
}

func testSetup() gamemath.StatSetup {
	return gamemath.StatSetup{
		Jumping:       3,
		Speed:         6,
		FireballRange: 10,
		Damage:        20,
		Health:        100,
		Color:         "blue",
	}
}

func newTestWorld(t *testing.T, layout *leveldata.Layout, stage int, colors []string, setup gamemath.StatSetup) *ecs.ECS {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	GetOrCreateClock(w)
	GetOrCreateInput(w)
	GetOrCreateTuning(w)
	factory.CreateCamera(w)
	_, err := factory.CreateStage(w, layout, leveldata.StageDef{Stage: stage, Colors: colors}, setup, 0)
	require.NoError(t, err)
	return w
}

func setNow(w *ecs.ECS, now time.Duration) {
	GetOrCreateClock(w).Now = now
}

func press(w *ecs.ECS, actions ...cfg.ActionID) {
	ApplyInput(w, components.InputSnapshot{}.Press(actions...))
}

func playerEntry(t *testing.T, w *ecs.ECS) *donburi.Entry {
	t.Helper()
	e, ok := tags.Player.First(w.World)
	require.True(t, ok)
	return e
}

func playerObj(t *testing.T, w *ecs.ECS) *components.ObjectData {
	return components.Object.Get(playerEntry(t, w))
}

func playerHealth(t *testing.T, w *ecs.ECS) *components.HealthData {
	return components.Health.Get(playerEntry(t, w))
}

func entries(w *ecs.ECS, tag eacher) []*donburi.Entry {
	return collect(w, tag)
}

// placeOn moves obj so it overlaps target's top-left corner.
func placeOn(obj, target *components.ObjectData) {
	obj.X = target.X - obj.W/3
	obj.Y = target.Y
}
