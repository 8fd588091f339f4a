package systems

import (
	"testing"

	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
	"pgregory.net/rapid"
)

func progress(t *testing.T, w *ecs.ECS) *components.ProgressData {
	t.Helper()
	entry, ok := components.Progress.First(w.World)
	require.True(t, ok)
	return components.Progress.Get(entry)
}

func TestProgressNeverDecreases(t *testing.T) {
	w := newTestWorld(t, testLayout(), 1, nil, testSetup())
	obj := playerObj(t, w)

	// Door at 750, player size 15
	obj.X = 367.5
	UpdateProgress(w)
	assert.InDelta(t, 0.5, progress(t, w).Fraction, 1e-9)

	obj.X = 100
	UpdateProgress(w)
	assert.InDelta(t, 0.5, progress(t, w).Fraction, 1e-9)
	assert.Equal(t, 367.5, progress(t, w).MaxX)

	obj.X = 2000
	UpdateProgress(w)
	assert.Equal(t, 1.0, progress(t, w).Fraction)
}

func TestProgressMonotoneProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := newTestWorld(t, testLayout(), 1, nil, testSetup())
		obj := playerObj(t, w)

		xs := rapid.SliceOfN(rapid.Float64Range(-200, 1200), 1, 50).Draw(rt, "xs")
		last := 0.0
		for _, x := range xs {
			obj.X = x
			UpdateProgress(w)
			f := progress(t, w).Fraction
			if f < last || f > 1 {
				rt.Fatalf("fraction %v after %v", f, last)
			}
			last = f
		}
	})
}

func TestCameraFollowsPlayer(t *testing.T) {
	w := newTestWorld(t, testLayout(), 1, nil, testSetup())
	obj := playerObj(t, w)
	cam, _ := components.Camera.First(w.World)

	obj.X = 100
	UpdateCamera(w)
	assert.Equal(t, 0.0, components.Camera.Get(cam).Position.X)

	obj.X = 500
	UpdateCamera(w)
	assert.InDelta(t, 500-800.0/3, components.Camera.Get(cam).Position.X, 1e-9)
}

func TestDoorNeedsExitKey(t *testing.T) {
	w := newTestWorld(t, testLayout(), 1, nil, testSetup())
	obj := playerObj(t, w)
	obj.X, obj.Y = 752, 365
	door, _ := components.Door.First(w.World)

	press(w)
	UpdateDoor(w)
	assert.True(t, components.Door.Get(door).PlayerInside)
	assert.True(t, IsRunning(w))

	obj.X = 600
	press(w, cfg.ActionConfirmExit)
	UpdateDoor(w)
	assert.False(t, components.Door.Get(door).PlayerInside)
	assert.True(t, IsRunning(w))

	obj.X = 752
	UpdateDoor(w)
	assert.Equal(t, cfg.StateCompleted, GetOutcome(w).State)
}

func TestWithRunningCheckSkipsEndedStage(t *testing.T) {
	w := newTestWorld(t, testLayout(), 1, nil, testSetup())
	calls := 0
	system := WithRunningCheck(func(*ecs.ECS) { calls++ })

	system(w)
	endStage(w, cfg.StateCompleted)
	system(w)
	assert.Equal(t, 1, calls)
}

func TestSelectSlimeByClick(t *testing.T) {
	w := newTestWorld(t, testLayout(), 1, []string{"red"}, testSetup())

	// Slime rests at x=200 on the ground line at 380
	ApplyInput(w, components.InputSnapshot{MouseX: 205, MouseY: 370, Click: true})
	UpdateSelection(w)

	info, ok := SelectedSlime(w)
	require.True(t, ok)
	assert.Equal(t, SlimeInfo{
		Color:     "red",
		Stage:     1,
		Health:    50,
		MaxHealth: 50,
		Damage:    10,
		Defense:   0,
		XP:        4,
	}, info)

	// Frames without a click keep the selection
	ApplyInput(w, components.InputSnapshot{MouseX: 10, MouseY: 10})
	UpdateSelection(w)
	_, ok = SelectedSlime(w)
	assert.True(t, ok)

	ApplyInput(w, components.InputSnapshot{MouseX: 10, MouseY: 10, Click: true})
	UpdateSelection(w)
	_, ok = SelectedSlime(w)
	assert.False(t, ok)
}
