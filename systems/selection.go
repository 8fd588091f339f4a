package systems

import (
	"github.com/automoto/slimerun/components"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SlimeInfo describes the selected slime for the info panel.
type SlimeInfo struct {
	Color     string
	Stage     int
	Health    float64
	MaxHealth float64
	Damage    float64
	Defense   float64
	XP        int
}

// UpdateSelection selects the slime under a mouse click. A click that misses
// every slime clears the selection.
func UpdateSelection(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	if !input.Clicked {
		return
	}
	stage := GetStage(e)
	if stage == nil {
		return
	}

	stage.Selected = nil
	tags.Slime.Each(e.World, func(entry *donburi.Entry) {
		if components.Object.Get(entry).Bounds().Contains(input.MouseX, input.MouseY) {
			stage.Selected = entry
		}
	})
}

// SelectedSlime returns information about the selected slime, if any.
func SelectedSlime(e *ecs.ECS) (SlimeInfo, bool) {
	stage := GetStage(e)
	if stage == nil || stage.Selected == nil || !stage.Selected.Valid() {
		return SlimeInfo{}, false
	}
	entry := stage.Selected
	slime := components.Slime.Get(entry)
	hp := components.Health.Get(entry)
	return SlimeInfo{
		Color:     slime.Color,
		Stage:     stage.Number,
		Health:    hp.Current,
		MaxHealth: hp.Max,
		Damage:    slime.Damage,
		Defense:   slime.Defense,
		XP:        slime.XP,
	}, true
}
