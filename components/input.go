package components

import (
	cfg "github.com/automoto/slimerun/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Mouse position in level coordinates
	MouseX, MouseY float64
	Clicked        bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()

// InputSnapshot is the input captured once per frame. Mouse coordinates are
// relative to the viewport.
type InputSnapshot struct {
	Actions        [cfg.ActionCount]bool
	MouseX, MouseY float64
	Click          bool
}

// Press returns a copy of s with the given actions held.
func (s InputSnapshot) Press(actions ...cfg.ActionID) InputSnapshot {
	for _, a := range actions {
		s.Actions[a] = true
	}
	return s
}
