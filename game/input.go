package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi"
)

// ScriptStep holds a set of actions for a number of frames.
type ScriptStep struct {
	Actions []cfg.ActionID
	Frames  int
}

// Script replays fixed input. After the last step it holds nothing.
type Script struct {
	steps []ScriptStep
	step  int
	frame int
}

// ParseScript reads steps of the form "right+jump*10,fire*1,exit*1". An action
// list of "idle" holds nothing.
func ParseScript(src string) (*Script, error) {
	names := map[string]cfg.ActionID{}
	for a := cfg.ActionMoveLeft; a < cfg.ActionCount; a++ {
		names[a.String()] = a
	}

	s := &Script{}
	for _, part := range strings.Split(src, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		actionsPart, countPart, found := strings.Cut(part, "*")
		frames := 1
		if found {
			n, err := strconv.Atoi(countPart)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("script step %q: bad frame count", part)
			}
			frames = n
		}

		var step ScriptStep
		step.Frames = frames
		for _, name := range strings.Split(actionsPart, "+") {
			if name == "idle" {
				continue
			}
			a, ok := names[name]
			if !ok {
				return nil, fmt.Errorf("script step %q: unknown action %q", part, name)
			}
			step.Actions = append(step.Actions, a)
		}
		s.steps = append(s.steps, step)
	}
	return s, nil
}

func (s *Script) Next(*Driver) InputSnapshot {
	var snap InputSnapshot
	if s.step >= len(s.steps) {
		return snap
	}
	cur := s.steps[s.step]
	snap = snap.Press(cur.Actions...)

	s.frame++
	if s.frame >= cur.Frames {
		s.step++
		s.frame = 0
	}
	return snap
}

// Autopilot plays a stage without a human: it walks right, hops over spikes,
// shoots the nearest slime ahead and leaves through the door.
type Autopilot struct {
	// FireEvery is the number of frames between shots
	FireEvery int
	// LookAhead is how far ahead obstacles are noticed, in pixels
	LookAhead float64

	frame int
}

func NewAutopilot() *Autopilot {
	return &Autopilot{FireEvery: 20, LookAhead: 3 * cfg.C.Block}
}

func (a *Autopilot) Next(d *Driver) InputSnapshot {
	a.frame++
	var snap InputSnapshot
	w := d.ECS()
	if w == nil {
		return snap
	}
	playerEntry, ok := tags.Player.First(w.World)
	if !ok {
		return snap
	}
	player := components.Object.Get(playerEntry)
	px := player.X + player.W/2

	snap = snap.Press(cfg.ActionMoveRight)

	tags.Spike.Each(w.World, func(e *donburi.Entry) {
		spike := components.Object.Get(e)
		if spike.X > player.X && spike.X-(player.X+player.W) < a.LookAhead {
			snap = snap.Press(cfg.ActionJump)
		}
	})

	if doorEntry, ok := tags.Door.First(w.World); ok && components.Door.Get(doorEntry).PlayerInside {
		snap = snap.Press(cfg.ActionConfirmExit)
	}

	// Aim at the closest slime ahead; releasing between shots keeps each press distinct
	var target *components.ObjectData
	tags.Slime.Each(w.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.X+obj.W < px {
			return
		}
		if target == nil || obj.X < target.X {
			target = obj
		}
	})
	if target != nil {
		var camX float64
		if camEntry, ok := components.Camera.First(w.World); ok {
			camX = components.Camera.Get(camEntry).Position.X
		}
		snap.MouseX = target.X + target.W/2 - camX
		snap.MouseY = target.Y + target.H/2
		if a.frame%a.FireEvery == 0 {
			snap = snap.Press(cfg.ActionFire)
		}
	}
	return snap
}
