package systems

import (
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// QueueTuning records a slider change to be applied at the start of the next frame.
func QueueTuning(e *ecs.ECS, req components.TuningRequest) {
	tuning := GetOrCreateTuning(e)
	tuning.Pending = append(tuning.Pending, req)
}

// UpdateTuning applies pending jump/speed slider changes to the player. A change
// is ignored unless its control was enabled at setup.
func UpdateTuning(e *ecs.ECS) {
	tuning := GetOrCreateTuning(e)
	if len(tuning.Pending) == 0 {
		return
	}
	pending := tuning.Pending
	tuning.Pending = tuning.Pending[:0]

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	for _, req := range pending {
		switch req.Kind {
		case components.TuneJump:
			if !player.JumpControl {
				continue
			}
			stat := clampStat(req.Stat, cfg.Player.JumpStatMin, player.MaxJumpStat)
			player.JumpHeight = gamemath.JumpHeightFromStat(stat, cfg.C.Block)
		case components.TuneSpeed:
			if !player.SpeedControl {
				continue
			}
			stat := clampStat(req.Stat, cfg.Player.SpeedStatMin, player.MaxSpeedStat)
			player.Speed = gamemath.SpeedFromStat(stat, cfg.C.Block)
		}
	}
}

// clampStat keeps a slider value in range. A maximum below the minimum pins the
// value to the minimum.
func clampStat(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return gamemath.ClampFloat(v, lo, hi)
}

// TuningRange returns the slider bounds and step for a tuning kind.
func TuningRange(e *ecs.ECS, kind components.TuningKind) (lo, hi, step float64, ok bool) {
	playerEntry, found := tags.Player.First(e.World)
	if !found {
		return 0, 0, 0, false
	}
	player := components.Player.Get(playerEntry)
	switch kind {
	case components.TuneJump:
		lo, hi, ok = cfg.Player.JumpStatMin, player.MaxJumpStat, player.JumpControl
	case components.TuneSpeed:
		lo, hi, ok = cfg.Player.SpeedStatMin, player.MaxSpeedStat, player.SpeedControl
	}
	if hi < lo {
		hi = lo
	}
	step = (hi - lo) / float64(cfg.Player.TuningSteps)
	return lo, hi, step, ok
}
