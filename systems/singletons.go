package systems

import (
	"time"

	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Input))
	}
	ent, _ := components.Input.First(e.World)
	return components.Input.Get(ent)
}

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Clock))
	}
	ent, _ := components.Clock.First(e.World)
	return components.Clock.Get(ent)
}

// GetOrCreateTuning returns the singleton Tuning component, creating if needed
func GetOrCreateTuning(e *ecs.ECS) *components.TuningData {
	if _, ok := components.Tuning.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Tuning))
	}
	ent, _ := components.Tuning.First(e.World)
	return components.Tuning.Get(ent)
}

// Now returns the simulation time of the current frame.
func Now(e *ecs.ECS) time.Duration {
	return GetOrCreateClock(e).Now
}

// GetStage returns the stage singleton, or nil before a stage was created.
func GetStage(e *ecs.ECS) *components.StageData {
	ent, ok := components.Stage.First(e.World)
	if !ok {
		return nil
	}
	return components.Stage.Get(ent)
}

// GetOutcome returns the outcome singleton, or nil before a stage was created.
func GetOutcome(e *ecs.ECS) *components.OutcomeData {
	ent, ok := components.Outcome.First(e.World)
	if !ok {
		return nil
	}
	return components.Outcome.Get(ent)
}

// IsRunning reports whether the stage is still being played.
func IsRunning(e *ecs.ECS) bool {
	outcome := GetOutcome(e)
	return outcome != nil && outcome.State == cfg.StateRunning
}

// WithRunningCheck wraps a system to skip execution once the stage has ended
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsRunning(e) {
			return
		}
		system(e)
	}
}

// endStage moves the stage into a terminal state. The first ending wins.
func endStage(e *ecs.ECS, state cfg.StateID) {
	outcome := GetOutcome(e)
	if outcome == nil || outcome.State != cfg.StateRunning {
		return
	}
	outcome.State = state
	outcome.EndTime = Now(e)
}
