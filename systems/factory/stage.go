package factory

import (
	"fmt"
	"time"

	"github.com/automoto/slimerun/archetypes"
	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage populates the world for one stage: the stage singleton, spikes,
// the slime batch, the door and the player.
func CreateStage(ecs *ecs.ECS, layout *leveldata.Layout, def leveldata.StageDef, setup gamemath.StatSetup, now time.Duration) (*donburi.Entry, error) {
	stage := archetypes.Stage.Spawn(ecs)

	spikeDamage := float64(gamemath.SpikeDamage(def.Stage))
	components.Stage.SetValue(stage, components.StageData{
		Number:    def.Stage,
		Layout:    layout,
		StartTime: now,
	})
	components.Outcome.SetValue(stage, components.OutcomeData{State: cfg.StateRunning})

	for _, s := range layout.Spikes {
		CreateSpike(ecs, s.X, s.Y, s.W, s.H, spikeDamage)
	}

	for i, color := range def.Colors {
		if _, err := CreateSlime(ecs, layout.SlimeX(i), layout.GroundY, def.Stage, color); err != nil {
			return nil, fmt.Errorf("stage %d: %w", def.Stage, err)
		}
	}

	d := layout.Door
	CreateDoor(ecs, d.X, d.Y, d.W, d.H)
	CreatePlayer(ecs, layout.PlayerSpawn.X, layout.PlayerSpawn.Y, setup)

	return stage, nil
}
