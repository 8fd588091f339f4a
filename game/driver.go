// Package game owns the stage simulation. A Driver holds one donburi world,
// runs the systems in order once per Step and reports the stage outcome.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/shared/leveldata"
	"github.com/automoto/slimerun/systems"
	"github.com/automoto/slimerun/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// ErrNotRunning is returned by Step outside the Running state.
	ErrNotRunning = errors.New("stage is not running")
	// ErrAlreadyRunning is returned by Start while a stage is being played.
	ErrAlreadyRunning = errors.New("stage already running")
)

// InputSnapshot is the input for one frame.
type InputSnapshot = components.InputSnapshot

// Outcome summarises a stage attempt. StageXP is only awarded on completion.
type Outcome struct {
	Stage          int
	State          cfg.StateID
	Elapsed        time.Duration
	SlimesDefeated int
	SlimeXP        int
	StageXP        int
	TotalXP        int
}

// Driver runs one stage at a time.
type Driver struct {
	ecs    *ecs.ECS
	state  cfg.StateID
	layout *leveldata.Layout
	stages *leveldata.StageTable
	now    time.Duration

	tuning  chan components.TuningRequest
	reloads chan *leveldata.StageTable
	logger  *log.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// NewDriver creates a driver in the Setup state.
func NewDriver(layout *leveldata.Layout, stages *leveldata.StageTable, opts ...Option) *Driver {
	d := &Driver{
		state:   cfg.StateSetup,
		layout:  layout,
		stages:  stages,
		tuning:  make(chan components.TuningRequest, 16),
		reloads: make(chan *leveldata.StageTable, 1),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start builds a fresh world for the stage and enters Running. now is the
// simulation time the stage starts at.
func (d *Driver) Start(stage int, setup gamemath.StatSetup, now time.Duration) error {
	if d.state == cfg.StateRunning {
		return ErrAlreadyRunning
	}
	d.applyReload()

	def, err := d.stages.Lookup(stage)
	if err != nil {
		return err
	}

	world := ecs.NewECS(donburi.NewWorld())
	d.addSystems(world)

	systems.GetOrCreateClock(world).Now = now
	systems.GetOrCreateInput(world)
	systems.GetOrCreateTuning(world)
	factory.CreateCamera(world)
	if _, err := factory.CreateStage(world, d.layout, def, setup, now); err != nil {
		return fmt.Errorf("start stage: %w", err)
	}

	// Tuning requests from a previous run do not carry over
	for len(d.tuning) > 0 {
		<-d.tuning
	}

	d.ecs = world
	d.now = now
	d.state = cfg.StateRunning
	d.logger.Info("stage started", "stage", stage, "slimes", len(def.Colors), "layout", d.layout.Name)
	return nil
}

func (d *Driver) addSystems(world *ecs.ECS) {
	world.AddSystem(systems.UpdateTuning)
	world.AddSystem(systems.WithRunningCheck(systems.UpdatePlayer))
	world.AddSystem(systems.WithRunningCheck(systems.UpdatePhysics))
	world.AddSystem(systems.WithRunningCheck(systems.UpdateSlimes))
	world.AddSystem(systems.WithRunningCheck(systems.UpdateFireballs))
	world.AddSystem(systems.WithRunningCheck(systems.UpdateImmunity))
	world.AddSystem(systems.WithRunningCheck(systems.UpdateSpikes))
	world.AddSystem(systems.WithRunningCheck(systems.UpdateCombat))
	world.AddSystem(systems.WithRunningCheck(systems.UpdateOutcome))
	world.AddSystem(systems.WithRunningCheck(systems.UpdateSelection))
	world.AddSystem(systems.WithRunningCheck(systems.UpdateProgress))
	world.AddSystem(systems.WithRunningCheck(systems.UpdateCamera))
	world.AddSystem(systems.WithRunningCheck(systems.UpdateDoor))
}

// Step advances the stage by one frame.
func (d *Driver) Step(in InputSnapshot, now time.Duration) error {
	if d.state != cfg.StateRunning {
		return ErrNotRunning
	}

	d.now = now
	systems.GetOrCreateClock(d.ecs).Now = now
	systems.ApplyInput(d.ecs, in)
	d.drainTuning()

	d.ecs.Update()

	if outcome := systems.GetOutcome(d.ecs); outcome != nil && outcome.State.Ended() {
		d.state = outcome.State
		o := d.Outcome()
		d.logger.Info("stage ended",
			"stage", o.Stage,
			"state", o.State,
			"elapsed", o.Elapsed,
			"defeated", o.SlimesDefeated,
			"xp", o.TotalXP,
		)
	}
	return nil
}

// QueueTuning posts a slider value. It is applied at the start of the next
// frame; the request is dropped if the queue is full.
func (d *Driver) QueueTuning(kind components.TuningKind, stat float64) {
	select {
	case d.tuning <- components.TuningRequest{Kind: kind, Stat: stat}:
	default:
		d.logger.Warn("tuning queue full, dropping update", "kind", kind, "stat", stat)
	}
}

func (d *Driver) drainTuning() {
	for {
		select {
		case req := <-d.tuning:
			systems.QueueTuning(d.ecs, req)
		default:
			return
		}
	}
}

// ReloadStages replaces the stage table from the next Start on.
func (d *Driver) ReloadStages(table *leveldata.StageTable) {
	// Keep only the newest table
	for {
		select {
		case d.reloads <- table:
			return
		default:
		}
		select {
		case <-d.reloads:
		default:
		}
	}
}

func (d *Driver) applyReload() {
	select {
	case table := <-d.reloads:
		d.stages = table
		d.logger.Info("stage table reloaded", "stages", len(table.Stages))
	default:
	}
}

// State returns the current loop state.
func (d *Driver) State() cfg.StateID {
	return d.state
}

// ECS exposes the world for rendering. It is nil before the first Start.
func (d *Driver) ECS() *ecs.ECS {
	return d.ecs
}

// Stages returns the stage table in use.
func (d *Driver) Stages() *leveldata.StageTable {
	return d.stages
}

// SelectedSlime returns the info panel contents for the clicked slime.
func (d *Driver) SelectedSlime() (systems.SlimeInfo, bool) {
	if d.ecs == nil {
		return systems.SlimeInfo{}, false
	}
	return systems.SelectedSlime(d.ecs)
}

// Outcome reports the current or final stage result. While running, Elapsed is
// measured up to the last Step.
func (d *Driver) Outcome() Outcome {
	if d.ecs == nil {
		return Outcome{State: d.state}
	}
	stage := systems.GetStage(d.ecs)
	outcome := systems.GetOutcome(d.ecs)

	end := d.now
	if outcome.State.Ended() {
		end = outcome.EndTime
	}

	o := Outcome{
		Stage:          stage.Number,
		State:          d.state,
		Elapsed:        end - stage.StartTime,
		SlimesDefeated: stage.SlimesDefeated,
		SlimeXP:        stage.SlimeXP,
	}
	if d.state == cfg.StateCompleted {
		o.StageXP = gamemath.StageBonusXP(stage.Number)
	}
	o.TotalXP = o.SlimeXP + o.StageXP
	return o
}
