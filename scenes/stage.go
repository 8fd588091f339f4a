package scenes

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/fonts"
	"github.com/automoto/slimerun/game"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/automoto/slimerun/systems"
	"github.com/automoto/slimerun/systems/render"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StageScene plays one stage and shows its outcome when it ends.
type StageScene struct {
	driver *game.Driver
	store  *systems.Store
	stage  int
	setup  gamemath.StatSetup
	start  time.Time

	jumpStat  float64
	speedStat float64
	recorded  bool

	paused   bool
	pausedAt time.Time
}

// NewStageScene starts the stage immediately.
func NewStageScene(driver *game.Driver, store *systems.Store, stage int, setup gamemath.StatSetup) (*StageScene, error) {
	s := &StageScene{
		driver: driver,
		store:  store,
		stage:  stage,
		setup:  setup,
	}
	if err := s.restart(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *StageScene) restart() error {
	s.start = time.Now()
	if err := s.driver.Start(s.stage, s.setup, 0); err != nil {
		return fmt.Errorf("stage %d: %w", s.stage, err)
	}
	stats := s.setup.Derive(cfg.C.Block)
	s.jumpStat = stats.MaxJumpStat
	s.speedStat = stats.MaxSpeedStat
	s.recorded = false
	s.paused = false
	return nil
}

func (s *StageScene) Update() error {
	if s.driver.State().Ended() {
		s.recordOutcome()
		if inpututil.IsKeyJustPressed(keyRestart) {
			return s.restart()
		}
		return nil
	}

	// Losing focus pauses the stage and releases every key
	if !ebiten.IsFocused() {
		if !s.paused {
			s.paused = true
			s.pausedAt = time.Now()
			systems.ClearInput(s.driver.ECS())
		}
		return nil
	}
	if s.paused {
		s.start = s.start.Add(time.Since(s.pausedAt))
		s.paused = false
	}

	s.updateTuning()

	err := s.driver.Step(pollInput(), time.Since(s.start))
	if err != nil && !errors.Is(err, game.ErrNotRunning) {
		return err
	}
	return nil
}

// updateTuning turns the tuning keys into slider steps.
func (s *StageScene) updateTuning() {
	w := s.driver.ECS()
	nudge := func(kind components.TuningKind, value *float64, down, up ebiten.Key) {
		lo, hi, step, ok := systems.TuningRange(w, kind)
		if !ok {
			return
		}
		switch {
		case inpututil.IsKeyJustPressed(down):
			*value = gamemath.ClampFloat(*value-step, lo, hi)
		case inpututil.IsKeyJustPressed(up):
			*value = gamemath.ClampFloat(*value+step, lo, hi)
		default:
			return
		}
		s.driver.QueueTuning(kind, *value)
	}
	nudge(components.TuneJump, &s.jumpStat, keyJumpDown, keyJumpUp)
	nudge(components.TuneSpeed, &s.speedStat, keySpeedDown, keySpeedUp)
}

func (s *StageScene) recordOutcome() {
	if s.recorded {
		return
	}
	s.recorded = true
	o := s.driver.Outcome()
	if _, err := s.store.RecordResult(o.Stage, o.State == cfg.StateCompleted, o.Elapsed, o.TotalXP); err != nil {
		log.Warn("could not record result", "stage", o.Stage, "err", err)
	}
}

func (s *StageScene) Draw(screen *ebiten.Image) {
	w := s.driver.ECS()
	if w == nil {
		return
	}
	render.DrawWorld(w, screen)
	render.DrawHUD(w, screen)

	if s.driver.State().Ended() {
		drawOutcome(screen, s.driver.Outcome())
	}
}

func drawOutcome(screen *ebiten.Image, o game.Outcome) {
	width, height := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.FillRect(screen, 0, 0, width, height, cfg.UI.PanelColor, false)

	title := "You were defeated"
	if o.State == cfg.StateCompleted {
		title = "Congratulations!"
	}
	text.Draw(screen, title, fonts.Title.Get(), 60, 80, cfg.White)

	face := fonts.HUD.Get()
	for i, line := range OutcomeLines(o) {
		text.Draw(screen, line, face, 60, 120+i*22, cfg.White)
	}
	text.Draw(screen, "Press Enter to play again", fonts.Small.Get(), 60, int(height)-40, cfg.White)
}

// OutcomeLines formats a stage result for display.
func OutcomeLines(o game.Outcome) []string {
	return []string{
		fmt.Sprintf("Time Taken: %.2f s", o.Elapsed.Seconds()),
		fmt.Sprintf("Slimes Defeated: %d", o.SlimesDefeated),
		fmt.Sprintf("XP from Slimes: %d", o.SlimeXP),
		fmt.Sprintf("XP from Level: %d", o.StageXP),
		fmt.Sprintf("Total XP: %d", o.TotalXP),
	}
}
