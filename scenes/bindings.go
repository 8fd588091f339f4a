package scenes

import (
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings maps each action to the keys that trigger it
var Bindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:    {ebiten.KeyArrowLeft},
	cfg.ActionMoveRight:   {ebiten.KeyArrowRight},
	cfg.ActionJump:        {ebiten.KeySpace, ebiten.KeyArrowUp},
	cfg.ActionFire:        {ebiten.KeyF},
	cfg.ActionConfirmExit: {ebiten.KeyX},
}

// Tuning keys nudge the jump and speed sliders one step
const (
	keyJumpDown  = ebiten.KeyBracketLeft
	keyJumpUp    = ebiten.KeyBracketRight
	keySpeedDown = ebiten.KeyMinus
	keySpeedUp   = ebiten.KeyEqual
	keyRestart   = ebiten.KeyEnter
)

// pollInput captures keyboard and mouse state once for this frame.
func pollInput() game.InputSnapshot {
	var snap game.InputSnapshot
	for action, keys := range Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				snap.Actions[action] = true
			}
		}
	}

	mx, my := ebiten.CursorPosition()
	snap.MouseX = float64(mx)
	snap.MouseY = float64(my)
	snap.Click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return snap
}
