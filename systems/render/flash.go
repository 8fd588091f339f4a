package render

import (
	cfg "github.com/automoto/slimerun/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flashAlpha returns the opacity of the damage flash elapsedMs after a hit. The
// flash fades linearly from opaque to clear; ok is false once it has finished.
func flashAlpha(elapsedMs float32) (float32, bool) {
	duration := float32(cfg.Player.HitFlashDuration.Milliseconds())
	if elapsedMs < 0 || elapsedMs >= duration {
		return 0, false
	}
	tw := gween.New(1, 0, duration, ease.Linear)
	alpha, _ := tw.Set(elapsedMs)
	return alpha, true
}
