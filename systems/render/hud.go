package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/fonts"
	"github.com/automoto/slimerun/systems"
	"github.com/automoto/slimerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const panelLineHeight = 20

// DrawHUD renders the health bar in the top-left corner, the progress bar in the
// top-right corner and the selected slime's info panel below it.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	face := fonts.HUD.Get()

	margin := cfg.UI.BarMargin
	barW, barH := cfg.UI.BarWidth, cfg.UI.BarHeight

	// Health
	drawBar(screen, margin, margin, hp.Fraction(), cfg.UI.HealthBarColor, cfg.White)
	label := fmt.Sprintf("%d / %d", int(math.Round(hp.Current)), int(math.Round(hp.Max)))
	text.Draw(screen, label, face, int(margin+5), int(margin+barH-3), cfg.Black)

	// Progress
	if progressEntry, ok := components.Progress.First(e.World); ok {
		progress := components.Progress.Get(progressEntry)
		x := float64(cfg.C.Width) - barW - margin
		drawBar(screen, x, margin, progress.Fraction, colorFor(player.Color), cfg.Gray)

		pct := fmt.Sprintf("%d%%", int(math.Round(progress.Fraction*100)))
		w := font.MeasureString(face, pct).Round()
		text.Draw(screen, pct, face, int(x)-5-w, int(margin+barH-3), cfg.Black)
	}

	if info, ok := systems.SelectedSlime(e); ok {
		drawSlimePanel(screen, info, face)
	}
}

func drawBar(screen *ebiten.Image, x, y, fraction float64, fill, border color.Color) {
	w, h := cfg.UI.BarWidth, cfg.UI.BarHeight
	fillRect(screen, x, y, w, h, cfg.UI.BarBgColor)
	fillRect(screen, x, y, w*fraction, h, fill)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, border, false)
}

func drawSlimePanel(screen *ebiten.Image, info systems.SlimeInfo, face font.Face) {
	w, h := cfg.UI.PanelWidth, cfg.UI.PanelHeight
	x := float64(cfg.C.Width) - w
	y := cfg.UI.BarMargin*2 + cfg.UI.BarHeight

	fillRect(screen, x, y, w, h, cfg.UI.PanelColor)

	lines := SlimePanelLines(info)
	ascent := face.Metrics().Ascent.Round()
	textY := y + (h-float64(len(lines)*panelLineHeight))/2
	right := int(x + w - 10)
	for _, line := range lines {
		lw := font.MeasureString(face, line).Round()
		text.Draw(screen, line, face, right-lw, int(textY)+ascent, cfg.White)
		textY += panelLineHeight
	}
}

// SlimePanelLines formats the selected slime's stats for display.
func SlimePanelLines(info systems.SlimeInfo) []string {
	name := info.Color
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return []string{
		fmt.Sprintf("%s Slime (Stage %d)", name, info.Stage),
		fmt.Sprintf("Health: %d / %d", int(math.Round(info.Health)), int(math.Round(info.MaxHealth))),
		fmt.Sprintf("Damage: %d", int(math.Round(info.Damage))),
		fmt.Sprintf("Defense: %d", int(math.Round(info.Defense))),
		fmt.Sprintf("XP Reward: %d", info.XP),
	}
}
