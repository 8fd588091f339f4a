// Package render draws the stage with flat shapes. It only reads the world.
package render

import (
	"image/color"
	"time"

	"github.com/automoto/slimerun/components"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/fonts"
	"github.com/automoto/slimerun/systems"
	"github.com/automoto/slimerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spikeTeeth = 4

// DrawWorld renders ground, spikes, slimes, fireballs, the door and the player,
// offset by the camera.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	stage := systems.GetStage(e)
	if stage == nil {
		return
	}
	camX := cameraX(e)

	// Ground spans the whole level
	layout := stage.Layout
	fillRect(screen, -camX, layout.GroundY, layout.Width, layout.Height-layout.GroundY, cfg.UI.GroundColor)

	tags.Spike.Each(e.World, func(entry *donburi.Entry) {
		drawSpike(screen, components.Object.Get(entry), camX)
	})

	tags.Door.Each(e.World, func(entry *donburi.Entry) {
		drawDoor(screen, entry, camX)
	})

	tags.Slime.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		slime := components.Slime.Get(entry)
		fillRect(screen, obj.X-camX, obj.Y, obj.W, obj.H, colorFor(slime.Color))
		if stage.Selected == entry {
			vector.StrokeRect(screen, float32(obj.X-camX)-1, float32(obj.Y)-1, float32(obj.W)+2, float32(obj.H)+2, 1, cfg.White, false)
		}
	})

	tags.Fireball.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		fb := components.Fireball.Get(entry)
		vector.DrawFilledCircle(screen, float32(obj.X+obj.W/2-camX), float32(obj.Y+obj.H/2), float32(fb.Radius), cfg.UI.FireballColor, true)
	})

	if playerEntry, ok := tags.Player.First(e.World); ok {
		drawPlayer(screen, playerEntry, systems.Now(e), camX)
	}
}

func drawSpike(screen *ebiten.Image, obj *components.ObjectData, camX float64) {
	// Stepped teeth stand in for triangles
	tooth := obj.W / spikeTeeth
	for i := 0; i < spikeTeeth; i++ {
		x := obj.X + float64(i)*tooth - camX
		fillRect(screen, x, obj.Y+obj.H/2, tooth, obj.H/2, cfg.UI.SpikeColor)
		fillRect(screen, x+tooth/4, obj.Y, tooth/2, obj.H/2, cfg.UI.SpikeColor)
	}
}

func drawDoor(screen *ebiten.Image, entry *donburi.Entry, camX float64) {
	obj := components.Object.Get(entry)
	door := components.Door.Get(entry)

	fillRect(screen, obj.X-camX, obj.Y, obj.W, obj.H, cfg.UI.DoorColor)
	vector.DrawFilledCircle(screen, float32(obj.X+obj.W-5-camX), float32(obj.Y+obj.H/2), 3, cfg.UI.DoorbellColor, true)

	if door.PlayerInside {
		text.Draw(screen, "Press X to exit", fonts.Small.Get(), int(obj.X-10-camX), int(obj.Y-5), cfg.Black)
	}
}

func drawPlayer(screen *ebiten.Image, entry *donburi.Entry, now time.Duration, camX float64) {
	obj := components.Object.Get(entry)
	player := components.Player.Get(entry)

	fillRect(screen, obj.X-camX, obj.Y, obj.W, obj.H, colorFor(player.Color))

	if !player.WasHit {
		return
	}
	elapsed := float32(now.Milliseconds() - player.HitTime.Milliseconds())
	if alpha, ok := flashAlpha(elapsed); ok {
		flash := cfg.UI.FlashColor
		flash.A = uint8(alpha * 255)
		// color.RGBA is premultiplied
		flash.R = uint8(float32(flash.R) * alpha)
		flash.G = uint8(float32(flash.G) * alpha)
		flash.B = uint8(float32(flash.B) * alpha)
		fillRect(screen, obj.X-camX, obj.Y, obj.W, obj.H, flash)
	}
}

func cameraX(e *ecs.ECS) float64 {
	if entry, ok := components.Camera.First(e.World); ok {
		return components.Camera.Get(entry).Position.X
	}
	return 0
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func colorFor(name string) color.RGBA {
	if c, ok := cfg.UI.SlimeColors[name]; ok {
		return c
	}
	return cfg.White
}
