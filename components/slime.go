package components

import "github.com/yohamta/donburi"

type SlimeData struct {
	Color     string
	OriginalX float64 // patrol anchor
	Direction float64

	Damage  float64
	Defense float64
	XP      int
}

var Slime = donburi.NewComponentType[SlimeData]()
