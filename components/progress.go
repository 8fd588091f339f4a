package components

import "github.com/yohamta/donburi"

type ProgressData struct {
	MaxX     float64 // farthest player x ever reached
	Fraction float64
}

var Progress = donburi.NewComponentType[ProgressData]()
