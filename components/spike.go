package components

import "github.com/yohamta/donburi"

type SpikeData struct {
	Damage float64
}

var Spike = donburi.NewComponentType[SpikeData]()
