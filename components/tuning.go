package components

import "github.com/yohamta/donburi"

// TuningKind selects which player value a tuning request changes.
type TuningKind int

const (
	TuneJump TuningKind = iota
	TuneSpeed
)

// TuningRequest carries a slider value in stat units.
type TuningRequest struct {
	Kind TuningKind
	Stat float64
}

type TuningData struct {
	Pending []TuningRequest
}

var Tuning = donburi.NewComponentType[TuningData]()
