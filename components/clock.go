package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation time of the frame being processed.
type ClockData struct {
	Now time.Duration
}

var Clock = donburi.NewComponentType[ClockData]()
