package components

import (
	"time"

	cfg "github.com/automoto/slimerun/config"
	"github.com/yohamta/donburi"
)

type OutcomeData struct {
	State   cfg.StateID
	EndTime time.Duration
}

var Outcome = donburi.NewComponentType[OutcomeData]()
