package components

import (
	"time"

	"github.com/automoto/slimerun/shared/leveldata"
	"github.com/yohamta/donburi"
)

type StageData struct {
	Number    int
	Layout    *leveldata.Layout
	StartTime time.Duration

	SlimesDefeated int
	SlimeXP        int

	// Selected is the slime picked by clicking, nil when none
	Selected *donburi.Entry
}

var Stage = donburi.NewComponentType[StageData]()
