package components

import "github.com/yohamta/donburi"

type DoorData struct {
	// PlayerInside is set while the player overlaps the door
	PlayerInside bool
}

var Door = donburi.NewComponentType[DoorData]()
