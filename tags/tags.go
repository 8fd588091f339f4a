package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Slime    = donburi.NewTag().SetName("Slime")
	Spike    = donburi.NewTag().SetName("Spike")
	Fireball = donburi.NewTag().SetName("Fireball")
	Door     = donburi.NewTag().SetName("Door")
)

// Resolv tags carried on each entity's collision object
const (
	ResolvPlayer   = "Player"
	ResolvSlime    = "Slime"
	ResolvSpike    = "spike"
	ResolvFireball = "Fireball"
	ResolvDoor     = "door"
)
