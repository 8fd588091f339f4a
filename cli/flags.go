// Package cli holds the command-line flags shared by the game client and the
// headless runner.
package cli

import (
	"fmt"

	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

// SetupFlags collects stat setup values from flags. Only flags the user set
// override the saved or default setup.
type SetupFlags struct {
	values gamemath.StatSetup
	flags  *pflag.FlagSet
}

// BindSetupFlags registers the stat setup flags on fs.
func BindSetupFlags(fs *pflag.FlagSet) *SetupFlags {
	s := &SetupFlags{flags: fs}
	d := cfg.Setup
	fs.Float64Var(&s.values.Jumping, "jumping", d.Jumping, "Jump stat (blocks)")
	fs.Float64Var(&s.values.Speed, "speed", d.Speed, "Speed stat (blocks per second)")
	fs.Float64Var(&s.values.FireballRange, "fireball-range", d.FireballRange, "Fireball range (blocks)")
	fs.Float64Var(&s.values.Damage, "damage", d.Damage, "Fireball damage")
	fs.Float64Var(&s.values.Health, "health", d.Health, "Maximum health")
	fs.Float64Var(&s.values.Defense, "defense", d.Defense, "Defense against slime contact")
	fs.Float64Var(&s.values.BoostPercent, "boost", d.BoostPercent, "Percent boost to every stat but defense")
	fs.StringVar(&s.values.Color, "color", d.Color, "Player color")
	fs.BoolVar(&s.values.JumpControl, "jump-control", d.JumpControl, "Allow tuning jump height while playing")
	fs.BoolVar(&s.values.SpeedControl, "speed-control", d.SpeedControl, "Allow tuning speed while playing")
	return s
}

// Resolve applies the flags the user changed on top of base.
func (s *SetupFlags) Resolve(base gamemath.StatSetup) (gamemath.StatSetup, error) {
	out := base
	set := map[string]func(){
		"jumping":        func() { out.Jumping = s.values.Jumping },
		"speed":          func() { out.Speed = s.values.Speed },
		"fireball-range": func() { out.FireballRange = s.values.FireballRange },
		"damage":         func() { out.Damage = s.values.Damage },
		"health":         func() { out.Health = s.values.Health },
		"defense":        func() { out.Defense = s.values.Defense },
		"boost":          func() { out.BoostPercent = s.values.BoostPercent },
		"color":          func() { out.Color = s.values.Color },
		"jump-control":   func() { out.JumpControl = s.values.JumpControl },
		"speed-control":  func() { out.SpeedControl = s.values.SpeedControl },
	}
	for name, apply := range set {
		if s.flags.Changed(name) {
			apply()
		}
	}

	if _, ok := cfg.UI.SlimeColors[out.Color]; !ok {
		return out, fmt.Errorf("unknown color %q", out.Color)
	}
	return out, nil
}

// SetLogLevel configures the default logger from a level name.
func SetLogLevel(name string) error {
	level, err := log.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	return nil
}
