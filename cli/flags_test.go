package cli

import (
	"testing"

	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOnlyOverridesChangedFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindSetupFlags(fs)
	require.NoError(t, fs.Parse([]string{"--speed", "9", "--jump-control"}))

	saved := gamemath.StatSetup{Jumping: 4, Speed: 5, Health: 80, Color: "red"}
	got, err := flags.Resolve(saved)
	require.NoError(t, err)

	assert.Equal(t, 4.0, got.Jumping)
	assert.Equal(t, 9.0, got.Speed)
	assert.Equal(t, 80.0, got.Health)
	assert.Equal(t, "red", got.Color)
	assert.True(t, got.JumpControl)
	assert.False(t, got.SpeedControl)
}

func TestResolveDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindSetupFlags(fs)
	require.NoError(t, fs.Parse(nil))

	got, err := flags.Resolve(cfg.Setup)
	require.NoError(t, err)
	assert.Equal(t, cfg.Setup, got)
}

func TestResolveRejectsUnknownColor(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindSetupFlags(fs)
	require.NoError(t, fs.Parse([]string{"--color", "teal"}))

	_, err := flags.Resolve(cfg.Setup)
	assert.Error(t, err)
}

func TestSetLogLevel(t *testing.T) {
	assert.NoError(t, SetLogLevel("debug"))
	assert.Error(t, SetLogLevel("loud"))
	require.NoError(t, SetLogLevel("info"))
}
