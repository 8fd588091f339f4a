// slimerun is the windowed game client.
//
// Usage:
//
//	slimerun [--stage N] [stat flags]
//
// Controls: arrows move, Space/Up jumps, F shoots toward the mouse, X leaves
// through the door, click a slime to inspect it. With tuning enabled, [ and ]
// change jump height and - and = change speed.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/automoto/slimerun/assets"
	"github.com/automoto/slimerun/cli"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/fonts"
	"github.com/automoto/slimerun/game"
	"github.com/automoto/slimerun/scenes"
	"github.com/automoto/slimerun/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Game struct {
	scene scenes.Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

var (
	flagStage    int
	flagLevel    string
	flagStages   string
	flagWatch    bool
	flagLogLevel string
	setupFlags   *cli.SetupFlags
)

var rootCmd = &cobra.Command{
	Use:   "slimerun",
	Short: "Side-scrolling slime platformer",
	RunE:  runGame,
}

func init() {
	rootCmd.Flags().IntVar(&flagStage, "stage", 1, "Stage to play")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "TMX layout file (default: embedded meadow)")
	rootCmd.Flags().StringVar(&flagStages, "stages", "", "Stage table YAML (default: embedded table)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the --stages file when it changes")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	setupFlags = cli.BindSetupFlags(rootCmd.Flags())
}

func runGame(cmd *cobra.Command, args []string) error {
	if err := cli.SetLogLevel(flagLogLevel); err != nil {
		return err
	}
	if flagWatch && flagStages == "" {
		return fmt.Errorf("--watch needs --stages")
	}

	layout, err := assets.LoadLayout(flagLevel)
	if err != nil {
		return err
	}
	table, err := assets.LoadStages(flagStages)
	if err != nil {
		return err
	}
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	store := systems.OpenStore("slimerun")
	base := cfg.Setup
	if saved, ok := store.LoadSetup(); ok {
		base = saved
	}
	setup, err := setupFlags.Resolve(base)
	if err != nil {
		return err
	}
	_ = store.SaveSetup(setup)

	driver := game.NewDriver(layout, table)
	if flagWatch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := driver.WatchStages(ctx, flagStages); err != nil {
			return err
		}
	}

	scene, err := scenes.NewStageScene(driver, store, flagStage, setup)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Slime Run")
	ebiten.SetTPS(cfg.C.TPS)

	log.Info("starting", "stage", flagStage, "layout", layout.Name)
	return ebiten.RunGame(&Game{scene: scene})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
