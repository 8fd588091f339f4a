package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/automoto/slimerun/assets"
	"github.com/automoto/slimerun/cli"
	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/game"
	"github.com/automoto/slimerun/systems"
	"github.com/spf13/cobra"
)

var (
	runStage     int
	runLevel     string
	runScript    string
	runMaxFrames int
	runRealtime  bool
	runSave      bool
	runSetup     *cli.SetupFlags
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play one stage headless",
	Long: `Play one stage with scripted input or the built-in autopilot and print
the outcome.

A script is a comma separated list of steps "actions*frames", where actions
are joined with "+" from: left, right, jump, fire, exit, idle.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runStage, "stage", 1, "Stage to play")
	runCmd.Flags().StringVar(&runLevel, "level", "", "TMX layout file (default: embedded meadow)")
	runCmd.Flags().StringVar(&runScript, "script", "", "Input script (default: autopilot)")
	runCmd.Flags().IntVar(&runMaxFrames, "max-frames", 60*60*5, "Give up after this many frames")
	runCmd.Flags().BoolVar(&runRealtime, "realtime", false, "Run at the real tick rate instead of as fast as possible")
	runCmd.Flags().BoolVar(&runSave, "save", false, "Record the result in the saved results")
	runSetup = cli.BindSetupFlags(runCmd.Flags())
}

func runRun(cmd *cobra.Command, args []string) error {
	layout, err := assets.LoadLayout(runLevel)
	if err != nil {
		return err
	}
	table, err := assets.LoadStages(flagStages)
	if err != nil {
		return err
	}
	setup, err := runSetup.Resolve(cfg.Setup)
	if err != nil {
		return err
	}

	var input game.InputSource = game.NewAutopilot()
	if runScript != "" {
		script, err := game.ParseScript(runScript)
		if err != nil {
			return err
		}
		input = script
	}

	driver := game.NewDriver(layout, table)
	if err := driver.Start(runStage, setup, 0); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frames, err := game.NewLoop(driver, input, cfg.C.TPS, runRealtime).
		WithFrameLimit(runMaxFrames).
		Run(ctx, 0)
	if err != nil {
		return err
	}

	o := driver.Outcome()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Stage %d: %s after %d frames\n", o.Stage, o.State, frames)
	fmt.Fprintf(out, "  Time:            %s\n", o.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "  Slimes defeated: %d\n", o.SlimesDefeated)
	fmt.Fprintf(out, "  XP from slimes:  %d\n", o.SlimeXP)
	fmt.Fprintf(out, "  XP from level:   %d\n", o.StageXP)
	fmt.Fprintf(out, "  Total XP:        %d\n", o.TotalXP)

	if runSave && o.State.Ended() {
		store := systems.OpenStore("slimerun")
		if _, err := store.RecordResult(o.Stage, o.State == cfg.StateCompleted, o.Elapsed, o.TotalXP); err != nil {
			return err
		}
	}
	return nil
}
