package main

import (
	"fmt"
	"strconv"

	"github.com/automoto/slimerun/assets"
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Print generated slime stats per stage",
	Args:  cobra.NoArgs,
	RunE:  runStages,
}

func runStages(cmd *cobra.Command, args []string) error {
	stages, err := assets.LoadStages(flagStages)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Stage", "Slime", "Health", "Damage", "Defense", "XP", "Spike", "Bonus XP")

	for _, def := range stages.Stages {
		for i, color := range def.Colors {
			idx, _ := gamemath.ColorIndex(color)
			s := gamemath.GenerateSlimeStats(def.Stage, idx)

			stageCol, spikeCol, bonusCol := "", "", ""
			if i == 0 {
				stageCol = strconv.Itoa(def.Stage)
				spikeCol = strconv.Itoa(gamemath.SpikeDamage(def.Stage))
				bonusCol = strconv.Itoa(gamemath.StageBonusXP(def.Stage))
			}
			t.Row(stageCol, color,
				strconv.Itoa(s.Health), strconv.Itoa(s.Damage),
				strconv.Itoa(s.Defense), strconv.Itoa(s.XP),
				spikeCol, bonusCol)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}
