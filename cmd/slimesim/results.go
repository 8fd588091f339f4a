package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/automoto/slimerun/systems"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show saved stage results",
	Args:  cobra.NoArgs,
	RunE:  runResults,
}

func runResults(cmd *cobra.Command, args []string) error {
	results := systems.OpenStore("slimerun").LoadResults()
	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No results recorded yet.")
		return nil
	}

	stages := make([]int, 0, len(results))
	for key := range results {
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		stages = append(stages, n)
	}
	sort.Ints(stages)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Stage", "Cleared", "Failed", "Best XP", "Fastest")
	for _, n := range stages {
		rec := results[strconv.Itoa(n)]
		fastest := "-"
		if rec.FastestMs > 0 {
			fastest = (time.Duration(rec.FastestMs) * time.Millisecond).String()
		}
		t.Row(strconv.Itoa(n),
			strconv.Itoa(rec.Completions), strconv.Itoa(rec.Failures),
			strconv.Itoa(rec.BestTotalXP), fastest)
	}

	fmt.Fprintln(out, t.String())
	return nil
}
