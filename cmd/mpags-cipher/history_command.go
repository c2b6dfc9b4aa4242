package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"mpags/internal/history"
)

const defaultHistoryLimit = 20

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent cipher runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !cfg.History.Enabled {
				fmt.Fprintln(out, "Run history is disabled; set history.enabled = true in the config to record runs")
				return nil
			}

			store, err := ctx.openHistory()
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput {
				if runs == nil {
					runs = []history.Run{}
				}
				return writeJSON(cmd, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			fmt.Fprintln(out, renderHistoryTable(runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func renderHistoryTable(runs []history.Run) string {
	headers := []string{"Started", "Run", "Mode", "Ciphers", "In", "Out", "Chunks", "Duration", "Legacy", "Status"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		status := string(run.Status)
		if run.Error != "" {
			status += ": " + run.Error
		}
		rows = append(rows, []string{
			run.StartedAt.Local().Format(time.DateTime),
			shortID(run.ID),
			run.Mode,
			run.Ciphers,
			strconv.Itoa(run.InputRunes),
			strconv.Itoa(run.OutputRunes),
			strconv.Itoa(run.Workers),
			run.Duration.Round(time.Microsecond).String(),
			yesNo(run.LegacyChunking),
			status,
		})
	}
	return renderTable(headers, rows, aligns)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
