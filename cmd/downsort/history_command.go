package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"downsort/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent organizing runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			if store == nil {
				return errors.New("history is disabled (set history.enabled = true)")
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
				return nil
			}

			headers := []string{"Run", "Started", "Target", "Moved", "Failed", "Skipped"}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					shortID(run.ID),
					formatWhen(run.Started),
					run.Target,
					strconv.Itoa(run.Moved),
					strconv.Itoa(run.Failed),
					strconv.Itoa(run.Skipped),
				})
			}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight}
			writeTable(cmd.OutOrStdout(), headers, rows, aligns)
			return nil
		},
	}

	historyCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	return historyCmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show per-file outcomes of one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			if store == nil {
				return errors.New("history is disabled (set history.enabled = true)")
			}
			defer store.Close()

			runID, err := resolveRunID(cmd, store, args[0])
			if err != nil {
				return err
			}

			moves, err := store.MovesForRun(cmd.Context(), runID)
			if err != nil {
				return err
			}
			if len(moves) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No outcomes recorded for run %s.\n", args[0])
				return nil
			}

			headers := []string{"File", "Category", "Status", "Detail"}
			rows := make([][]string, 0, len(moves))
			for _, move := range moves {
				detail := move.FinalPath
				if move.Status == history.StatusFailed {
					detail = move.Reason
				}
				rows = append(rows, []string{move.SourceName, move.Category, move.Status, detail})
			}
			writeTable(cmd.OutOrStdout(), headers, rows, nil)
			return nil
		},
	}
}

// resolveRunID accepts either a full run id or the shortened prefix printed
// by `downsort history`.
func resolveRunID(cmd *cobra.Command, store *history.Store, arg string) (string, error) {
	if len(arg) >= fullRunIDLength {
		return arg, nil
	}
	runs, err := store.RecentRuns(cmd.Context(), 1000)
	if err != nil {
		return "", err
	}
	var match string
	for _, run := range runs {
		if shortID(run.ID) == arg || run.ID == arg {
			if match != "" {
				return "", fmt.Errorf("run id %q is ambiguous", arg)
			}
			match = run.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no run found for id %q", arg)
	}
	return match, nil
}
