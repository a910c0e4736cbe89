package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"downsort/internal/logging"
	"downsort/internal/organizer"
	"downsort/internal/preflight"
	"downsort/internal/runlock"
)

// minFreeSpaceBytes is the threshold below which a free-space warning is
// logged before organizing (cross-device fallbacks copy file contents).
const minFreeSpaceBytes = 64 * 1024 * 1024

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "organize [path]",
		Short: "Move files into category folders by type and age",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target, err := ctx.resolveTarget(args)
			if err != nil {
				return err
			}

			if result := preflight.CheckTarget(target); !result.Passed {
				return fmt.Errorf("cannot organize: %s", result.Detail)
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if dryRun {
				engine, err := organizer.New(cfg, nil, logger)
				if err != nil {
					return err
				}
				report, err := engine.Plan(cmd.Context(), target)
				if err != nil {
					return err
				}
				renderPlan(cmd.OutOrStdout(), report)
				return nil
			}

			if space := preflight.CheckFreeSpace(target, minFreeSpaceBytes); !space.Passed {
				logger.Warn("low free space on target volume", logging.String("detail", space.Detail))
			}

			lock, err := runlock.Acquire(cfg.Paths.DataDir, target)
			if err != nil {
				return err
			}
			defer func() { _ = lock.Release() }()

			store, err := ctx.openStore()
			if err != nil {
				// History is informational; organize anyway.
				logger.Warn("history unavailable", logging.Error(err))
				store = nil
			}
			if store != nil {
				defer store.Close()
			}

			engine, err := organizer.New(cfg, store, logger)
			if err != nil {
				return err
			}
			report, err := engine.Run(cmd.Context(), target)
			if err != nil {
				return err
			}

			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show planned moves without touching any file")
	return cmd
}
