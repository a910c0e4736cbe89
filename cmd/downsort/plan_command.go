package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"downsort/internal/organizer"
	"downsort/internal/preflight"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [path]",
		Short: "Preview where each file would be moved",
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
				return fmt.Errorf("cannot plan: %s", result.Detail)
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
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
		},
	}
}
