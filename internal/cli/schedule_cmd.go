package cli

import (
	"errors"
	"fmt"

	"github.com/gbtux/teammanager/internal/cli/formatter"
	"github.com/gbtux/teammanager/internal/scheduler"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Recalculate or check a project's schedule",
	}

	cmd.AddCommand(
		newScheduleRecalcCmd(app),
		newScheduleCheckCmd(app),
	)

	return cmd
}

func newScheduleRecalcCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "recalc",
		Short: "Snap every feature to the latest start its dependencies allow",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			updates, err := app.Gantt.Recalculate(ctx, p.ID)
			if err != nil {
				return reportCycle(cmd, app, p.ID, err)
			}
			names, err := featureNames(ctx, app, p.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUpdates("Recalculated "+p.DisplayID(), updates, nil, names))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project short ID or ID")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newScheduleCheckCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report dependency cycles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			if err := app.Gantt.CheckCycles(ctx, p.ID); err != nil {
				return reportCycle(cmd, app, p.ID, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ No dependency cycles"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project short ID or ID")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

// reportCycle prints a readable cycle before returning err. Other errors
// pass through untouched.
func reportCycle(cmd *cobra.Command, app *App, projectID string, err error) error {
	var cycle *scheduler.CycleError
	if !errors.As(err, &cycle) {
		return err
	}
	names, nameErr := featureNames(cmd.Context(), app, projectID)
	if nameErr != nil {
		return errors.Join(err, nameErr)
	}
	fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatCycle(cycle, names))
	return err
}
