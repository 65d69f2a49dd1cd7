package cli

import (
	"fmt"
	"time"

	"github.com/gbtux/teammanager/internal/cli/formatter"
	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/timeline"
	"github.com/spf13/cobra"
)

func newFeatureCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "feature",
		Aliases: []string{"f"},
		Short:   "Manage features (Gantt bars)",
	}

	cmd.AddCommand(
		newFeatureAddCmd(app),
		newFeatureListCmd(app),
		newFeatureMoveCmd(app),
		newFeatureRemoveCmd(app),
	)

	return cmd
}

func newFeatureAddCmd(app *App) *cobra.Command {
	var projectRef, name, lane, status string
	var start, end time.Time

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a feature to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			if !domain.ValidFeatureStatuses[status] {
				return fmt.Errorf("invalid status %q (expected planned, in_progress, done or blocked)", status)
			}
			if end.IsZero() {
				end = start
			}
			f := &domain.Feature{
				ProjectID: p.ID,
				Name:      name,
				Lane:      lane,
				Status:    domain.FeatureStatus(status),
				StartAt:   start,
				EndAt:     end,
			}
			if err := app.Features.Create(ctx, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added feature %s (%s) %s\n", f.Name, formatter.TruncID(f.ID), formatter.Span(f.StartAt, f.EndAt))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project short ID or ID")
	cmd.Flags().StringVar(&name, "name", "", "Feature name")
	cmd.Flags().StringVar(&lane, "lane", "", "Lane shared with other features (optional)")
	cmd.Flags().StringVar(&status, "status", string(domain.FeaturePlanned), "Status (planned, in_progress, done, blocked)")
	cmd.Flags().Var(dateValue{&start}, "start", "Start date (YYYY-MM-DD)")
	cmd.Flags().Var(dateValue{&end}, "end", "End date (YYYY-MM-DD, default: start, i.e. a milestone)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newFeatureListCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's features",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			features, err := app.Features.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFeatureList(p, features))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project short ID or ID")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newFeatureMoveCmd(app *App) *cobra.Command {
	var projectRef string
	var start, end time.Time
	var by int

	cmd := &cobra.Command{
		Use:   "move <feature>",
		Short: "Move a feature and reschedule everything that depends on it",
		Long: `Move a feature to a new window. Dependent features are pushed along
their dependencies (FS, SS, FF, SF) in the same transaction.

Give --start (and optionally --end; the duration is kept otherwise), or
--by to shift the feature by a number of days.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			f, err := app.Features.Resolve(ctx, p.ID, args[0])
			if err != nil {
				return err
			}

			window, err := moveWindow(f, start, end, by, cmd.Flags().Changed("by"))
			if err != nil {
				return err
			}
			res, err := app.Gantt.MoveFeature(ctx, f.ID, window)
			if err != nil {
				return reportCycle(cmd, app, p.ID, err)
			}

			names, err := featureNames(ctx, app, p.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUpdates("Moved "+f.Name, res.Updates, res.Conflicts, names))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project short ID or ID")
	cmd.Flags().Var(dateValue{&start}, "start", "New start date (YYYY-MM-DD)")
	cmd.Flags().Var(dateValue{&end}, "end", "New end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&by, "by", 0, "Shift by this many days (negative moves earlier)")
	cmd.MarkFlagsMutuallyExclusive("start", "by")
	cmd.MarkFlagsMutuallyExclusive("end", "by")
	cmd.MarkFlagsOneRequired("start", "by")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

// moveWindow derives the requested window for a move. Without an explicit
// end the feature keeps its duration.
func moveWindow(f *domain.Feature, start, end time.Time, by int, shift bool) (domain.Window, error) {
	if shift {
		return domain.Window{StartAt: timeline.AddDays(f.StartAt, by), EndAt: timeline.AddDays(f.EndAt, by)}, nil
	}
	if start.IsZero() {
		return domain.Window{}, fmt.Errorf("--start or --by is required")
	}
	if end.IsZero() {
		end = timeline.AddDays(start, timeline.DifferenceInDays(f.EndAt, f.StartAt))
	}
	return domain.Window{StartAt: start, EndAt: end}, nil
}

func newFeatureRemoveCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "remove <feature>",
		Short: "Delete a feature and its dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			f, err := app.Features.Resolve(ctx, p.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Features.Delete(ctx, f.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed feature %s\n", f.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project short ID or ID")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
