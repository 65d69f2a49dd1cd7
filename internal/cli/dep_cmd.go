package cli

import (
	"fmt"
	"strings"

	"github.com/gbtux/teammanager/internal/cli/formatter"
	"github.com/gbtux/teammanager/internal/domain"
	"github.com/spf13/cobra"
)

func newDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dep",
		Aliases: []string{"dependency"},
		Short:   "Manage dependencies between features",
	}

	cmd.AddCommand(
		newDepAddCmd(app),
		newDepListCmd(app),
		newDepRemoveCmd(app),
	)

	return cmd
}

func newDepAddCmd(app *App) *cobra.Command {
	var projectRef, from, to, typ, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Link two features",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			depType, err := domain.ParseDependencyType(strings.ToUpper(typ))
			if err != nil {
				return err
			}
			source, err := app.Features.Resolve(ctx, p.ID, from)
			if err != nil {
				return err
			}
			target, err := app.Features.Resolve(ctx, p.ID, to)
			if err != nil {
				return err
			}

			d := &domain.Dependency{
				ProjectID: p.ID,
				SourceID:  source.ID,
				TargetID:  target.ID,
				Type:      depType,
				Color:     color,
			}
			if err := app.Dependencies.Create(ctx, d); err != nil {
				return reportCycle(cmd, app, p.ID, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Linked %s → %s (%s)\n", source.Name, target.Name, d.Type)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project short ID or ID")
	cmd.Flags().StringVar(&from, "from", "", "Source feature (ID or prefix)")
	cmd.Flags().StringVar(&to, "to", "", "Target feature (ID or prefix)")
	cmd.Flags().StringVar(&typ, "type", string(domain.DependencyFinishToStart), "Dependency type (FS, SS, FF, SF)")
	cmd.Flags().StringVar(&color, "color", "", "Arrow colour (CSS colour, optional)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newDepListCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			deps, err := app.Dependencies.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}
			names, err := featureNames(ctx, app, p.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDependencyList(deps, names))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project short ID or ID")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newDepRemoveCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "remove <dependency>",
		Short: "Delete a dependency by ID or ID prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			deps, err := app.Dependencies.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}
			var matches []domain.Dependency
			for _, d := range deps {
				if strings.HasPrefix(d.ID, args[0]) {
					matches = append(matches, d)
				}
			}
			switch len(matches) {
			case 0:
				return fmt.Errorf("dependency not found: %q", args[0])
			case 1:
			default:
				return fmt.Errorf("dependency ID prefix %q is ambiguous (%d matches)", args[0], len(matches))
			}
			if err := app.Dependencies.Delete(ctx, matches[0].ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed dependency %s\n", matches[0].ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project short ID or ID")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
