package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/gbtux/teammanager/internal/cli/formatter"
	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/service"
	"github.com/spf13/cobra"
)

func newPathsCmd(app *App) *cobra.Command {
	var projectRef, svgPath string
	var r domain.Range
	var zoom int
	var start time.Time

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Lay out a project and route its dependency arrows",
		Long: `Lay out a project's features on the timeline and print the SVG path of
every dependency arrow. With --svg the chart is written as a standalone SVG
document instead ("-" writes to stdout).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			req := service.PathsRequest{
				ProjectID: p.ID,
				Range:     r,
				Zoom:      zoom,
				Start:     start,
				Rows:      service.RowSize{Height: app.Timeline.RowHeight, Inset: app.Timeline.BarInset},
			}

			if svgPath != "" {
				var buf bytes.Buffer
				if err := app.Gantt.RenderSVG(ctx, &buf, req); err != nil {
					return err
				}
				if svgPath == "-" {
					_, err := cmd.OutOrStdout().Write(buf.Bytes())
					return err
				}
				if err := os.WriteFile(svgPath, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", svgPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svgPath)
				return nil
			}

			res, err := app.Gantt.Paths(ctx, req)
			if err != nil {
				return err
			}
			names, err := featureNames(ctx, app, p.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPaths(res.Positions, res.Paths, names))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project short ID or ID")
	cmd.Flags().StringVar(&svgPath, "svg", "", "Write an SVG chart to this file (- for stdout)")
	cmd.Flags().Var(dateValue{&start}, "start", "Timeline origin (YYYY-MM-DD, default: start of the earliest feature's column)")
	addTimelineFlags(cmd.Flags(), app, &r, &zoom)
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
