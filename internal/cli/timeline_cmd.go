package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gbtux/teammanager/internal/cli/formatter"
	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/timeline"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Inspect timeline coordinates",
		Long: `Inspect how dates map to pixel offsets. The timeline renders whole years,
starting with the year before today, exactly as the chart does.`,
	}

	cmd.AddCommand(
		newTimelineOffsetCmd(app),
		newTimelineDateCmd(app),
		newTimelineHeadersCmd(app),
		newTimelineScrollCmd(app),
	)

	return cmd
}

// timelineFlags are shared by the timeline subcommands.
type timelineFlags struct {
	r     domain.Range
	zoom  int
	today time.Time
}

func (f *timelineFlags) register(cmd *cobra.Command, app *App) {
	addTimelineFlags(cmd.Flags(), app, &f.r, &f.zoom)
	cmd.Flags().Var(dateValue{&f.today}, "today", "Pretend today is this date (YYYY-MM-DD)")
}

// data returns the rendered years around today, grown to cover extra.
func (f *timelineFlags) data(app *App, extra ...time.Time) *timeline.Data {
	today := f.today
	if today.IsZero() {
		today = app.today()
	}
	d := timeline.NewData(today)
	for _, t := range extra {
		d.EnsureCovers(t)
	}
	return d
}

func (f *timelineFlags) mapper(d *timeline.Data) timeline.Mapper {
	return timeline.NewMapper(f.r, f.zoom, d.Start())
}

func newTimelineOffsetCmd(app *App) *cobra.Command {
	var flags timelineFlags

	cmd := &cobra.Command{
		Use:   "offset <date>",
		Short: "Print the pixel offset of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.Parse(domain.DateLayout, args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", args[0])
			}
			d := flags.data(app, t)
			m := flags.mapper(d)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s px from %s\n",
				args[0], strconv.FormatFloat(m.OffsetForDate(t), 'f', -1, 64), formatter.Day(d.Start()))
			return nil
		},
	}

	flags.register(cmd, app)
	return cmd
}

func newTimelineDateCmd(app *App) *cobra.Command {
	var flags timelineFlags

	cmd := &cobra.Command{
		Use:   "date <offset>",
		Short: "Print the date under a pixel offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid offset %q: %w", args[0], err)
			}
			d := flags.data(app)
			m := flags.mapper(d)
			fmt.Fprintf(cmd.OutOrStdout(), "%s px  %s\n", args[0], m.DateForOffset(x).Format("2006-01-02 15:04"))
			return nil
		},
	}

	flags.register(cmd, app)
	return cmd
}

func newTimelineHeadersCmd(app *App) *cobra.Command {
	var flags timelineFlags

	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Print the column headers of the rendered years",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := flags.data(app)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHeaders(timeline.Headers(d, flags.r)))
			return nil
		},
	}

	flags.register(cmd, app)
	return cmd
}

func newTimelineScrollCmd(app *App) *cobra.Command {
	var flags timelineFlags
	var clientWidth float64

	cmd := &cobra.Command{
		Use:   "scroll <left>",
		Short: "Simulate a horizontal scroll and report how the timeline grows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid scroll position %q: %w", args[0], err)
			}
			d := flags.data(app)
			scrollWidth := flags.mapper(d).OffsetForDate(d.End())

			v := timeline.NewViewport(d)
			growth := v.Scroll(left, clientWidth, scrollWidth)

			years := d.Years()
			out := cmd.OutOrStdout()
			switch growth {
			case timeline.GrowthPrepended:
				fmt.Fprintf(out, "Prepended %d\n", years[0].Year)
			case timeline.GrowthAppended:
				fmt.Fprintf(out, "Appended %d\n", years[len(years)-1].Year)
			default:
				fmt.Fprintln(out, "No growth")
			}
			fmt.Fprintf(out, "Rendering %d-%d, scroll position %s px\n",
				years[0].Year, years[len(years)-1].Year, strconv.FormatFloat(v.ScrollX, 'f', -1, 64))
			return nil
		},
	}

	flags.register(cmd, app)
	cmd.Flags().Float64Var(&clientWidth, "client-width", 1200, "Visible width of the chart in pixels")
	return cmd
}
