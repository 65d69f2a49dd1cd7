package cli

import (
	"time"

	"github.com/gbtux/teammanager/internal/config"
	"github.com/gbtux/teammanager/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects     service.ProjectService
	Features     service.FeatureService
	Dependencies service.DependencyService
	Gantt        service.GanttService
	Import       service.ImportService

	// Timeline holds the default chart geometry; flags override it.
	Timeline config.TimelineConf
	// Now is the clock used for "today"; nil means time.Now.
	Now func() time.Time
}

func (a *App) today() time.Time {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	y, m, d := now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewRootCmd creates the top-level "teammanager" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "teammanager",
		Short:         "Gantt planning with dependency-aware scheduling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newFeatureCmd(app),
		newDepCmd(app),
		newScheduleCmd(app),
		newPathsCmd(app),
		newTimelineCmd(app),
		newImportCmd(app),
	)

	return root
}
