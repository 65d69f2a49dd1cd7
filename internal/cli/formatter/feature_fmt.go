package formatter

import (
	"fmt"
	"strings"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/scheduler"
)

// FormatFeatureList renders a project's features in scheduling order.
func FormatFeatureList(project *domain.Project, features []*domain.Feature) string {
	title := "Features · " + project.DisplayID()
	if len(features) == 0 {
		return RenderBox(title, Dim("No features.")) + "\n"
	}

	headers := []string{"ID", "NAME", "LANE", "WINDOW", "STATUS"}
	rows := make([][]string, 0, len(features))
	for _, f := range features {
		lane := f.Lane
		if lane == "" {
			lane = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(f.ID),
			Bold(f.Name),
			lane,
			Span(f.StartAt, f.EndAt),
			FeatureStatusPill(f.Status),
		})
	}
	return RenderBox(title, RenderTable(headers, rows)) + "\n"
}

// FormatDependencyList renders dependencies with feature names resolved
// through names (id -> name).
func FormatDependencyList(deps []domain.Dependency, names map[string]string) string {
	if len(deps) == 0 {
		return Dim("No dependencies.") + "\n"
	}

	headers := []string{"ID", "FROM", "TO", "TYPE", "COLOR"}
	rows := make([][]string, 0, len(deps))
	for _, d := range deps {
		color := d.Color
		if color == "" {
			color = Dim("default")
		}
		rows = append(rows, []string{
			TruncID(d.ID),
			nameOr(names, d.SourceID),
			nameOr(names, d.TargetID),
			DependencyTypeBadge(d.Type),
			color,
		})
	}
	return RenderBox("Dependencies", RenderTable(headers, rows)) + "\n"
}

// FormatUpdates lists the windows a scheduling run changed, followed by any
// conflicts it resolved.
func FormatUpdates(title string, updates []domain.FeatureUpdate, conflicts []scheduler.Conflict, names map[string]string) string {
	var b strings.Builder
	b.WriteString(Header(title) + "\n")

	if len(updates) == 0 {
		b.WriteString(Dim("Nothing to reschedule.") + "\n")
	} else {
		rows := make([][]string, 0, len(updates))
		for _, u := range updates {
			rows = append(rows, []string{nameOr(names, u.ID), Span(u.StartAt, u.EndAt)})
		}
		b.WriteString(RenderTable([]string{"FEATURE", "NEW WINDOW"}, rows))
	}

	for _, c := range conflicts {
		fmt.Fprintf(&b, "%s %s kept %s, ignored %s from dependency %s\n",
			StyleYellow.Render("⚠"),
			Bold(nameOr(names, c.FeatureID)),
			Span(c.Kept.StartAt, c.Kept.EndAt),
			Span(c.Discarded.StartAt, c.Discarded.EndAt),
			TruncID(c.DependencyID))
	}
	return b.String()
}

// FormatCycle explains a rejected dependency cycle using feature names.
func FormatCycle(cycle *scheduler.CycleError, names map[string]string) string {
	parts := make([]string, len(cycle.Path))
	for i, id := range cycle.Path {
		parts[i] = nameOr(names, id)
	}
	return StyleRed.Render("✖ Dependency cycle: ") + strings.Join(parts, " → ") + "\n"
}

func nameOr(names map[string]string, id string) string {
	if n, ok := names[id]; ok && n != "" {
		return n
	}
	return TruncID(id)
}
