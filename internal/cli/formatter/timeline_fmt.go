package formatter

import (
	"fmt"
	"strings"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/routing"
	"github.com/gbtux/teammanager/internal/timeline"
)

// FormatHeaders prints one line per header group: the title, then its
// column labels.
func FormatHeaders(groups []timeline.HeaderGroup) string {
	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "%s  %s\n", StyleHeader.Render(g.Title), strings.Join(g.Columns, " "))
	}
	return b.String()
}

// FormatPaths lists every routed arrow next to the layout it was routed on.
func FormatPaths(positions []domain.FeaturePosition, paths []routing.DependencyPath, names map[string]string) string {
	var b strings.Builder

	b.WriteString(Header("Layout") + "\n")
	rows := make([][]string, 0, len(positions))
	for _, p := range positions {
		rows = append(rows, []string{
			nameOr(names, p.ID),
			fmt.Sprintf("%.1f", p.Left),
			fmt.Sprintf("%.1f", p.Top),
			fmt.Sprintf("%.1f", p.Width),
			fmt.Sprintf("%.1f", p.Height),
		})
	}
	b.WriteString(RenderTable([]string{"FEATURE", "LEFT", "TOP", "WIDTH", "HEIGHT"}, rows))

	b.WriteString("\n" + Header("Paths") + "\n")
	if len(paths) == 0 {
		b.WriteString(Dim("No routable dependencies.") + "\n")
	}
	for _, p := range paths {
		fmt.Fprintf(&b, "%s %s %s\n", TruncID(p.DependencyID), colorTag(p.Color), p.Path)
	}
	return b.String()
}

func colorTag(hex string) string {
	return StyleDim.Render("[" + hex + "]")
}
