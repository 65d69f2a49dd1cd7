package formatter

import (
	"strings"

	"github.com/gbtux/teammanager/internal/domain"
)

// FormatProjectList renders the project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return Dim("No projects yet. Create one with `teammanager project add`.") + "\n"
	}

	headers := []string{"ID", "NAME", "START", "STATUS"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		id := p.ShortID
		if strings.TrimSpace(id) == "" {
			id = TruncID(p.ID)
		}
		if strings.TrimSpace(id) == "" {
			id = "--"
		}
		rows = append(rows, []string{id, Bold(p.Name), Day(p.StartDate), StatusPill(p.Status)})
	}
	return RenderBox("Projects", RenderTable(headers, rows)) + "\n"
}
