package routing

import "github.com/gbtux/teammanager/internal/domain"

const (
	DefaultColor   = "#94a3b8"
	ObstacleMargin = 4.0
)

// DependencyPath is one routed arrow ready for rendering.
type DependencyPath struct {
	DependencyID string
	Path         string
	Color        string
}

// Layer routes every dependency of a chart against a settled position
// snapshot. Each arrow avoids all bars except its own two ends.
type Layer struct {
	DefaultColor string
	Margin       float64
}

func NewLayer() *Layer {
	return &Layer{DefaultColor: DefaultColor, Margin: ObstacleMargin}
}

// Paths returns one path per dependency whose features both have a
// position, in dependency order. Dependencies still waiting for a position
// and degenerate routes are left out.
func (l *Layer) Paths(deps []domain.Dependency, positions map[string]domain.FeaturePosition) []DependencyPath {
	var out []DependencyPath
	for _, d := range deps {
		e, ok := EndpointsFor(d, positions)
		if !ok {
			continue
		}
		path := Path(PathParams{
			Source:          e.Source,
			Target:          e.Target,
			TargetFromRight: e.TargetFromRight,
			Obstacles:       ObstaclesFor(positions, l.Margin, d.SourceID, d.TargetID),
		})
		if path == "" {
			continue
		}
		color := d.Color
		if color == "" {
			color = l.DefaultColor
		}
		out = append(out, DependencyPath{DependencyID: d.ID, Path: path, Color: color})
	}
	return out
}
