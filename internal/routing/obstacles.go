package routing

import (
	"math"
	"slices"
	"strings"

	"github.com/gbtux/teammanager/internal/domain"
)

const (
	probeStep       = 20.0
	probeIterations = 20
)

// VerticalDirection is the way FindSafeHorizontalY probes.
type VerticalDirection string

const (
	Above VerticalDirection = "above"
	Below VerticalDirection = "below"
)

// HorizontalDirection is the way FindSafeVerticalX probes.
type HorizontalDirection string

const (
	Left  HorizontalDirection = "left"
	Right HorizontalDirection = "right"
)

type SafeHorizontalYParams struct {
	BaseY     float64
	Direction VerticalDirection
	MinX      float64
	MaxX      float64
	Obstacles []domain.Obstacle
}

type SafeVerticalXParams struct {
	BaseX     float64
	Direction HorizontalDirection
	MinY      float64
	MaxY      float64
	Obstacles []domain.Obstacle
}

// HorizontalLineIntersects reports whether the segment y, x1..x2 passes
// through the interior of o. Touching an edge does not count.
func HorizontalLineIntersects(y, x1, x2 float64, o domain.Obstacle) bool {
	if y <= o.Top || y >= o.Bottom {
		return false
	}
	return !(math.Max(x1, x2) <= o.Left || math.Min(x1, x2) >= o.Right)
}

// VerticalLineIntersects reports whether the segment x, y1..y2 passes
// through the interior of o. Touching an edge does not count.
func VerticalLineIntersects(x, y1, y2 float64, o domain.Obstacle) bool {
	if x <= o.Left || x >= o.Right {
		return false
	}
	return !(math.Max(y1, y2) <= o.Top || math.Min(y1, y2) >= o.Bottom)
}

// FindSafeHorizontalY walks away from BaseY in fixed steps and returns the
// first row whose segment MinX..MaxX hits no obstacle. BaseY is returned
// when every probe collides.
func FindSafeHorizontalY(p SafeHorizontalYParams) float64 {
	sign := 1.0
	if p.Direction == Above {
		sign = -1
	}
	for i := 0; i < probeIterations; i++ {
		y := p.BaseY + sign*float64(i)*probeStep
		if !slices.ContainsFunc(p.Obstacles, func(o domain.Obstacle) bool {
			return HorizontalLineIntersects(y, p.MinX, p.MaxX, o)
		}) {
			return y
		}
	}
	return p.BaseY
}

// FindSafeVerticalX is FindSafeHorizontalY for vertical segments.
func FindSafeVerticalX(p SafeVerticalXParams) float64 {
	sign := 1.0
	if p.Direction == Left {
		sign = -1
	}
	for i := 0; i < probeIterations; i++ {
		x := p.BaseX + sign*float64(i)*probeStep
		if !slices.ContainsFunc(p.Obstacles, func(o domain.Obstacle) bool {
			return VerticalLineIntersects(x, p.MinY, p.MaxY, o)
		}) {
			return x
		}
	}
	return p.BaseX
}

// ObstaclesFor expands every position by margin, skipping the excluded ids.
// The result is ordered by feature id.
func ObstaclesFor(positions map[string]domain.FeaturePosition, margin float64, exclude ...string) []domain.Obstacle {
	out := make([]domain.Obstacle, 0, len(positions))
	for id, p := range positions {
		if slices.Contains(exclude, id) {
			continue
		}
		out = append(out, domain.ObstacleFrom(p, margin))
	}
	slices.SortFunc(out, func(a, b domain.Obstacle) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}
