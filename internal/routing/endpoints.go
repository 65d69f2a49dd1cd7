package routing

import (
	"fmt"

	"github.com/gbtux/teammanager/internal/domain"
)

// Point is a location in pixel space.
type Point struct {
	X float64
	Y float64
}

// Endpoints are the anchor points of one dependency arrow. TargetFromRight
// is set when the arrow enters the target through its right edge.
type Endpoints struct {
	Source          Point
	Target          Point
	TargetFromRight bool
}

// EndpointsFor anchors a dependency on its features' rendered rectangles.
// It reports false when either feature has no known position yet.
func EndpointsFor(dep domain.Dependency, positions map[string]domain.FeaturePosition) (Endpoints, bool) {
	source, ok := positions[dep.SourceID]
	if !ok {
		return Endpoints{}, false
	}
	target, ok := positions[dep.TargetID]
	if !ok {
		return Endpoints{}, false
	}

	e := Endpoints{
		Source: Point{Y: source.CenterY()},
		Target: Point{Y: target.CenterY()},
	}
	switch dep.Type {
	case domain.DependencyFinishToStart:
		e.Source.X, e.Target.X = source.Right(), target.Left
	case domain.DependencyStartToStart:
		e.Source.X, e.Target.X = source.Left, target.Left
	case domain.DependencyFinishToFinish:
		e.Source.X, e.Target.X = source.Right(), target.Right()
		e.TargetFromRight = true
	case domain.DependencyStartToFinish:
		e.Source.X, e.Target.X = source.Left, target.Right()
		e.TargetFromRight = true
	default:
		panic(fmt.Sprintf("routing: unknown dependency type %q", dep.Type))
	}
	return e, true
}
