package scheduler

import (
	"fmt"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/timeline"
)

// Duration is the whole-day length of a window.
func Duration(w domain.Window) int {
	return timeline.DifferenceInDays(w.EndAt, w.StartAt)
}

// TargetWindow computes where a dependency of type t places its target,
// keeping the target's current duration.
func TargetWindow(source, target domain.Window, t domain.DependencyType) domain.Window {
	duration := Duration(target)
	start := ConstraintStart(source, duration, t)
	return domain.Window{StartAt: start, EndAt: timeline.AddDays(start, duration)}
}

// ConstraintStart is the earliest start a dependency of type t allows for a
// target lasting duration days.
func ConstraintStart(source domain.Window, duration int, t domain.DependencyType) time.Time {
	switch t {
	case domain.DependencyFinishToStart:
		return source.EndAt
	case domain.DependencyStartToStart:
		return source.StartAt
	case domain.DependencyFinishToFinish:
		return timeline.AddDays(source.EndAt, -duration)
	case domain.DependencyStartToFinish:
		return timeline.AddDays(source.StartAt, -duration)
	default:
		panic(fmt.Sprintf("scheduler: unknown dependency type %q", t))
	}
}
