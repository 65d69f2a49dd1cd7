package scheduler

import (
	"time"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/timeline"
)

// Recalculate makes the whole schedule consistent with its dependencies.
// Features are visited in topological order; each dependent feature snaps
// its start to the latest start its predecessors allow and keeps its
// duration. Running it again on its own output yields no updates.
func Recalculate(features []domain.Feature, deps []domain.Dependency) ([]domain.FeatureUpdate, error) {
	working := cloneWindows(features)
	g := NewGraph(knownDependencies(deps, working))
	if err := g.DetectCycle(); err != nil {
		return nil, err
	}

	ids := make([]string, len(features))
	for i := range features {
		ids[i] = features[i].ID
	}

	var updates []domain.FeatureUpdate
	for _, id := range g.TopologicalOrder(ids) {
		incoming := g.Predecessors(id)
		if len(incoming) == 0 {
			continue
		}
		current := working[id]
		duration := Duration(current)

		var start time.Time
		for i, d := range incoming {
			s := ConstraintStart(working[d.SourceID], duration, d.Type)
			if i == 0 || s.After(start) {
				start = s
			}
		}
		if start.Equal(current.StartAt) {
			continue
		}
		next := domain.Window{StartAt: start, EndAt: timeline.AddDays(start, duration)}
		working[id] = next
		updates = append(updates, domain.FeatureUpdate{ID: id, StartAt: next.StartAt, EndAt: next.EndAt})
	}
	return updates, nil
}
