package scheduler

import "github.com/gbtux/teammanager/internal/domain"

// Conflict records a dependency that wanted to move a feature after the
// feature had already been settled by an earlier path.
type Conflict struct {
	FeatureID    string
	DependencyID string
	Kept         domain.Window
	Discarded    domain.Window
}

// Result is the outcome of a forward propagation.
type Result struct {
	Updates   []domain.FeatureUpdate
	Conflicts []Conflict
}

// AutoSchedule applies window to the moved feature and pushes the change
// downstream, breadth first, through its outgoing dependencies. The first
// path to settle a feature wins; later disagreeing paths are reported as
// conflicts. The caller's features are never modified.
func AutoSchedule(movedID string, window domain.Window, features []domain.Feature, deps []domain.Dependency) (*Result, error) {
	working := cloneWindows(features)
	result := &Result{}
	if _, ok := working[movedID]; !ok {
		return result, nil
	}

	g := NewGraph(knownDependencies(deps, working))
	if err := g.DetectCycleFrom(movedID); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	record := func(id string, w domain.Window) {
		working[id] = w
		u := domain.FeatureUpdate{ID: id, StartAt: w.StartAt, EndAt: w.EndAt}
		if i, ok := index[id]; ok {
			result.Updates[i] = u
			return
		}
		index[id] = len(result.Updates)
		result.Updates = append(result.Updates, u)
	}

	record(movedID, window)
	queue := []string{movedID}
	settled := make(map[string]bool)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if settled[id] {
			continue
		}
		settled[id] = true

		source := working[id]
		for _, d := range g.Successors(id) {
			current := working[d.TargetID]
			next := TargetWindow(source, current, d.Type)
			if next.Equal(current) {
				continue
			}
			if settled[d.TargetID] {
				result.Conflicts = append(result.Conflicts, Conflict{
					FeatureID:    d.TargetID,
					DependencyID: d.ID,
					Kept:         current,
					Discarded:    next,
				})
				continue
			}
			record(d.TargetID, next)
			queue = append(queue, d.TargetID)
		}
	}
	return result, nil
}

func cloneWindows(features []domain.Feature) map[string]domain.Window {
	m := make(map[string]domain.Window, len(features))
	for i := range features {
		m[features[i].ID] = features[i].Window()
	}
	return m
}

// knownDependencies drops dependencies that reference a feature outside the
// working set.
func knownDependencies(deps []domain.Dependency, working map[string]domain.Window) []domain.Dependency {
	out := make([]domain.Dependency, 0, len(deps))
	for _, d := range deps {
		_, okSource := working[d.SourceID]
		_, okTarget := working[d.TargetID]
		if okSource && okTarget {
			out = append(out, d)
		}
	}
	return out
}
