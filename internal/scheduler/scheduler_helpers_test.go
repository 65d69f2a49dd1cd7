package scheduler

import (
	"testing"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func window(t *testing.T, start, end string) domain.Window {
	t.Helper()
	return domain.Window{StartAt: day(t, start), EndAt: day(t, end)}
}

func feature(t *testing.T, id, start, end string) domain.Feature {
	t.Helper()
	return domain.Feature{ID: id, Name: id, StartAt: day(t, start), EndAt: day(t, end)}
}

func dep(id, source, target string, typ domain.DependencyType) domain.Dependency {
	return domain.Dependency{ID: id, SourceID: source, TargetID: target, Type: typ}
}

func update(t *testing.T, id, start, end string) domain.FeatureUpdate {
	t.Helper()
	return domain.FeatureUpdate{ID: id, StartAt: day(t, start), EndAt: day(t, end)}
}

// apply merges updates into a copy of features, the way a caller would.
func apply(features []domain.Feature, updates []domain.FeatureUpdate) []domain.Feature {
	out := make([]domain.Feature, len(features))
	copy(out, features)
	for _, u := range updates {
		for i := range out {
			if out[i].ID == u.ID {
				out[i].StartAt = u.StartAt
				out[i].EndAt = u.EndAt
			}
		}
	}
	return out
}
