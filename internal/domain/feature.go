package domain

import (
	"fmt"
	"time"
)

// Feature is a schedulable bar on the Gantt chart: a task or a milestone.
type Feature struct {
	ID        string
	ProjectID string
	Name      string
	Status    FeatureStatus
	Lane      string
	StartAt   time.Time
	EndAt     time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the invariants enforced at the storage and import boundary.
func (f *Feature) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("feature name is required")
	}
	if f.EndAt.Before(f.StartAt) {
		return fmt.Errorf("feature %q ends (%s) before it starts (%s)",
			f.Name, f.EndAt.Format(DateLayout), f.StartAt.Format(DateLayout))
	}
	return nil
}

// Window returns the feature's current date range.
func (f Feature) Window() Window {
	return Window{StartAt: f.StartAt, EndAt: f.EndAt}
}

// Window is a start/end pair.
type Window struct {
	StartAt time.Time
	EndAt   time.Time
}

// Equal reports whether both bounds are the same instant.
func (w Window) Equal(o Window) bool {
	return w.StartAt.Equal(o.StartAt) && w.EndAt.Equal(o.EndAt)
}

// FeatureUpdate is a proposed new window for one feature. The caller merges
// updates into its own store; nothing in the engine retains them.
type FeatureUpdate struct {
	ID      string
	StartAt time.Time
	EndAt   time.Time
}

// Window returns the update's date range.
func (u FeatureUpdate) Window() Window {
	return Window{StartAt: u.StartAt, EndAt: u.EndAt}
}

// DateLayout is the date format used for input and display.
const DateLayout = "2006-01-02"
