package domain

import "fmt"

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectPaused   ProjectStatus = "paused"
	ProjectDone     ProjectStatus = "done"
	ProjectArchived ProjectStatus = "archived"
)

type FeatureStatus string

const (
	FeaturePlanned    FeatureStatus = "planned"
	FeatureInProgress FeatureStatus = "in_progress"
	FeatureDone       FeatureStatus = "done"
	FeatureBlocked    FeatureStatus = "blocked"
)

// ValidFeatureStatuses is the canonical set of accepted feature status strings.
var ValidFeatureStatuses = map[string]bool{
	"planned": true, "in_progress": true, "done": true, "blocked": true,
}

// Range is the display granularity of the timeline.
type Range string

const (
	RangeDaily     Range = "daily"
	RangeWeekly    Range = "weekly"
	RangeMonthly   Range = "monthly"
	RangeQuarterly Range = "quarterly"
	RangeYearly    Range = "yearly"
)

// Ranges lists every Range in display order.
var Ranges = []Range{RangeDaily, RangeWeekly, RangeMonthly, RangeQuarterly, RangeYearly}

// ParseRange converts a user-supplied string into a Range.
func ParseRange(s string) (Range, error) {
	r := Range(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown range %q (expected daily, weekly, monthly, quarterly or yearly)", s)
	}
	return r, nil
}

func (r Range) Valid() bool {
	switch r {
	case RangeDaily, RangeWeekly, RangeMonthly, RangeQuarterly, RangeYearly:
		return true
	}
	return false
}

// DefaultColumnWidth returns the unzoomed column width in pixels.
func (r Range) DefaultColumnWidth() float64 {
	switch r {
	case RangeWeekly:
		return 80
	case RangeMonthly:
		return 150
	case RangeQuarterly:
		return 100
	case RangeYearly:
		return 200
	default:
		return 50
	}
}
