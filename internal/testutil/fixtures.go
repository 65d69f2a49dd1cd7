package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

// Date parses a YYYY-MM-DD literal as UTC midnight and panics on bad input.
func Date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(fmt.Sprintf("testutil.Date(%q): %v", s, err))
	}
	return t
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithShortID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ShortID = id
	}
}

func WithStartDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = d
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Project{
		ID:        uuid.New().String(),
		ShortID:   defaultShortID(name),
		Name:      name,
		StartDate: Date("2026-01-01"),
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Feature options
type FeatureOption func(*domain.Feature)

// WithWindow sets the feature's dates from YYYY-MM-DD literals.
func WithWindow(start, end string) FeatureOption {
	return func(f *domain.Feature) {
		f.StartAt = Date(start)
		f.EndAt = Date(end)
	}
}

func WithFeatureStatus(s domain.FeatureStatus) FeatureOption {
	return func(f *domain.Feature) {
		f.Status = s
	}
}

func WithLane(lane string) FeatureOption {
	return func(f *domain.Feature) {
		f.Lane = lane
	}
}

func WithFeatureID(id string) FeatureOption {
	return func(f *domain.Feature) {
		f.ID = id
	}
}

func NewTestFeature(projectID, name string, opts ...FeatureOption) *domain.Feature {
	now := time.Now().UTC().Truncate(time.Second)
	f := &domain.Feature{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Status:    domain.FeaturePlanned,
		StartAt:   Date("2026-01-01"),
		EndAt:     Date("2026-01-05"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Dependency options
type DependencyOption func(*domain.Dependency)

func WithDependencyType(t domain.DependencyType) DependencyOption {
	return func(d *domain.Dependency) {
		d.Type = t
	}
}

func WithColor(c string) DependencyOption {
	return func(d *domain.Dependency) {
		d.Color = c
	}
}

// NewTestDependency links source to target with a finish-to-start
// dependency unless an option says otherwise.
func NewTestDependency(projectID, sourceID, targetID string, opts ...DependencyOption) *domain.Dependency {
	d := &domain.Dependency{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		SourceID:  sourceID,
		TargetID:  targetID,
		Type:      domain.DependencyFinishToStart,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
