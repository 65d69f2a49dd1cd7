package service

import (
	"context"
	"io"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/importer"
	"github.com/gbtux/teammanager/internal/routing"
	"github.com/gbtux/teammanager/internal/scheduler"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// Resolve accepts a short ID (case-insensitive) or a full project ID.
	Resolve(ctx context.Context, ref string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type FeatureService interface {
	Create(ctx context.Context, f *domain.Feature) error
	GetByID(ctx context.Context, id string) (*domain.Feature, error)
	// Resolve finds a feature of the project by full ID or unique ID prefix.
	Resolve(ctx context.Context, projectID, ref string) (*domain.Feature, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Feature, error)
	Update(ctx context.Context, f *domain.Feature) error
	Delete(ctx context.Context, id string) error
}

type DependencyService interface {
	Create(ctx context.Context, d *domain.Dependency) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Dependency, error)
	Delete(ctx context.Context, id string) error
}

// MoveResult is the outcome of moving one feature.
type MoveResult struct {
	Updates   []domain.FeatureUpdate
	Conflicts []scheduler.Conflict
}

// PathsRequest selects the timeline geometry used to lay out a project.
type PathsRequest struct {
	ProjectID string
	Range     domain.Range
	Zoom      int
	Start     time.Time // zero means the earliest feature; snapped to the range unit
	Rows      RowSize
}

// RowSize overrides the default row layout when non-zero.
type RowSize struct {
	Height float64
	Inset  float64
}

// PathsResult holds the settled layout and the routed dependency arrows.
type PathsResult struct {
	Positions []domain.FeaturePosition
	Paths     []routing.DependencyPath
}

type GanttService interface {
	// MoveFeature sets a feature's window and reschedules its dependents
	// in one transaction.
	MoveFeature(ctx context.Context, featureID string, window domain.Window) (*MoveResult, error)
	// Recalculate snaps every feature of the project to the latest start its
	// predecessors allow and persists the changes.
	Recalculate(ctx context.Context, projectID string) ([]domain.FeatureUpdate, error)
	// CheckCycles returns a *scheduler.CycleError if the project's
	// dependencies contain a cycle.
	CheckCycles(ctx context.Context, projectID string) error
	Paths(ctx context.Context, req PathsRequest) (*PathsResult, error)
	RenderSVG(ctx context.Context, w io.Writer, req PathsRequest) error
}

// ImportResult holds the outcome of a project import.
type ImportResult struct {
	Project         *domain.Project
	FeatureCount    int
	DependencyCount int
}

type ImportService interface {
	ImportProject(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
