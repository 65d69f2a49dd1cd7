package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
)

// ErrNotFound is returned (wrapped) when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// FeatureRepo lists features in creation order, which is the order the
// scheduler sees them in.
type FeatureRepo interface {
	Create(ctx context.Context, f *domain.Feature) error
	GetByID(ctx context.Context, id string) (*domain.Feature, error)
	FindByPrefix(ctx context.Context, projectID, prefix string) ([]*domain.Feature, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Feature, error)
	Update(ctx context.Context, f *domain.Feature) error
	UpdateWindow(ctx context.Context, id string, startAt, endAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, d *domain.Dependency) error
	GetByID(ctx context.Context, id string) (*domain.Dependency, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Dependency, error)
	Delete(ctx context.Context, id string) error
}
