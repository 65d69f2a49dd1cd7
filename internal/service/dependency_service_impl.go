package service

import (
	"context"
	"fmt"

	"github.com/gbtux/teammanager/internal/db"
	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/repository"
	"github.com/gbtux/teammanager/internal/scheduler"
	"github.com/google/uuid"
)

type dependencyService struct {
	deps repository.DependencyRepo
	uow  db.UnitOfWork
}

// NewDependencyService creates dependencies inside a transaction so the
// cycle check and the insert see the same graph.
func NewDependencyService(deps repository.DependencyRepo, uow db.UnitOfWork) DependencyService {
	return &dependencyService{deps: deps, uow: uow}
}

func (s *dependencyService) Create(ctx context.Context, d *domain.Dependency) error {
	if d.Type == "" {
		d.Type = domain.DependencyFinishToStart
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txFeatures := repository.NewSQLiteFeatureRepo(tx)
		txDeps := repository.NewSQLiteDependencyRepo(tx)

		for _, id := range []string{d.SourceID, d.TargetID} {
			f, err := txFeatures.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("loading feature %s: %w", id, err)
			}
			if d.ProjectID == "" {
				d.ProjectID = f.ProjectID
			}
			if f.ProjectID != d.ProjectID {
				return fmt.Errorf("feature %s belongs to another project", id)
			}
		}

		existing, err := txDeps.ListByProject(ctx, d.ProjectID)
		if err != nil {
			return fmt.Errorf("listing dependencies: %w", err)
		}
		if err := scheduler.NewGraph(append(existing, *d)).DetectCycleFrom(d.TargetID); err != nil {
			return fmt.Errorf("adding dependency %s -> %s: %w", d.SourceID, d.TargetID, err)
		}

		return txDeps.Create(ctx, d)
	})
}

func (s *dependencyService) ListByProject(ctx context.Context, projectID string) ([]domain.Dependency, error) {
	return s.deps.ListByProject(ctx, projectID)
}

func (s *dependencyService) Delete(ctx context.Context, id string) error {
	return s.deps.Delete(ctx, id)
}
