package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gbtux/teammanager/internal/db"
	"github.com/gbtux/teammanager/internal/importer"
	"github.com/gbtux/teammanager/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportProject(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"short_id": schema.Project.ShortID}
	defer observe(ctx, s.observer, "import-project", startedAt, fields, nil, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	plan, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}
	if err := plan.Project.ValidateShortID(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txFeatures := repository.NewSQLiteFeatureRepo(tx)
		txDeps := repository.NewSQLiteDependencyRepo(tx)

		if err := txProjects.Create(ctx, plan.Project); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}
		for _, f := range plan.Features {
			if err := txFeatures.Create(ctx, f); err != nil {
				return fmt.Errorf("creating feature %q: %w", f.Name, err)
			}
		}
		for _, d := range plan.Dependencies {
			if err := txDeps.Create(ctx, d); err != nil {
				return fmt.Errorf("creating dependency: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["feature_count"] = len(plan.Features)
	fields["dependency_count"] = len(plan.Dependencies)
	return &ImportResult{
		Project:         plan.Project,
		FeatureCount:    len(plan.Features),
		DependencyCount: len(plan.Dependencies),
	}, nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%s", b.String())
}
