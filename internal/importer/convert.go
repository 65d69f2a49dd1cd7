package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/google/uuid"
)

// Plan is a converted import ready for persistence.
type Plan struct {
	Project      *domain.Project
	Features     []*domain.Feature
	Dependencies []*domain.Dependency
}

// Convert transforms a validated ImportSchema into domain objects ready for persistence.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*Plan, error) {
	now := time.Now().UTC()

	startDate, err := parseDate(schema.Project.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}

	project := &domain.Project{
		ID:        uuid.New().String(),
		ShortID:   strings.ToUpper(schema.Project.ShortID),
		Name:      schema.Project.Name,
		StartDate: startDate,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	refMap := make(map[string]string) // ref -> UUID

	features := make([]*domain.Feature, 0, len(schema.Features))
	for _, f := range schema.Features {
		start, err := parseDate(f.StartAt)
		if err != nil {
			return nil, fmt.Errorf("parsing features %q start_at: %w", f.Ref, err)
		}
		end, err := parseDate(f.EndAt)
		if err != nil {
			return nil, fmt.Errorf("parsing features %q end_at: %w", f.Ref, err)
		}

		status := domain.FeaturePlanned
		if f.Status != "" {
			status = domain.FeatureStatus(f.Status)
		}

		id := uuid.New().String()
		refMap[f.Ref] = id
		features = append(features, &domain.Feature{
			ID:        id,
			ProjectID: project.ID,
			Name:      f.Name,
			Status:    status,
			Lane:      f.Lane,
			StartAt:   start,
			EndAt:     end,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	deps := make([]*domain.Dependency, 0, len(schema.Dependencies))
	for i, d := range schema.Dependencies {
		depType := domain.DependencyFinishToStart
		if d.Type != "" {
			t, err := domain.ParseDependencyType(d.Type)
			if err != nil {
				return nil, fmt.Errorf("dependencies[%d]: %w", i, err)
			}
			depType = t
		}
		source, okS := refMap[d.SourceRef]
		target, okT := refMap[d.TargetRef]
		if !okS || !okT {
			return nil, fmt.Errorf("dependencies[%d]: unresolved ref %q -> %q", i, d.SourceRef, d.TargetRef)
		}
		deps = append(deps, &domain.Dependency{
			ID:        uuid.New().String(),
			ProjectID: project.ID,
			SourceID:  source,
			TargetID:  target,
			Type:      depType,
			Color:     d.Color,
		})
	}

	return &Plan{Project: project, Features: features, Dependencies: deps}, nil
}
