package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/repository"
	"github.com/google/uuid"
)

type featureService struct {
	features repository.FeatureRepo
}

func NewFeatureService(features repository.FeatureRepo) FeatureService {
	return &featureService{features: features}
}

func (s *featureService) Create(ctx context.Context, f *domain.Feature) error {
	if f.ProjectID == "" {
		return fmt.Errorf("feature requires a project")
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.Status == "" {
		f.Status = domain.FeaturePlanned
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	return s.features.Create(ctx, f)
}

func (s *featureService) GetByID(ctx context.Context, id string) (*domain.Feature, error) {
	return s.features.GetByID(ctx, id)
}

func (s *featureService) Resolve(ctx context.Context, projectID, ref string) (*domain.Feature, error) {
	return resolveFeature(ctx, s.features, projectID, ref)
}

func (s *featureService) ListByProject(ctx context.Context, projectID string) ([]*domain.Feature, error) {
	return s.features.ListByProject(ctx, projectID)
}

func (s *featureService) Update(ctx context.Context, f *domain.Feature) error {
	if err := f.Validate(); err != nil {
		return err
	}
	f.UpdatedAt = time.Now().UTC()
	return s.features.Update(ctx, f)
}

func (s *featureService) Delete(ctx context.Context, id string) error {
	return s.features.Delete(ctx, id)
}

// resolveFeature matches ref against the project's feature ids, first
// exactly and then as a unique prefix.
func resolveFeature(ctx context.Context, features repository.FeatureRepo, projectID, ref string) (*domain.Feature, error) {
	if ref == "" {
		return nil, fmt.Errorf("feature reference is required")
	}
	matches, err := features.FindByPrefix(ctx, projectID, ref)
	if err != nil {
		return nil, fmt.Errorf("resolving feature %q: %w", ref, err)
	}
	for _, f := range matches {
		if f.ID == ref {
			return f, nil
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("resolving feature %q: %w", ref, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("feature reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}
