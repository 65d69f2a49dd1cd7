package service

import (
	"context"
	"testing"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyService_CreateDefaultsToFinishToStart(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	proj := env.project(t)
	env.feature(t, proj.ID, "A", "2026-01-01", "2026-01-05")
	env.feature(t, proj.ID, "B", "2026-01-05", "2026-01-09")
	svc := NewDependencyService(env.deps, env.uow)

	d := &domain.Dependency{SourceID: "A", TargetID: "B"}
	require.NoError(t, svc.Create(ctx, d))
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, proj.ID, d.ProjectID, "project is taken from the features")
	assert.Equal(t, domain.DependencyFinishToStart, d.Type)

	deps, err := svc.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, d.ID, deps[0].ID)

	require.NoError(t, svc.Delete(ctx, d.ID))
	deps, err = svc.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestDependencyService_RejectsCycle(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	proj := env.project(t)
	for _, id := range []string{"A", "B", "C"} {
		env.feature(t, proj.ID, id, "2026-01-01", "2026-01-05")
	}
	svc := NewDependencyService(env.deps, env.uow)

	require.NoError(t, svc.Create(ctx, &domain.Dependency{SourceID: "A", TargetID: "B"}))
	require.NoError(t, svc.Create(ctx, &domain.Dependency{SourceID: "B", TargetID: "C"}))

	err := svc.Create(ctx, &domain.Dependency{SourceID: "C", TargetID: "A", Type: domain.DependencyStartToStart})
	require.ErrorIs(t, err, scheduler.ErrCyclicDependency)

	deps, err := svc.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, deps, 2, "the cyclic dependency is not stored")
}

func TestDependencyService_RejectsInvalid(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	proj := env.project(t)
	other := env.project(t)
	env.feature(t, proj.ID, "A", "2026-01-01", "2026-01-05")
	env.feature(t, other.ID, "X", "2026-01-01", "2026-01-05")
	svc := NewDependencyService(env.deps, env.uow)

	assert.ErrorContains(t, svc.Create(ctx, &domain.Dependency{SourceID: "A", TargetID: "A"}), "itself")
	assert.ErrorContains(t, svc.Create(ctx, &domain.Dependency{SourceID: "A", TargetID: "X"}), "another project")
	assert.ErrorContains(t, svc.Create(ctx, &domain.Dependency{SourceID: "A", TargetID: "X", Type: "XY"}), "unknown dependency type")
	assert.Error(t, svc.Create(ctx, &domain.Dependency{SourceID: "A", TargetID: "missing"}))
}
