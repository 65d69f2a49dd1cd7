package repository

import (
	"context"
	"testing"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Website", testutil.WithStartDate(testutil.Date("2026-03-02")))
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "Website", fetched.Name)
	assert.Equal(t, domain.ProjectActive, fetched.Status)
	assert.Equal(t, "2026-03-02", fetched.StartDate.Format(domain.DateLayout))
	assert.True(t, proj.CreatedAt.Equal(fetched.CreatedAt))
}

func TestProjectRepo_GetByShortID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Website", testutil.WithShortID("WEB01"))
	require.NoError(t, repo.Create(ctx, proj))

	// Case-insensitive lookup.
	fetched, err := repo.GetByShortID(ctx, "web01")
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "WEB01", fetched.ShortID)
}

func TestProjectRepo_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByShortID(ctx, "NOPE01")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "nonexistent"), ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, testutil.NewTestProject("Ghost")), ErrNotFound)
}

func TestProjectRepo_ShortIDUnique(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("One", testutil.WithShortID("DUP01"))))
	assert.Error(t, repo.Create(ctx, testutil.NewTestProject("Two", testutil.WithShortID("DUP01"))))
}

func TestProjectRepo_ListAndUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	a := testutil.NewTestProject("Alpha")
	b := testutil.NewTestProject("Beta")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	a.Name = "Alpha v2"
	a.Status = domain.ProjectPaused
	require.NoError(t, repo.Update(ctx, a))

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	names := []string{projects[0].Name, projects[1].Name}
	assert.ElementsMatch(t, []string{"Alpha v2", "Beta"}, names)

	fetched, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectPaused, fetched.Status)
}

func TestProjectRepo_DeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	projects := NewSQLiteProjectRepo(db)
	features := NewSQLiteFeatureRepo(db)
	deps := NewSQLiteDependencyRepo(db)

	proj := testutil.NewTestProject("Website")
	require.NoError(t, projects.Create(ctx, proj))
	a := testutil.NewTestFeature(proj.ID, "A")
	b := testutil.NewTestFeature(proj.ID, "B")
	require.NoError(t, features.Create(ctx, a))
	require.NoError(t, features.Create(ctx, b))
	require.NoError(t, deps.Create(ctx, testutil.NewTestDependency(proj.ID, a.ID, b.ID)))

	require.NoError(t, projects.Delete(ctx, proj.ID))

	remaining, err := features.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	remainingDeps, err := deps.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, remainingDeps)
}
