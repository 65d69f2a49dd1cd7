package repository

import (
	"context"
	"testing"

	"github.com/gbtux/teammanager/internal/db"
	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyRepo_CreateListDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	proj := setupProject(t, database)
	features := NewSQLiteFeatureRepo(database)
	repo := NewSQLiteDependencyRepo(database)
	ctx := context.Background()

	a := testutil.NewTestFeature(proj.ID, "A")
	b := testutil.NewTestFeature(proj.ID, "B")
	require.NoError(t, features.Create(ctx, a))
	require.NoError(t, features.Create(ctx, b))

	fs := testutil.NewTestDependency(proj.ID, a.ID, b.ID)
	ss := testutil.NewTestDependency(proj.ID, a.ID, b.ID,
		testutil.WithDependencyType(domain.DependencyStartToStart), testutil.WithColor("#ef4444"))
	require.NoError(t, repo.Create(ctx, fs))
	require.NoError(t, repo.Create(ctx, ss))

	deps, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, fs.ID, deps[0].ID)
	assert.Equal(t, domain.DependencyFinishToStart, deps[0].Type)
	assert.Equal(t, ss.ID, deps[1].ID)
	assert.Equal(t, "#ef4444", deps[1].Color)

	fetched, err := repo.GetByID(ctx, ss.ID)
	require.NoError(t, err)
	assert.Equal(t, *ss, *fetched)

	require.NoError(t, repo.Delete(ctx, fs.ID))
	assert.ErrorIs(t, repo.Delete(ctx, fs.ID), ErrNotFound)
	_, err = repo.GetByID(ctx, fs.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDependencyRepo_RejectsUnknownFeature(t *testing.T) {
	database := testutil.NewTestDB(t)
	proj := setupProject(t, database)
	features := NewSQLiteFeatureRepo(database)
	repo := NewSQLiteDependencyRepo(database)
	ctx := context.Background()

	a := testutil.NewTestFeature(proj.ID, "A")
	require.NoError(t, features.Create(ctx, a))

	assert.Error(t, repo.Create(ctx, testutil.NewTestDependency(proj.ID, a.ID, "ghost")))
}

func TestRepos_WithinTxRollsBackTogether(t *testing.T) {
	database := testutil.NewTestDB(t)
	proj := setupProject(t, database)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	a := testutil.NewTestFeature(proj.ID, "A")
	b := testutil.NewTestFeature(proj.ID, "B")

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txFeatures := NewSQLiteFeatureRepo(tx)
		if err := txFeatures.Create(ctx, a); err != nil {
			return err
		}
		if err := txFeatures.Create(ctx, b); err != nil {
			return err
		}
		// Unknown target fails the foreign key and rolls back both features.
		return NewSQLiteDependencyRepo(tx).Create(ctx, testutil.NewTestDependency(proj.ID, a.ID, "ghost"))
	})
	require.Error(t, err)

	features, err := NewSQLiteFeatureRepo(database).ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, features)
}
