package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gbtux/teammanager/internal/db"
	"github.com/gbtux/teammanager/internal/domain"
)

const dependencyColumns = `id, project_id, source_id, target_id, type, color`

// SQLiteDependencyRepo implements DependencyRepo using a SQLite database.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(conn db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: conn}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d *domain.Dependency) error {
	query := `INSERT INTO dependencies (` + dependencyColumns + `, order_index)
		SELECT ?, ?, ?, ?, ?, ?, COALESCE(MAX(order_index), 0) + 1
		FROM dependencies WHERE project_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.ProjectID, d.SourceID, d.TargetID, string(d.Type), d.Color, d.ProjectID)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) GetByID(ctx context.Context, id string) (*domain.Dependency, error) {
	query := `SELECT ` + dependencyColumns + ` FROM dependencies WHERE id = ?`
	d, err := r.scanDependency(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *SQLiteDependencyRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Dependency, error) {
	query := `SELECT ` + dependencyColumns + ` FROM dependencies WHERE project_id = ? ORDER BY order_index, id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()

	var deps []domain.Dependency
	for rows.Next() {
		d, err := r.scanDependency(rows)
		if err != nil {
			return nil, err
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dependencies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return expectOneRow(res, "dependency")
}

func (r *SQLiteDependencyRepo) scanDependency(row scanner) (domain.Dependency, error) {
	var d domain.Dependency
	var typeStr string
	if err := row.Scan(&d.ID, &d.ProjectID, &d.SourceID, &d.TargetID, &typeStr, &d.Color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return d, fmt.Errorf("dependency: %w", ErrNotFound)
		}
		return d, fmt.Errorf("scanning dependency: %w", err)
	}
	d.Type = domain.DependencyType(typeStr)
	return d, nil
}
