package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gbtux/teammanager/internal/db"
	"github.com/gbtux/teammanager/internal/domain"
)

// featureColumns is the canonical SELECT column list for features.
const featureColumns = `id, project_id, name, status, lane, start_at, end_at, created_at, updated_at`

// SQLiteFeatureRepo implements FeatureRepo using a SQLite database.
type SQLiteFeatureRepo struct {
	db db.DBTX
}

func NewSQLiteFeatureRepo(conn db.DBTX) *SQLiteFeatureRepo {
	return &SQLiteFeatureRepo{db: conn}
}

// Create appends the feature after every existing feature of its project.
func (r *SQLiteFeatureRepo) Create(ctx context.Context, f *domain.Feature) error {
	query := `INSERT INTO features (` + featureColumns + `, order_index)
		SELECT ?, ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(MAX(order_index), 0) + 1
		FROM features WHERE project_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.ProjectID,
		f.Name,
		string(f.Status),
		f.Lane,
		formatTime(f.StartAt),
		formatTime(f.EndAt),
		formatTime(f.CreatedAt),
		formatTime(f.UpdatedAt),
		f.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("inserting feature: %w", err)
	}
	return nil
}

func (r *SQLiteFeatureRepo) GetByID(ctx context.Context, id string) (*domain.Feature, error) {
	query := `SELECT ` + featureColumns + ` FROM features WHERE id = ?`
	return r.scanFeature(r.db.QueryRowContext(ctx, query, id))
}

// FindByPrefix returns the project's features whose id starts with prefix.
func (r *SQLiteFeatureRepo) FindByPrefix(ctx context.Context, projectID, prefix string) ([]*domain.Feature, error) {
	query := `SELECT ` + featureColumns + ` FROM features
		WHERE project_id = ? AND substr(id, 1, ?) = ?
		ORDER BY order_index, id`
	return r.list(ctx, query, projectID, len(prefix), prefix)
}

func (r *SQLiteFeatureRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Feature, error) {
	query := `SELECT ` + featureColumns + ` FROM features WHERE project_id = ? ORDER BY order_index, id`
	return r.list(ctx, query, projectID)
}

func (r *SQLiteFeatureRepo) Update(ctx context.Context, f *domain.Feature) error {
	query := `UPDATE features SET name = ?, status = ?, lane = ?, start_at = ?, end_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		f.Name,
		string(f.Status),
		f.Lane,
		formatTime(f.StartAt),
		formatTime(f.EndAt),
		formatTime(f.UpdatedAt),
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating feature: %w", err)
	}
	return expectOneRow(res, "feature")
}

// UpdateWindow stores new dates for a feature, as produced by the scheduler.
func (r *SQLiteFeatureRepo) UpdateWindow(ctx context.Context, id string, startAt, endAt time.Time) error {
	query := `UPDATE features SET start_at = ?, end_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, formatTime(startAt), formatTime(endAt), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating feature %s dates: %w", id, err)
	}
	return expectOneRow(res, "feature")
}

// Delete removes the feature and every dependency touching it.
func (r *SQLiteFeatureRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM features WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting feature: %w", err)
	}
	return expectOneRow(res, "feature")
}

func (r *SQLiteFeatureRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Feature, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing features: %w", err)
	}
	defer rows.Close()

	var features []*domain.Feature
	for rows.Next() {
		f, err := r.scanFeature(rows)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating features: %w", err)
	}
	return features, nil
}

func (r *SQLiteFeatureRepo) scanFeature(row scanner) (*domain.Feature, error) {
	var f domain.Feature
	var statusStr, startStr, endStr, createdAtStr, updatedAtStr string

	err := row.Scan(&f.ID, &f.ProjectID, &f.Name, &statusStr, &f.Lane,
		&startStr, &endStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("feature: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning feature: %w", err)
	}
	f.Status = domain.FeatureStatus(statusStr)

	if f.StartAt, err = parseTime("start_at", startStr); err != nil {
		return nil, err
	}
	if f.EndAt, err = parseTime("end_at", endStr); err != nil {
		return nil, err
	}
	if f.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if f.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &f, nil
}
