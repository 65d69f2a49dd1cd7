package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gbtux/teammanager/internal/db"
	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/layout"
	"github.com/gbtux/teammanager/internal/repository"
	"github.com/gbtux/teammanager/internal/routing"
	"github.com/gbtux/teammanager/internal/scheduler"
	"github.com/gbtux/teammanager/internal/timeline"
)

type ganttService struct {
	features repository.FeatureRepo
	deps     repository.DependencyRepo
	uow      db.UnitOfWork
	layer    *routing.Layer
	observer UseCaseObserver
}

func NewGanttService(
	features repository.FeatureRepo,
	deps repository.DependencyRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) GanttService {
	return &ganttService{
		features: features,
		deps:     deps,
		uow:      uow,
		layer:    routing.NewLayer(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *ganttService) MoveFeature(ctx context.Context, featureID string, window domain.Window) (result *MoveResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"feature_id": featureID}
	var warnings []UseCaseWarning
	defer observe(ctx, s.observer, "move-feature", startedAt, fields, &warnings, &err)

	if window.EndAt.Before(window.StartAt) {
		return nil, fmt.Errorf("feature cannot end (%s) before it starts (%s)",
			window.EndAt.Format(domain.DateLayout), window.StartAt.Format(domain.DateLayout))
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txFeatures := repository.NewSQLiteFeatureRepo(tx)
		txDeps := repository.NewSQLiteDependencyRepo(tx)

		moved, err := txFeatures.GetByID(ctx, featureID)
		if err != nil {
			return fmt.Errorf("loading feature: %w", err)
		}
		features, deps, err := loadSchedule(ctx, txFeatures, txDeps, moved.ProjectID)
		if err != nil {
			return err
		}

		res, err := scheduler.AutoSchedule(moved.ID, window, features, deps)
		if err != nil {
			warnings = append(warnings, cycleWarning(err))
			return fmt.Errorf("scheduling from %s: %w", moved.ID, err)
		}
		if err := persistUpdates(ctx, txFeatures, res.Updates); err != nil {
			return err
		}

		for _, c := range res.Conflicts {
			warnings = append(warnings, UseCaseWarning{
				Message: "scheduling_conflict",
				Attrs: map[string]any{
					"feature_id":      c.FeatureID,
					"dependency_id":   c.DependencyID,
					"kept_start":      c.Kept.StartAt.Format(domain.DateLayout),
					"kept_end":        c.Kept.EndAt.Format(domain.DateLayout),
					"discarded_start": c.Discarded.StartAt.Format(domain.DateLayout),
					"discarded_end":   c.Discarded.EndAt.Format(domain.DateLayout),
				},
			})
		}
		result = &MoveResult{Updates: res.Updates, Conflicts: res.Conflicts}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["update_count"] = len(result.Updates)
	fields["conflict_count"] = len(result.Conflicts)
	return result, nil
}

func (s *ganttService) Recalculate(ctx context.Context, projectID string) (updates []domain.FeatureUpdate, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID}
	var warnings []UseCaseWarning
	defer observe(ctx, s.observer, "recalculate-schedule", startedAt, fields, &warnings, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txFeatures := repository.NewSQLiteFeatureRepo(tx)
		features, deps, err := loadSchedule(ctx, txFeatures, repository.NewSQLiteDependencyRepo(tx), projectID)
		if err != nil {
			return err
		}

		updates, err = scheduler.Recalculate(features, deps)
		if err != nil {
			warnings = append(warnings, cycleWarning(err))
			return fmt.Errorf("recalculating schedule: %w", err)
		}
		return persistUpdates(ctx, txFeatures, updates)
	})
	if err != nil {
		return nil, err
	}
	fields["update_count"] = len(updates)
	return updates, nil
}

func (s *ganttService) CheckCycles(ctx context.Context, projectID string) error {
	deps, err := s.deps.ListByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("listing dependencies: %w", err)
	}
	return scheduler.NewGraph(deps).DetectCycle()
}

func (s *ganttService) Paths(ctx context.Context, req PathsRequest) (*PathsResult, error) {
	features, deps, err := loadSchedule(ctx, s.features, s.deps, req.ProjectID)
	if err != nil {
		return nil, err
	}

	positions := layout.Arrange(features, mapperFor(req, features), rowOptionsFor(req.Rows))

	table := layout.NewTable()
	table.Sync(positions)

	var paths []routing.DependencyPath
	settler := layout.NewSettler(layout.DefaultQuietPeriod, func(snapshot map[string]domain.FeaturePosition) {
		paths = s.layer.Paths(deps, snapshot)
	})
	defer settler.Stop()
	settler.Notify(table.Snapshot())
	settler.Flush()

	return &PathsResult{Positions: positions, Paths: paths}, nil
}

func (s *ganttService) RenderSVG(ctx context.Context, w io.Writer, req PathsRequest) error {
	res, err := s.Paths(ctx, req)
	if err != nil {
		return err
	}
	features, err := s.features.ListByProject(ctx, req.ProjectID)
	if err != nil {
		return fmt.Errorf("listing features: %w", err)
	}
	names := make(map[string]string, len(features))
	for _, f := range features {
		names[f.ID] = f.Name
	}

	opts := routing.DefaultSVGOptions()
	for _, p := range res.Positions {
		opts.Bars = append(opts.Bars, routing.Bar{Position: p, Label: names[p.ID]})
	}
	if err := routing.RenderSVG(w, res.Paths, opts); err != nil {
		return fmt.Errorf("rendering svg: %w", err)
	}
	return nil
}

// loadSchedule reads the plain feature and dependency records the
// scheduling engine works on.
func loadSchedule(ctx context.Context, features repository.FeatureRepo, deps repository.DependencyRepo, projectID string) ([]domain.Feature, []domain.Dependency, error) {
	rows, err := features.ListByProject(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing features: %w", err)
	}
	out := make([]domain.Feature, len(rows))
	for i, f := range rows {
		out[i] = *f
	}
	edges, err := deps.ListByProject(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing dependencies: %w", err)
	}
	return out, edges, nil
}

func persistUpdates(ctx context.Context, features repository.FeatureRepo, updates []domain.FeatureUpdate) error {
	for _, u := range updates {
		if err := features.UpdateWindow(ctx, u.ID, u.StartAt, u.EndAt); err != nil {
			return fmt.Errorf("updating feature %s: %w", u.ID, err)
		}
	}
	return nil
}

func cycleWarning(err error) UseCaseWarning {
	attrs := map[string]any{"error": err.Error()}
	var cycle *scheduler.CycleError
	if errors.As(err, &cycle) {
		attrs["path"] = cycle.Path
	}
	return UseCaseWarning{Message: "cyclic_dependency_rejected", Attrs: attrs}
}

// mapperFor anchors the timeline at the start of the range unit holding
// req.Start, or the earliest feature when req.Start is zero. Columns must
// begin on a unit boundary for offsets to stay monotonic.
func mapperFor(req PathsRequest, features []domain.Feature) timeline.Mapper {
	r := req.Range
	if r == "" {
		r = domain.RangeMonthly
	}
	zoom := req.Zoom
	if zoom <= 0 {
		zoom = 100
	}
	start := req.Start
	if start.IsZero() {
		for i, f := range features {
			if i == 0 || f.StartAt.Before(start) {
				start = f.StartAt
			}
		}
	}
	return timeline.NewMapper(r, zoom, timeline.StartOf(r)(start))
}

func rowOptionsFor(rows RowSize) layout.RowOptions {
	opts := layout.DefaultRowOptions()
	if rows.Height > 0 {
		opts.RowHeight = rows.Height
	}
	if rows.Inset > 0 {
		opts.BarInset = rows.Inset
	}
	return opts
}
