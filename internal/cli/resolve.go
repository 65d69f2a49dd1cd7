package cli

import (
	"context"
	"fmt"

	"github.com/gbtux/teammanager/internal/domain"
)

func resolveProject(ctx context.Context, app *App, ref string) (*domain.Project, error) {
	if ref == "" {
		return nil, fmt.Errorf("project is required (use --project with a short ID such as WEB01)")
	}
	return app.Projects.Resolve(ctx, ref)
}

// featureNames maps the project's feature ids to their names for display.
func featureNames(ctx context.Context, app *App, projectID string) (map[string]string, error) {
	features, err := app.Features.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(features))
	for _, f := range features {
		names[f.ID] = f.Name
	}
	return names, nil
}
