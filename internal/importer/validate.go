package importer

import (
	"errors"
	"fmt"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/scheduler"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateProject(&schema.Project)...)

	refs := make(map[string]bool)
	errs = append(errs, validateFeatures(schema.Features, refs)...)
	errs = append(errs, validateDependencies(schema.Dependencies, refs)...)

	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error

	if p.ShortID == "" {
		errs = append(errs, fmt.Errorf("project.short_id is required"))
	}
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	if p.StartDate == "" {
		errs = append(errs, fmt.Errorf("project.start_date is required"))
	} else if _, err := parseDate(p.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("project.start_date: invalid date format %q (expected YYYY-MM-DD)", p.StartDate))
	}

	return errs
}

func validateFeatures(features []FeatureImport, refs map[string]bool) []error {
	var errs []error

	if len(features) == 0 {
		errs = append(errs, fmt.Errorf("features: at least one feature is required"))
	}

	for i, f := range features {
		prefix := fmt.Sprintf("features[%d]", i)

		if f.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[f.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, f.Ref))
		} else {
			refs[f.Ref] = true
		}

		if f.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if f.Status != "" && !domain.ValidFeatureStatuses[f.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, f.Status))
		}

		start, startErr := requiredDate(prefix+".start_at", f.StartAt)
		end, endErr := requiredDate(prefix+".end_at", f.EndAt)
		if startErr != nil {
			errs = append(errs, startErr)
		}
		if endErr != nil {
			errs = append(errs, endErr)
		}
		if startErr == nil && endErr == nil && end.Before(start) {
			errs = append(errs, fmt.Errorf("%s.end_at %q must not be before start_at %q", prefix, f.EndAt, f.StartAt))
		}
	}

	return errs
}

func validateDependencies(deps []DependencyImport, refs map[string]bool) []error {
	var errs []error
	var edges []domain.Dependency

	for i, d := range deps {
		prefix := fmt.Sprintf("dependencies[%d]", i)
		ok := true

		if d.SourceRef == "" {
			errs = append(errs, fmt.Errorf("%s.source_ref is required", prefix))
			ok = false
		} else if !refs[d.SourceRef] {
			errs = append(errs, fmt.Errorf("%s.source_ref: ref %q not found in features", prefix, d.SourceRef))
			ok = false
		}

		if d.TargetRef == "" {
			errs = append(errs, fmt.Errorf("%s.target_ref is required", prefix))
			ok = false
		} else if !refs[d.TargetRef] {
			errs = append(errs, fmt.Errorf("%s.target_ref: ref %q not found in features", prefix, d.TargetRef))
			ok = false
		}

		if d.SourceRef != "" && d.SourceRef == d.TargetRef {
			errs = append(errs, fmt.Errorf("%s: self-dependency (source_ref == target_ref == %q)", prefix, d.SourceRef))
			ok = false
		}

		if d.Type != "" {
			if _, err := domain.ParseDependencyType(d.Type); err != nil {
				errs = append(errs, fmt.Errorf("%s.type: %w", prefix, err))
			}
		}

		if ok {
			edges = append(edges, domain.Dependency{SourceID: d.SourceRef, TargetID: d.TargetRef})
		}
	}

	if err := scheduler.NewGraph(edges).DetectCycle(); err != nil {
		var cycle *scheduler.CycleError
		if errors.As(err, &cycle) {
			errs = append(errs, fmt.Errorf("dependencies: circular dependency %v", cycle.Path))
		} else {
			errs = append(errs, fmt.Errorf("dependencies: %w", err))
		}
	}

	return errs
}

func requiredDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := parseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, s)
	}
	return t, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, s)
}
