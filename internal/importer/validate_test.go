package importer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Project: ProjectImport{
			ShortID:   "WEB01",
			Name:      "Website",
			StartDate: "2026-01-01",
		},
		Features: []FeatureImport{
			{Ref: "a", Name: "Design", StartAt: "2026-01-05", EndAt: "2026-01-09"},
		},
	}
}

func errorStrings(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	errs := ValidateImportSchema(validMinimalSchema())
	assert.Empty(t, errs)
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	schema := &ImportSchema{
		Project: ProjectImport{ShortID: "CRM02", Name: "CRM", StartDate: "2026-01-01"},
		Features: []FeatureImport{
			{Ref: "a", Name: "Design", Status: "done", Lane: "ux", StartAt: "2026-01-05", EndAt: "2026-01-09"},
			{Ref: "b", Name: "Build", Status: "in_progress", StartAt: "2026-01-09", EndAt: "2026-01-20"},
			{Ref: "m", Name: "Launch", StartAt: "2026-01-21", EndAt: "2026-01-21"},
		},
		Dependencies: []DependencyImport{
			{SourceRef: "a", TargetRef: "b", Type: "FS", Color: "#ff0000"},
			{SourceRef: "b", TargetRef: "m", Type: "FF"},
			{SourceRef: "a", TargetRef: "m"},
		},
	}
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_MissingProjectFields(t *testing.T) {
	schema := validMinimalSchema()
	schema.Project = ProjectImport{}

	errs := ValidateImportSchema(schema)
	msg := errorStrings(errs)
	assert.Contains(t, msg, "project.short_id is required")
	assert.Contains(t, msg, "project.name is required")
	assert.Contains(t, msg, "project.start_date is required")
}

func TestValidateImportSchema_NoFeatures(t *testing.T) {
	schema := validMinimalSchema()
	schema.Features = nil

	assert.Contains(t, errorStrings(ValidateImportSchema(schema)), "at least one feature is required")
}

func TestValidateImportSchema_InvalidDates(t *testing.T) {
	schema := validMinimalSchema()
	schema.Project.StartDate = "01/01/2026"
	schema.Features = []FeatureImport{
		{Ref: "a", Name: "A", StartAt: "2026-13-01", EndAt: "2026-01-09"},
		{Ref: "b", Name: "B", StartAt: "2026-01-05"},
		{Ref: "c", Name: "C", StartAt: "2026-01-10", EndAt: "2026-01-09"},
	}

	msg := errorStrings(ValidateImportSchema(schema))
	assert.Contains(t, msg, `project.start_date: invalid date format "01/01/2026"`)
	assert.Contains(t, msg, `features[0].start_at: invalid date format "2026-13-01"`)
	assert.Contains(t, msg, "features[1].end_at is required")
	assert.Contains(t, msg, `features[2].end_at "2026-01-09" must not be before start_at "2026-01-10"`)
}

func TestValidateImportSchema_DuplicateFeatureRef(t *testing.T) {
	schema := validMinimalSchema()
	schema.Features = append(schema.Features, FeatureImport{Ref: "a", Name: "Again", StartAt: "2026-01-05", EndAt: "2026-01-06"})

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `features[1].ref: duplicate ref "a"`)
}

func TestValidateImportSchema_InvalidStatus(t *testing.T) {
	schema := validMinimalSchema()
	schema.Features[0].Status = "finished"

	assert.Contains(t, errorStrings(ValidateImportSchema(schema)), `features[0].status: invalid value "finished"`)
}

func TestValidateImportSchema_InvalidDependencyRef(t *testing.T) {
	schema := validMinimalSchema()
	schema.Dependencies = []DependencyImport{{SourceRef: "a", TargetRef: "ghost"}, {TargetRef: "a"}}

	msg := errorStrings(ValidateImportSchema(schema))
	assert.Contains(t, msg, `dependencies[0].target_ref: ref "ghost" not found in features`)
	assert.Contains(t, msg, "dependencies[1].source_ref is required")
}

func TestValidateImportSchema_SelfDependency(t *testing.T) {
	schema := validMinimalSchema()
	schema.Dependencies = []DependencyImport{{SourceRef: "a", TargetRef: "a"}}

	assert.Contains(t, errorStrings(ValidateImportSchema(schema)), `dependencies[0]: self-dependency`)
}

func TestValidateImportSchema_InvalidDependencyType(t *testing.T) {
	schema := validMinimalSchema()
	schema.Features = append(schema.Features, FeatureImport{Ref: "b", Name: "B", StartAt: "2026-01-09", EndAt: "2026-01-10"})
	schema.Dependencies = []DependencyImport{{SourceRef: "a", TargetRef: "b", Type: "XX"}}

	assert.Contains(t, errorStrings(ValidateImportSchema(schema)), `dependencies[0].type: unknown dependency type "XX"`)
}

func TestValidateImportSchema_CircularDependency(t *testing.T) {
	schema := validMinimalSchema()
	for _, ref := range []string{"b", "c"} {
		schema.Features = append(schema.Features, FeatureImport{Ref: ref, Name: ref, StartAt: "2026-01-09", EndAt: "2026-01-10"})
	}
	schema.Dependencies = []DependencyImport{
		{SourceRef: "a", TargetRef: "b"},
		{SourceRef: "b", TargetRef: "c"},
		{SourceRef: "c", TargetRef: "a"},
	}

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Equal(t, fmt.Sprintf("dependencies: circular dependency %v", []string{"a", "b", "c", "a"}), errs[0].Error())
}

func TestParseImportSchema(t *testing.T) {
	data := []byte(`{
		"project": {"short_id": "WEB01", "name": "Website", "start_date": "2026-01-01"},
		"features": [
			{"ref": "a", "name": "Design", "lane": "ux", "start_at": "2026-01-05", "end_at": "2026-01-09"},
			{"ref": "b", "name": "Build", "start_at": "2026-01-09", "end_at": "2026-01-20"}
		],
		"dependencies": [{"source_ref": "a", "target_ref": "b", "type": "SS"}]
	}`)

	schema, err := ParseImportSchema(data)
	require.NoError(t, err)
	assert.Equal(t, "WEB01", schema.Project.ShortID)
	require.Len(t, schema.Features, 2)
	assert.Equal(t, "ux", schema.Features[0].Lane)
	require.Len(t, schema.Dependencies, 1)
	assert.Equal(t, "SS", schema.Dependencies[0].Type)
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestParseImportSchema_InvalidJSON(t *testing.T) {
	_, err := ParseImportSchema([]byte(`{"project":`))
	assert.ErrorContains(t, err, "parsing import JSON")
}

func TestLoadImportSchema_MissingFile(t *testing.T) {
	_, err := LoadImportSchema(t.TempDir() + "/missing.json")
	assert.ErrorContains(t, err, "reading import file")
}
