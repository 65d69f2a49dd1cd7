package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a plan import.
type ImportSchema struct {
	Project      ProjectImport      `json:"project"`
	Features     []FeatureImport    `json:"features"`
	Dependencies []DependencyImport `json:"dependencies,omitempty"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	ShortID   string `json:"short_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
}

// FeatureImport defines one Gantt bar. Ref is local to the file and is
// replaced by a generated id on conversion.
type FeatureImport struct {
	Ref     string `json:"ref"`
	Name    string `json:"name"`
	Status  string `json:"status,omitempty"`
	Lane    string `json:"lane,omitempty"`
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

// DependencyImport links two features by ref.
type DependencyImport struct {
	SourceRef string `json:"source_ref"`
	TargetRef string `json:"target_ref"`
	Type      string `json:"type,omitempty"`
	Color     string `json:"color,omitempty"`
}

// LoadImportSchema reads and parses a JSON import file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return ParseImportSchema(data)
}

// ParseImportSchema parses raw JSON into an ImportSchema.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import JSON: %w", err)
	}
	return &schema, nil
}
