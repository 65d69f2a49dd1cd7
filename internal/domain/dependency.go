package domain

import "fmt"

// DependencyType is the closed set of timing constraints between two features.
type DependencyType string

const (
	DependencyFinishToStart  DependencyType = "FS"
	DependencyStartToStart   DependencyType = "SS"
	DependencyFinishToFinish DependencyType = "FF"
	DependencyStartToFinish  DependencyType = "SF"
)

// ParseDependencyType converts a user-supplied string into a DependencyType.
func ParseDependencyType(s string) (DependencyType, error) {
	t := DependencyType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown dependency type %q (expected FS, SS, FF or SF)", s)
	}
	return t, nil
}

func (t DependencyType) Valid() bool {
	switch t {
	case DependencyFinishToStart, DependencyStartToStart, DependencyFinishToFinish, DependencyStartToFinish:
		return true
	}
	return false
}

// Dependency is a directed edge SourceID -> TargetID.
type Dependency struct {
	ID        string
	ProjectID string
	SourceID  string
	TargetID  string
	Type      DependencyType
	Color     string
}

// Validate checks the invariants enforced at the storage and import boundary.
func (d *Dependency) Validate() error {
	if d.SourceID == "" || d.TargetID == "" {
		return fmt.Errorf("dependency requires both source and target")
	}
	if d.SourceID == d.TargetID {
		return fmt.Errorf("dependency %s cannot link a feature to itself", d.SourceID)
	}
	if !d.Type.Valid() {
		return fmt.Errorf("unknown dependency type %q", d.Type)
	}
	return nil
}
