package scheduler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCyclicDependency is matched by every CycleError.
var ErrCyclicDependency = errors.New("cyclic dependency")

// CycleError reports a dependency cycle. Path starts and ends with the same
// feature id.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic dependency detected: %s", strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error {
	return ErrCyclicDependency
}
