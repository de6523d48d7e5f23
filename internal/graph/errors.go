package graph

import "errors"

// Validation failures surfaced by Build. All are terminal: no partial graph
// is ever returned alongside one of these.
var (
	ErrDuplicateID      = errors.New("duplicate task id")
	ErrEmptyID          = errors.New("empty task id")
	ErrNegativeDuration = errors.New("negative task duration")
	ErrInvalidReference = errors.New("invalid dependency reference")
	ErrCycle            = errors.New("dependency cycle detected")
)
