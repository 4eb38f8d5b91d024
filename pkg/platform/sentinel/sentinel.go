package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally wrapped)
// so services can translate them into domain errors.
//
//   - ErrNotFound: entity does not exist in the store
//   - ErrConflict: a unique key (email, category name, application code) is taken
//   - ErrAlreadyUsed: a one-shot value (application code) was consumed or is reserved
//   - ErrInUse: a delete would orphan dependent rows
//   - ErrUnavailable: a backing service is temporarily unreachable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrAlreadyUsed = errors.New("already used")
	ErrInUse       = errors.New("in use")
	ErrUnavailable = errors.New("unavailable")
)
