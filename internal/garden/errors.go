package garden

import "errors"

// Sentinel errors returned by the garden service. Callers are expected
// to branch on these with errors.Is and treat ErrNotFound as a normal,
// handled absence.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
