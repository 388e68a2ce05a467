package engine

import "errors"

// Edits that fail with one of these errors leave the tree exactly as it was.
var (
	ErrNotFound      = errors.New("node not found")
	ErrInvalidTarget = errors.New("operation not valid for this node")
	ErrBelowMinimum  = errors.New("extent would fall below minimum")
	ErrRootDelete    = errors.New("root cannot be deleted, reset it instead")
)
