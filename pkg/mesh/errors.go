package mesh

import "errors"

// Common sentinel errors
var (
	ErrDuplicateNodeID = errors.New("duplicate node ID")
	ErrNodeNotFound    = errors.New("node not found")
)
