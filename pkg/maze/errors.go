package maze

import "errors"

// Sentinel errors returned by Verify.
var (
	// ErrAsymmetric indicates a passage opened on one side only, or one
	// leading out of the grid.
	ErrAsymmetric = errors.New("maze: asymmetric passage")

	// ErrDisconnected indicates cells unreachable from (0,0).
	ErrDisconnected = errors.New("maze: grid not connected")

	// ErrCyclic indicates more passages than a spanning tree allows.
	ErrCyclic = errors.New("maze: grid contains a cycle")
)
