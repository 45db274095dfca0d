package solver

import "errors"

var (
	// ErrUnsolvable reports that a board admits no valid completion: either
	// propagation emptied a cell's candidate set or search exhausted every
	// branch.
	ErrUnsolvable = errors.New("board is unsolvable")

	// ErrMalformed reports puzzle text that does not contain exactly 81 cells.
	ErrMalformed = errors.New("malformed puzzle")

	// ErrUnsolved reports an attempt to serialize a board that still has
	// undetermined cells.
	ErrUnsolved = errors.New("board is not solved")
)
