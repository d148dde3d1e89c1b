package solver

import "errors"

// ErrUnsatisfiable is returned by New when a number cell's constraints are
// already violated by the board's starting state, before any search has
// begun — an "invalid input" error, not a silent contradiction.
var ErrUnsatisfiable = errors.New("solver: board is unsatisfiable")
