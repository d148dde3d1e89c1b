package undecided

import "errors"

// ErrNotUndecided indicates an operation referenced a location that is not
// (or is no longer) tracked as undecided. Ported from the ValueErrors
// raised throughout original_source/package/Undecided.py; in Go these are
// internal-invariant-violation errors (spec §7), never expected in a
// correctly driven solver.
var ErrNotUndecided = errors.New("undecided: location is not tracked as undecided")
