package pdr

import "errors"

// ErrNotATriangle is returned when constructing a partial diagonal
// rectangle from a location that does not hold a decided triangle cell.
// Ported from the ValueError DiagonalRectangleValidator._validate_initial_triangle
// raises in the Python source; reaching it indicates a caller bug, not a
// puzzle contradiction, so it is returned as an error rather than folded
// into the usual bool contradiction signal.
var ErrNotATriangle = errors.New("pdr: location does not hold a triangle cell")
