// Package loc provides the half-integer 2D coordinate type shared by every
// other Shakashaka package: board cells live at integer coordinates, and
// partial-diagonal-rectangle chunks live at half-integer coordinates.
//
// Loc stores coordinates doubled (as plain ints) rather than as floats, so
// that equality and hashing stay exact across the integer/half-integer
// boundary — Loc is a plain comparable struct and can be used directly as a
// map key, the same way core.Vertex in the teacher package keys graphs by a
// plain comparable ID.
package loc
