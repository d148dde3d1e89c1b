// Package pdr analyzes partial diagonal rectangles: connected runs of
// triangle cells that must eventually close into a single 45°-rotated
// rectangle of empty space bordered by matching triangles.
//
// It computes the closure of a partial diagonal rectangle — the perimeter
// triangles and interior empty cells a complete diagonal rectangle would
// need — and uses that closure to either force consequences onto an
// undecided.Store or probe whether a candidate triangle placement is still
// consistent with one. Both operations share a single closure-application
// traversal (Design Note: mode-parameterized instead of duplicated).
//
// Ported from original_source/package/triangle_logic.py. The flood fill
// is a stack-plus-visited-set walk over chunk-corner adjacency rather than
// axis adjacency.
package pdr
