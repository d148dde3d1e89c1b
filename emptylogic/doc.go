// Package emptylogic reasons about connected regions of empty-or-undecided
// cells: it computes the axis-rectangle closure, the diagonal-rectangle
// closure, and their intersection (the minimum closure), and uses them to
// either check or force that a connected empty region stays a valid
// rectangle (axis-aligned or 45°-rotated).
//
// Flood fill is grounded on gridgraph.ConnectedComponents' queue-plus-
// visited-set BFS; the closure algebra is ported from
// original_source/package/empty_logic.py.
package emptylogic
