// Package cell defines the closed Cell tagged-variant and the Board grid it
// lives on, ported from gridgraph.GridGraph's 2D-slice-plus-bounds-guard
// shape (see gridgraph/gridgraph.go's NewGridGraph / InBounds), adapted so
// out-of-bounds reads return Black rather than an error — Shakashaka's
// number-cell rule treats the board edge as an implicit wall.
package cell
