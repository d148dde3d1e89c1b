// Package solver runs the branch-and-propagate search that finds every
// legal Shakashaka solution on a board: assign a cell, propagate its
// consequences through emptylogic/pdr/numberlogic, and branch over
// whatever options survive. Multiple options at a single location fan out
// across goroutines bounded by a thread budget; a single surviving option
// is assigned directly without spawning anything.
//
// Ported from original_source/package/Solver.py.
package solver
