// Package validate checks whether a fully-decided board is a legal
// Shakashaka solution: every triangle belongs to a complete, consistent
// diagonal rectangle, every maximal empty-or-undecided run is a perfect
// axis rectangle, and every number cell's count matches.
//
// Ported from original_source/package/SolutionValidator.py.
package validate
