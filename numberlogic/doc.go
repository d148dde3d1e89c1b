// Package numberlogic validates and propagates constraints around numbered
// cells: a number cell with value k must end up axis-adjacent to exactly k
// triangle cells.
//
// Ported from original_source/package/number_logic.py.
package numberlogic
