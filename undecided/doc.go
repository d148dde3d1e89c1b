// Package undecided stores, for every undecided board location, the set of
// option values it could still take, bucketed by option count so that
// "choose an undecided location with the fewest remaining options" is O(1)
// amortized. Ported from original_source/package/Undecided.py, generalized
// per the spec's open question: the bucket slice grows if an option count
// beyond the initial five is ever requested, rather than assuming a fixed
// six-slot array.
package undecided
