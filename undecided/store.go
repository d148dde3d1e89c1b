package undecided

import (
	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
)

// Store maps every undecided location to its remaining option set, and
// maintains buckets[k] = the set of locations with exactly k options
// remaining, so the solver can find a minimal-option location in O(1)
// amortized time.
type Store struct {
	opts    map[loc.Loc]cell.Set
	buckets []map[loc.Loc]struct{} // buckets[k] for k in [0, len(buckets))
}

// New builds a Store from an explicit location→options mapping, deriving
// the bucket index from the initial option counts.
func New(opts map[loc.Loc]cell.Set) *Store {
	s := &Store{opts: make(map[loc.Loc]cell.Set, len(opts))}
	for l, o := range opts {
		s.opts[l] = o
	}
	s.rebuildBuckets()
	return s
}

// FromBoard returns a Store seeded with every Undecided cell on b, each
// given the full option set. Ports all_opts_undecided.
func FromBoard(b *cell.Board) *Store {
	opts := make(map[loc.Loc]cell.Set)
	for _, lc := range b.Cells() {
		if lc.Cell.Kind == cell.Undecided {
			opts[lc.Loc] = cell.AllOptions
		}
	}
	return New(opts)
}

func (s *Store) rebuildBuckets() {
	s.buckets = make([]map[loc.Loc]struct{}, 6)
	for i := range s.buckets {
		s.buckets[i] = make(map[loc.Loc]struct{})
	}
	for l, o := range s.opts {
		s.ensureBucket(o.Count())
		s.buckets[o.Count()][l] = struct{}{}
	}
}

func (s *Store) ensureBucket(k int) {
	for len(s.buckets) <= k {
		s.buckets = append(s.buckets, make(map[loc.Loc]struct{}))
	}
}

// Len reports how many locations are still undecided.
func (s *Store) Len() int { return len(s.opts) }

// Locs returns a snapshot of the currently-undecided locations. Values may
// still be mutated in place via RemoveOpts/KeepOpts while iterating this
// snapshot, mirroring Python's "iterate keys, mutate values" idiom in
// Solver._initial_prune.
func (s *Store) Locs() []loc.Loc {
	out := make([]loc.Loc, 0, len(s.opts))
	for l := range s.opts {
		out = append(out, l)
	}
	return out
}

// RemoveLoc removes a known undecided location entirely.
func (s *Store) RemoveLoc(l loc.Loc) error {
	o, ok := s.opts[l]
	if !ok {
		return ErrNotUndecided
	}
	delete(s.opts, l)
	delete(s.buckets[o.Count()], l)
	return nil
}

// HasOpt reports whether opt is a possible option for l.
func (s *Store) HasOpt(l loc.Loc, opt cell.Set) (bool, error) {
	o, ok := s.opts[l]
	if !ok {
		return false, ErrNotUndecided
	}
	return o.Has(opt), nil
}

// GetOpts returns the current option set for l.
func (s *Store) GetOpts(l loc.Loc) (cell.Set, error) {
	o, ok := s.opts[l]
	if !ok {
		return 0, ErrNotUndecided
	}
	return o, nil
}

// RemoveOpts drops the given options from l's set, returning true iff at
// least one option remains.
func (s *Store) RemoveOpts(l loc.Loc, drop cell.Set) (bool, error) {
	return s.filterOpts(l, func(cur cell.Set) cell.Set { return cur.Without(drop) })
}

// KeepOpts restricts l's set to (at most) the given options, returning true
// iff at least one option remains.
func (s *Store) KeepOpts(l loc.Loc, keep cell.Set) (bool, error) {
	return s.filterOpts(l, func(cur cell.Set) cell.Set { return cur & keep })
}

func (s *Store) filterOpts(l loc.Loc, f func(cell.Set) cell.Set) (bool, error) {
	cur, ok := s.opts[l]
	if !ok {
		return false, ErrNotUndecided
	}
	next := f(cur)

	prevCount, nextCount := cur.Count(), next.Count()
	s.ensureBucket(nextCount)
	delete(s.buckets[prevCount], l)
	s.buckets[nextCount][l] = struct{}{}
	s.opts[l] = next

	return nextCount > 0, nil
}

// MinOptions returns an arbitrary location from the lowest non-empty
// bucket whose index is >= 1, and false if no undecided locations remain.
// A non-empty bucket 0 (an already-discovered contradiction) is never a
// valid state to call this on; callers must check for contradictions as
// they arise during RemoveOpts/KeepOpts instead.
func (s *Store) MinOptions() (loc.Loc, cell.Set, bool) {
	for k := 1; k < len(s.buckets); k++ {
		for l := range s.buckets[k] {
			return l, s.opts[l], true
		}
	}
	return loc.Loc{}, 0, false
}

// Clone deep-copies the store. Each recursive search branch owns its copy.
func (s *Store) Clone() *Store {
	out := &Store{
		opts:    make(map[loc.Loc]cell.Set, len(s.opts)),
		buckets: make([]map[loc.Loc]struct{}, len(s.buckets)),
	}
	for l, o := range s.opts {
		out.opts[l] = o
	}
	for i, b := range s.buckets {
		nb := make(map[loc.Loc]struct{}, len(b))
		for l := range b {
			nb[l] = struct{}{}
		}
		out.buckets[i] = nb
	}
	return out
}
