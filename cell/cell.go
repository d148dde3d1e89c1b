package cell

import "github.com/shakashaka/solver/loc"

// Kind is the closed tag of a Cell. Cell is a plain comparable struct, never
// an interface hierarchy — see the spec's "Tagged variants" design note.
type Kind uint8

const (
	Black Kind = iota
	Number
	Undecided
	Empty
	Triangle
)

// Cell is a single board entry. Num is meaningful only when Kind == Number;
// Corner is meaningful only when Kind == Triangle.
type Cell struct {
	Kind   Kind
	Num    int
	Corner loc.Corner
}

// NewBlack returns a given obstacle cell.
func NewBlack() Cell { return Cell{Kind: Black} }

// NewNumber returns a given numeric-constraint cell, n in [0,4].
func NewNumber(n int) Cell { return Cell{Kind: Number, Num: n} }

// NewUndecided returns an unassigned cell.
func NewUndecided() Cell { return Cell{Kind: Undecided} }

// NewEmpty returns a decided full-white cell.
func NewEmpty() Cell { return Cell{Kind: Empty} }

// NewTriangle returns a decided triangle cell with the given corner.
func NewTriangle(c loc.Corner) Cell { return Cell{Kind: Triangle, Corner: c} }

// IsTriangle reports whether c is a decided triangle.
func (c Cell) IsTriangle() bool { return c.Kind == Triangle }

// IsEmptyOrUndecided reports whether c is decided-empty or still undecided.
func (c Cell) IsEmptyOrUndecided() bool { return c.Kind == Empty || c.Kind == Undecided }

// IsNumber reports whether c is a given numeric constraint.
func (c Cell) IsNumber() bool { return c.Kind == Number }

// String renders the name of this cell's kind, e.g. "Triangle", for debug
// formatting only; board printing with glyphs lives in shakatext.
func (c Cell) String() string {
	switch c.Kind {
	case Black:
		return "Black"
	case Number:
		return "Number"
	case Undecided:
		return "Undecided"
	case Empty:
		return "Empty"
	case Triangle:
		return "Triangle"
	default:
		return "?"
	}
}
