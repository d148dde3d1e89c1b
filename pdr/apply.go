package pdr

import (
	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
	"github.com/shakashaka/solver/undecided"
)

// closureMode selects whether applyClosure mutates the undecided store to
// force its conclusions, or only reads it to check they are still
// possible. Collapses what the Python source implements as two
// near-identical functions (deduce_consequences_triangle and
// is_triangle_still_possible) into one traversal, per the Design Note.
type closureMode int

const (
	modeForce closureMode = iota
	modeProbe
)

// keepOrHas either narrows l's options to keep, or checks that at least one
// option in keep is still available, depending on mode. Set.Has treats a
// multi-bit argument as "any of these", which is exactly "at least one
// option in keep" for the probe case.
func keepOrHas(u *undecided.Store, l loc.Loc, keep cell.Set, mode closureMode) bool {
	if mode == modeForce {
		ok, err := u.KeepOpts(l, keep)
		return err == nil && ok
	}
	has, err := u.HasOpt(l, keep)
	return err == nil && has
}

// applyClosure walks the perimeter, interior and unfinished ends of a
// partial diagonal rectangle's closure, either forcing every implied
// consequence onto u (modeForce) or checking that all of them are still
// possible without mutating u (modeProbe). Returns false on the first
// contradiction found.
func applyClosure(b *cell.Board, u *undecided.Store, visited map[loc.Loc]struct{}, perimeter map[loc.Loc]cell.Cell, interior map[loc.Loc]struct{}, ends map[End]struct{}, mode closureMode) bool {
	for l, expected := range perimeter {
		c := b.At(l)
		switch c.Kind {
		case cell.Undecided:
			if !keepOrHas(u, l, cell.CellBit(expected)|cell.SetEmpty, mode) {
				return false
			}
		case cell.Triangle:
			if c.Corner != expected.Corner {
				return false
			}
		case cell.Empty:
			// already consistent with the closure's perimeter requirement
		default:
			return false
		}
	}

	for l := range interior {
		c := b.At(l)
		switch c.Kind {
		case cell.Undecided:
			if !keepOrHas(u, l, cell.SetEmpty, mode) {
				return false
			}
		case cell.Empty:
			// already consistent
		default:
			return false
		}
	}

	for end := range ends {
		dirIndex := int(end.Corner)
		for _, rot := range [2]loc.Rotation{loc.Clockwise, loc.CounterClockwise} {
			turnLoc, turnCorner, continueLoc := turnAndContinue(rot, dirIndex, end.Loc)

			if _, ok := visited[turnLoc]; ok {
				continue
			}
			if _, ok := visited[continueLoc]; ok {
				continue
			}

			turnOpen := b.At(turnLoc).Kind == cell.Undecided
			contOpen := b.At(continueLoc).Kind == cell.Undecided

			if !turnOpen && !contOpen {
				return false
			}
			if contOpen && !turnOpen {
				if !keepOrHas(u, continueLoc, cell.CellBit(cell.NewTriangle(end.Corner)), mode) {
					return false
				}
			}
			if turnOpen && !contOpen {
				if !keepOrHas(u, turnLoc, cell.CellBit(cell.NewTriangle(turnCorner)), mode) {
					return false
				}
			}
		}
	}

	return true
}

// DeduceConsequencesTriangle forces onto u every consequence implied by the
// complete diagonal rectangle that must contain the triangle at start.
// Panics if start's triangle run cannot be constructed, which would
// indicate a genuine board inconsistency the caller should never produce.
func DeduceConsequencesTriangle(b *cell.Board, u *undecided.Store, start loc.Loc) bool {
	p := New(b)
	ok, err := p.ConstructFromStartingLoc(start)
	if err != nil {
		panic("pdr: " + err.Error())
	}
	if !ok {
		panic("pdr: expected a constructable diagonal rectangle at " + start.String())
	}

	perimeter, interior := p.GetClosure()
	return applyClosure(b, u, p.Visited, perimeter, interior, p.UnfinishedEnds, modeForce)
}

// IsTriangleStillPossible reports whether placing c at start (temporarily,
// restored before returning) leaves a consistent diagonal rectangle
// closure under u's current options.
func IsTriangleStillPossible(b *cell.Board, u *undecided.Store, start loc.Loc, c cell.Cell) bool {
	original := b.At(start)
	b.Set(start, c)
	defer b.Set(start, original)

	p := New(b)
	ok, err := p.ConstructFromStartingLoc(start)
	if err != nil || !ok {
		return false
	}

	perimeter, interior := p.GetClosure()
	return applyClosure(b, u, p.Visited, perimeter, interior, p.UnfinishedEnds, modeProbe)
}
