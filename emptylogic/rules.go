package emptylogic

import (
	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
	"github.com/shakashaka/solver/undecided"
)

// ValidateAxisRectangle reports whether the empty-or-undecided connected
// component containing start is a perfect axis-aligned rectangle, and
// returns that component. Used by the final solution validator.
func ValidateAxisRectangle(b *cell.Board, start loc.Loc) (bool, map[loc.Loc]struct{}) {
	if !b.At(start).IsEmptyOrUndecided() {
		return false, nil
	}
	component := ConnectedSatisfying(b, start, cell.Cell.IsEmptyOrUndecided)
	return IsRectangle(component), component
}

// IsEmptyStillPossible reports whether every cell in the minimum closure of
// the decided-empty region containing start could still be empty: already
// decided-empty, or undecided with Empty still an option.
func IsEmptyStillPossible(b *cell.Board, u *undecided.Store, start loc.Loc) bool {
	component := ConnectedSatisfying(b, start, isDecidedEmpty)
	closure := MinClosure(component)

	for l := range closure {
		c := b.At(l)
		switch c.Kind {
		case cell.Undecided:
			has, err := u.HasOpt(l, cell.SetEmpty)
			if err != nil || !has {
				return false
			}
		case cell.Empty:
			// fine
		default:
			return false
		}
	}
	return true
}

// DeduceConsequencesEmpty forces every cell in the minimum closure of the
// decided-empty region containing start to be empty, returning false if any
// such cell runs out of options (a contradiction).
func DeduceConsequencesEmpty(b *cell.Board, u *undecided.Store, start loc.Loc) bool {
	component := ConnectedSatisfying(b, start, isDecidedEmpty)
	closure := MinClosure(component)

	for l := range closure {
		c := b.At(l)
		switch c.Kind {
		case cell.Undecided:
			ok, err := u.KeepOpts(l, cell.SetEmpty)
			if err != nil || !ok {
				return false
			}
		case cell.Empty:
			// fine
		default:
			return false
		}
	}
	return true
}

func isDecidedEmpty(c cell.Cell) bool { return c.Kind == cell.Empty }
