package validate

import (
	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/emptylogic"
	"github.com/shakashaka/solver/loc"
	"github.com/shakashaka/solver/numberlogic"
	"github.com/shakashaka/solver/pdr"
)

// Validate reports whether b, assumed fully decided, is a legal Shakashaka
// solution. Black cells need no check; every triangle is validated as part
// of its enclosing diagonal rectangle, every empty-or-undecided cell as
// part of its enclosing axis rectangle, and every number cell against its
// adjacent triangle count. Cells already covered by an earlier rectangle
// are skipped.
func Validate(b *cell.Board) bool {
	visited := make(map[loc.Loc]struct{})

	for _, lc := range b.Cells() {
		if _, ok := visited[lc.Loc]; ok {
			continue
		}

		switch {
		case lc.Cell.IsTriangle():
			v := pdr.NewDiagonalRectangleValidator(b)
			if !v.Validate(lc.Loc) {
				return false
			}
			for l := range v.ValidatedLocs() {
				visited[l] = struct{}{}
			}
		case lc.Cell.IsEmptyOrUndecided():
			ok, component := emptylogic.ValidateAxisRectangle(b, lc.Loc)
			if !ok {
				return false
			}
			for l := range component {
				visited[l] = struct{}{}
			}
		case lc.Cell.IsNumber():
			if !numberlogic.ValidateNumber(b, lc.Loc) {
				return false
			}
		}
	}

	return true
}
