package numberlogic

import (
	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
	"github.com/shakashaka/solver/undecided"
)

// ValidateNumber reports whether the number cell at l has exactly as many
// axis-adjacent triangle cells as its number. It panics if the cell at l is
// not a number cell, which indicates a programming error.
func ValidateNumber(b *cell.Board, l loc.Loc) bool {
	c := b.At(l)
	if !c.IsNumber() {
		panic("numberlogic: ValidateNumber called on a non-number cell " + c.String())
	}

	triangles := 0
	for _, d := range loc.AxisNeighbors {
		if b.At(l.Add(d)).IsTriangle() {
			triangles++
		}
	}
	return triangles == c.Num
}

// UpdateOptsAroundNumber propagates the constraint implied by the number
// cell at l to its axis neighbors: once enough triangles are already placed
// to satisfy the number, every undecided neighbor is forced to Empty; once
// enough non-triangles are already placed that no more triangles could fit,
// every undecided neighbor has Empty excluded. Reports false on contradiction
// (too many triangles, too many non-triangles, or an undecided neighbor left
// with no options). Panics if the cell at l is not a number cell.
func UpdateOptsAroundNumber(b *cell.Board, u *undecided.Store, l loc.Loc) bool {
	c := b.At(l)
	if !c.IsNumber() {
		panic("numberlogic: UpdateOptsAroundNumber called on a non-number cell " + c.String())
	}

	requiredTriangles := c.Num
	requiredNonTriangles := 4 - requiredTriangles

	numTriangles, numNonTriangles := 0, 0
	var undecidedNeighbors []loc.Loc

	for _, d := range loc.AxisNeighbors {
		n := l.Add(d)
		nc := b.At(n)
		switch {
		case nc.Kind == cell.Undecided:
			undecidedNeighbors = append(undecidedNeighbors, n)
		case nc.IsTriangle():
			numTriangles++
		default:
			numNonTriangles++
		}
	}

	if numTriangles > requiredTriangles || numNonTriangles > requiredNonTriangles {
		return false
	}

	if numTriangles == requiredTriangles {
		for _, n := range undecidedNeighbors {
			if ok, err := u.KeepOpts(n, cell.SetEmpty); err != nil || !ok {
				return false
			}
		}
	}

	if numNonTriangles == requiredNonTriangles {
		for _, n := range undecidedNeighbors {
			if ok, err := u.RemoveOpts(n, cell.SetEmpty); err != nil || !ok {
				return false
			}
		}
	}

	return true
}
