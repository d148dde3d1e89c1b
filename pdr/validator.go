package pdr

import (
	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
)

// DiagonalRectangleValidator checks that the triangles reachable from a
// starting triangle by chunk adjacency, together with whatever
// empty/undecided cells fill the gaps between them, form a single
// consistent 45°-rotated rectangle. Unlike PartialDiagonalRectangle it
// walks chunk corners directly rather than triangle-to-triangle, and it
// never mutates the board — used only by the final solution validator.
//
// Ported from triangle_logic.DiagonalRectangleValidator.
type DiagonalRectangleValidator struct {
	board           *cell.Board
	validatedChunks map[loc.Loc]struct{}
	validatedLocs   map[loc.Loc]struct{}
}

// NewDiagonalRectangleValidator returns a validator over b.
func NewDiagonalRectangleValidator(b *cell.Board) *DiagonalRectangleValidator {
	return &DiagonalRectangleValidator{
		board:           b,
		validatedChunks: make(map[loc.Loc]struct{}),
		validatedLocs:   make(map[loc.Loc]struct{}),
	}
}

// ValidatedLocs returns every cell location the last successful Validate
// call walked, so a caller (the full-board solution validator) can mark
// them visited and skip re-checking them under a different rule.
func (v *DiagonalRectangleValidator) ValidatedLocs() map[loc.Loc]struct{} {
	return v.validatedLocs
}

// Validate reports whether the diagonal rectangle starting from the
// triangle at initialLoc is complete and consistent.
func (v *DiagonalRectangleValidator) Validate(initialLoc loc.Loc) bool {
	triangle := v.board.At(initialLoc)
	if !triangle.IsTriangle() {
		return false
	}
	v.validatedLocs[initialLoc] = struct{}{}

	initialChunk := initialLoc.Sub(loc.ChunkDeltasClockwise[int(triangle.Corner)])

	if !v.validateChunkCells(initialChunk) {
		return false
	}
	return v.chunksFormDiagonalRectangle()
}

// validateChunkCells recursively checks that chunk's four corner cells
// each either hold the triangle that chunk's orientation expects, or are
// empty/undecided (in which case the adjacent chunk across that corner is
// checked too).
func (v *DiagonalRectangleValidator) validateChunkCells(chunk loc.Loc) bool {
	if _, ok := v.validatedChunks[chunk]; ok {
		return true
	}

	for i, delta := range loc.ChunkDeltasClockwise {
		l := chunk.Add(delta)
		if _, ok := v.validatedLocs[l]; ok {
			continue
		}

		c := v.board.At(l)
		matches := c.Kind == cell.Triangle && c.Corner == loc.Corner(i)
		open := c.Kind == cell.Undecided || c.Kind == cell.Empty
		if !matches && !open {
			return false
		}

		v.validatedLocs[l] = struct{}{}
		if open {
			if !v.validateChunkCells(chunk.Add(delta.MulInt(2))) {
				return false
			}
		}
	}

	v.validatedChunks[chunk] = struct{}{}
	return true
}

// chunksFormDiagonalRectangle checks that every validated chunk lies
// exactly on the diamond spanned by the leftmost, topmost and bottommost
// validated chunks — i.e. that the validated region is a single diagonal
// rectangle with no gaps or extra lobes.
func (v *DiagonalRectangleValidator) chunksFormDiagonalRectangle() bool {
	var left, top, bottom loc.Loc
	first := true
	for l := range v.validatedChunks {
		if first {
			left, top, bottom = l, l, l
			first = false
			continue
		}
		if l.X2 < left.X2 {
			left = l
		}
		if l.Y2 > top.Y2 {
			top = l
		}
		if l.Y2 < bottom.Y2 {
			bottom = l
		}
	}
	if first {
		return false
	}

	upRightSteps := top.Sub(left).Y2 / 2
	downRightSteps := -bottom.Sub(left).Y2 / 2

	expected := make(map[loc.Loc]struct{})
	for ur := 0; ur <= upRightSteps; ur++ {
		for dr := 0; dr <= downRightSteps; dr++ {
			p := left.Add(loc.New(1, 1).MulInt(ur)).Add(loc.New(1, -1).MulInt(dr))
			expected[p] = struct{}{}
		}
	}

	if len(expected) != len(v.validatedChunks) {
		return false
	}
	for l := range expected {
		if _, ok := v.validatedChunks[l]; !ok {
			return false
		}
	}
	return true
}
