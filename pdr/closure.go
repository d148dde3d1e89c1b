package pdr

import (
	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
)

// half is the displacement (0.5, 0.5) in doubled-integer coordinates.
var half = loc.FromDoubled(1, 1)

// Dimensions returns the X and Y extents (in cells) of the smallest
// diagonal rectangle whose perimeter could contain every visited triangle.
func (p *PartialDiagonalRectangle) Dimensions() (xLength, yLength int) {
	xLength = maxInt(1, len(p.Sides[loc.UL]), len(p.Sides[loc.LR]))
	yLength = maxInt(1, len(p.Sides[loc.LL]), len(p.Sides[loc.UR]))
	return xLength, yLength
}

// WhitespaceEndpoints returns, for each side, the whitespace-grid location
// just past its first and last triangle — nil where a side has no
// triangles yet.
func (p *PartialDiagonalRectangle) WhitespaceEndpoints() (starts, ends [4]*loc.Loc) {
	for i := 0; i < 4; i++ {
		side := p.Sides[i]
		if len(side) == 0 {
			continue
		}
		ccw := loc.RotateIndex(i, loc.CounterClockwise)
		cw := loc.RotateIndex(i, loc.Clockwise)

		start := side[0].Add(half).Add(loc.ChunkDeltasClockwise[ccw])
		end := side[len(side)-1].Add(half).Add(loc.ChunkDeltasClockwise[cw])
		starts[i] = &start
		ends[i] = &end
	}
	return starts, ends
}

// FindCorner picks a side index to anchor the closure rectangle on: the
// sole non-empty side if only one exists, or any side whose whitespace end
// meets the next side's whitespace start. Returns ok=false if no anchor
// exists (never happens once ConstructFromStartingLoc has visited at least
// one triangle).
func (p *PartialDiagonalRectangle) FindCorner(starts, ends [4]*loc.Loc) (index int, ok bool) {
	nonEmpty := 0
	for _, s := range p.Sides {
		if len(s) > 0 {
			nonEmpty++
		}
	}
	if nonEmpty == 1 {
		for i, s := range p.Sides {
			if len(s) > 0 {
				return i, true
			}
		}
	}

	for i := 0; i < 4; i++ {
		next := loc.RotateIndex(i, loc.Clockwise)
		if ends[i] != nil && starts[next] != nil && *ends[i] == *starts[next] {
			return i, true
		}
	}
	return 0, false
}

// ClosureCorners returns the start and end whitespace corners of all four
// sides of the closure rectangle, anchored at foundCorner (the end corner
// of side cornerIndex).
func (p *PartialDiagonalRectangle) ClosureCorners(cornerIndex int, foundCorner loc.Loc, xLength, yLength int) (startCorners, endCorners [4]loc.Loc) {
	firstCornerToCorner := [4]loc.Loc{
		loc.New(0, 0),
		loc.New(1, 1).MulInt(xLength),
		loc.New(1, 1).MulInt(xLength).Add(loc.New(1, -1).MulInt(yLength)),
		loc.New(1, -1).MulInt(yLength),
	}

	firstCorner := foundCorner.Sub(firstCornerToCorner[cornerIndex])
	var corners [4]loc.Loc
	for i := 0; i < 4; i++ {
		corners[i] = firstCorner.Add(firstCornerToCorner[i])
	}
	endCorners = corners
	for i := 0; i < 4; i++ {
		startCorners[i] = corners[(i+3)%4]
	}
	return startCorners, endCorners
}

// whitespaceCornersToSide lays out the triangle locations along side
// sideIndex between two whitespace corners.
func whitespaceCornersToSide(sideIndex int, startCorner, endCorner loc.Loc) []loc.Loc {
	diff := endCorner.Sub(startCorner)
	dx, _, _ := diff.Int()
	numSteps := absInt(dx)
	if numSteps == 0 {
		return nil
	}
	step, ok := diff.DivInt(numSteps)
	if !ok {
		panic("pdr: closure side displacement is not an exact diagonal step")
	}

	ccw := loc.RotateIndex(sideIndex, loc.CounterClockwise)
	offset := half.Add(loc.ChunkDeltasClockwise[ccw])

	out := make([]loc.Loc, numSteps)
	for i := 0; i < numSteps; i++ {
		out[i] = startCorner.Add(step.MulInt(i)).Sub(offset)
	}
	return out
}

// ClosureSides builds all four sides of the closure rectangle from its
// corners.
func (p *PartialDiagonalRectangle) ClosureSides(startCorners, endCorners [4]loc.Loc) [4][]loc.Loc {
	var sides [4][]loc.Loc
	for i := 0; i < 4; i++ {
		sides[i] = whitespaceCornersToSide(i, startCorners[i], endCorners[i])
	}
	return sides
}

// ClosureInterior returns every cell strictly inside the closure rectangle,
// found by pairing up rows from the LL/UL sides with rows from the UR/LR
// sides.
func (p *PartialDiagonalRectangle) ClosureInterior(sides [4][]loc.Loc) map[loc.Loc]struct{} {
	bottomToTopLeft := append(append([]loc.Loc{}, sides[loc.LL]...), sides[loc.UL]...)
	topToBottomRight := append(append([]loc.Loc{}, sides[loc.UR]...), sides[loc.LR]...)
	height := len(bottomToTopLeft)

	interior := make(map[loc.Loc]struct{})
	for i := 0; i < height; i++ {
		left := bottomToTopLeft[i]
		right := topToBottomRight[height-i-1]
		lx, ly, _ := left.Int()
		rx, _, _ := right.Int()
		for x := lx + 1; x < rx; x++ {
			interior[loc.New(x, ly)] = struct{}{}
		}
	}
	return interior
}

// ClosurePerimeter returns, for each side, the triangle cell every
// perimeter location along that side must hold.
func (p *PartialDiagonalRectangle) ClosurePerimeter(sides [4][]loc.Loc) map[loc.Loc]cell.Cell {
	perimeter := make(map[loc.Loc]cell.Cell)
	for i := 0; i < 4; i++ {
		for _, l := range sides[i] {
			perimeter[l] = cell.NewTriangle(loc.Corner(i))
		}
	}
	return perimeter
}

// GetClosure computes the full closure of the partial diagonal rectangle:
// the perimeter triangles and interior empty cells a complete diagonal
// rectangle built from it would require. It panics if the rectangle has
// no triangles at all, which never happens after a successful
// ConstructFromStartingLoc.
func (p *PartialDiagonalRectangle) GetClosure() (perimeter map[loc.Loc]cell.Cell, interior map[loc.Loc]struct{}) {
	xLength, yLength := p.Dimensions()
	starts, ends := p.WhitespaceEndpoints()
	cornerIndex, found := p.FindCorner(starts, ends)
	if !found {
		panic("pdr: GetClosure called on a rectangle with no visited triangles")
	}

	foundCorner := *ends[cornerIndex]
	startCorners, endCorners := p.ClosureCorners(cornerIndex, foundCorner, xLength, yLength)
	sides := p.ClosureSides(startCorners, endCorners)

	return p.ClosurePerimeter(sides), p.ClosureInterior(sides)
}
