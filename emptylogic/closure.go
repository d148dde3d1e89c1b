package emptylogic

import (
	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
)

// ConnectedSatisfying flood-fills from start over axis-adjacent cells,
// returning every visited location that either is start itself or
// satisfies pred. Ported from get_connected_satisfying_condition: the seed
// always belongs to the result even if it does not itself satisfy pred,
// but only locations satisfying pred (or the seed) propagate the flood
// further — grounded on gridgraph.ConnectedComponents' queue/visited BFS.
func ConnectedSatisfying(b *cell.Board, start loc.Loc, pred func(cell.Cell) bool) map[loc.Loc]struct{} {
	visited := make(map[loc.Loc]struct{})
	satisfying := make(map[loc.Loc]struct{})
	stack := []loc.Loc{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}

		if cur == start || pred(b.At(cur)) {
			satisfying[cur] = struct{}{}
			for _, d := range loc.AxisNeighbors {
				n := cur.Add(d)
				if _, seen := visited[n]; !seen {
					stack = append(stack, n)
				}
			}
		}
	}

	return satisfying
}

// AxisClosure returns the smallest axis-aligned bounding box enclosing s.
// s must be non-empty.
func AxisClosure(s map[loc.Loc]struct{}) map[loc.Loc]struct{} {
	first := true
	var xMin, xMax, yMin, yMax int
	for l := range s {
		x, y, _ := l.Int()
		if first {
			xMin, xMax, yMin, yMax = x, x, y, y
			first = false
			continue
		}
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}

	out := make(map[loc.Loc]struct{}, (xMax-xMin+1)*(yMax-yMin+1))
	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			out[loc.New(x, y)] = struct{}{}
		}
	}
	return out
}

// diagonalForward maps (x, y) to diagonal coordinates (x-y, x+y).
func diagonalForward(l loc.Loc) loc.Loc {
	x, y, _ := l.Int()
	return loc.New(x-y, x+y)
}

// diagonalInverse maps diagonal coordinates (u, v) back to axis coordinates
// ((u+v)/2, (v-u)/2), which may be non-integral.
func diagonalInverse(l loc.Loc) loc.Loc {
	a, b := l.Doubled() // a == 2u, b == 2v since l is integral
	return loc.FromDoubled((a+b)/2, (b-a)/2)
}

// DiagonalClosure transforms s into diagonal coordinates, takes the axis
// closure there, and transforms back, discarding any result that is not
// integral in axis coordinates. s must be non-empty.
func DiagonalClosure(s map[loc.Loc]struct{}) map[loc.Loc]struct{} {
	diagLocs := make(map[loc.Loc]struct{}, len(s))
	for l := range s {
		diagLocs[diagonalForward(l)] = struct{}{}
	}
	diagClosure := AxisClosure(diagLocs)

	out := make(map[loc.Loc]struct{}, len(diagClosure))
	for l := range diagClosure {
		axisLoc := diagonalInverse(l)
		if axisLoc.IsIntegral() {
			out[axisLoc] = struct{}{}
		}
	}
	return out
}

// MinClosure is the intersection of the axis and diagonal closures of s:
// the smallest rectangular-or-diagonal-rectangular superset that still
// fits both orientations. s must be non-empty.
func MinClosure(s map[loc.Loc]struct{}) map[loc.Loc]struct{} {
	axis := AxisClosure(s)
	diag := DiagonalClosure(s)
	out := make(map[loc.Loc]struct{})
	for l := range axis {
		if _, ok := diag[l]; ok {
			out[l] = struct{}{}
		}
	}
	return out
}

// IsRectangle reports whether s is already its own axis closure, i.e. is a
// perfect axis-aligned rectangle. s must be non-empty.
func IsRectangle(s map[loc.Loc]struct{}) bool {
	closure := AxisClosure(s)
	if len(closure) != len(s) {
		return false
	}
	for l := range s {
		if _, ok := closure[l]; !ok {
			return false
		}
	}
	return true
}
