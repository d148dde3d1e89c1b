package pdr

import (
	"sort"

	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
)

// PartialDiagonalRectangle is the connected run of triangle cells
// discovered by walking turn/continue adjacency from a starting triangle.
// Sides are indexed by loc.Corner (LL, UL, UR, LR); UnfinishedEnds holds
// the visited triangles that have no matching neighbor on one of their two
// rotation directions, i.e. the rectangle is not yet closed on that side.
type PartialDiagonalRectangle struct {
	board *cell.Board

	Visited        map[loc.Loc]struct{}
	Sides          [4][]loc.Loc
	UnfinishedEnds map[End]struct{}
}

// New returns a PartialDiagonalRectangle analyzer over b. Call
// ConstructFromStartingLoc before using any other method.
func New(b *cell.Board) *PartialDiagonalRectangle {
	return &PartialDiagonalRectangle{
		board:          b,
		UnfinishedEnds: make(map[End]struct{}),
	}
}

func (p *PartialDiagonalRectangle) toggleUnfinishedEnd(l loc.Loc) {
	end := End{Loc: l, Corner: p.board.At(l).Corner}
	if _, ok := p.UnfinishedEnds[end]; ok {
		delete(p.UnfinishedEnds, end)
	} else {
		p.UnfinishedEnds[end] = struct{}{}
	}
}

// ConstructFromStartingLoc walks every triangle connected to the triangle
// at start by turn/continue adjacency, populating Visited, Sides and
// UnfinishedEnds. It returns false if the run splits illegally (a triangle
// would need to both turn and continue on the same rotation), which can
// never happen on a consistent board but can on a speculative one being
// probed. It returns ErrNotATriangle if start does not hold a triangle.
func (p *PartialDiagonalRectangle) ConstructFromStartingLoc(start loc.Loc) (bool, error) {
	if !p.board.At(start).IsTriangle() {
		return false, ErrNotATriangle
	}

	p.Visited = make(map[loc.Loc]struct{})
	p.UnfinishedEnds = make(map[End]struct{})
	toVisit := []loc.Loc{start}
	pairsSeen := make(map[locPair][]loc.Loc)

	for len(toVisit) > 0 {
		current := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		if _, seen := p.Visited[current]; seen {
			continue
		}
		p.Visited[current] = struct{}{}

		triangle := p.board.At(current)
		dirIndex := int(triangle.Corner)
		var pairs []locPair

		for _, rot := range [2]loc.Rotation{loc.Clockwise, loc.CounterClockwise} {
			turnLoc, turnCorner, continueLoc := turnAndContinue(rot, dirIndex, current)
			paths := 0

			if tc := p.board.At(turnLoc); tc.Kind == cell.Triangle && tc.Corner == turnCorner {
				toVisit = append(toVisit, turnLoc)
				pairs = append(pairs, sortPair(current, turnLoc))
				paths++
			}
			if cc := p.board.At(continueLoc); cc.Kind == cell.Triangle && cc.Corner == triangle.Corner {
				toVisit = append(toVisit, continueLoc)
				pairs = append(pairs, sortPair(current, continueLoc))
				paths++
			}
			if paths > 1 {
				return false, nil
			}
		}

		for _, pr := range pairs {
			existing, ok := pairsSeen[pr]
			if !ok {
				pairsSeen[pr] = []loc.Loc{current}
				continue
			}
			if len(existing) == 1 && existing[0] != current {
				pairsSeen[pr] = append(existing, current)
				p.toggleUnfinishedEnd(existing[0])
				p.toggleUnfinishedEnd(current)
			}
		}
	}

	if len(p.Visited) == 1 {
		p.toggleUnfinishedEnd(start)
	}

	for i := 0; i < 4; i++ {
		var side []loc.Loc
		for l := range p.Visited {
			if p.board.At(l).Corner == loc.Corner(i) {
				side = append(side, l)
			}
		}
		reverse := i == 0 || i == 3
		sort.Slice(side, func(a, b int) bool {
			xa, _, _ := side[a].Int()
			xb, _, _ := side[b].Int()
			if reverse {
				return xa > xb
			}
			return xa < xb
		})
		p.Sides[i] = side
	}

	return true, nil
}
