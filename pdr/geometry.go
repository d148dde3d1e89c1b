package pdr

import "github.com/shakashaka/solver/loc"

// End is one loose end of a partial diagonal rectangle: a visited triangle
// location with no matching turn or continuation triangle on one side,
// which the rectangle must eventually be extended or closed from.
type End struct {
	Loc    loc.Loc
	Corner loc.Corner
}

// turnAndContinue returns the two locations a diagonal rectangle could
// extend to from current, a triangle of corner dirIndex, when rotating in
// the given direction: turnLoc/turnCorner is the triangle reached by
// turning the rectangle's edge, continueLoc is the triangle reached by
// running the edge straight on. Ported from get_turn_and_continue_data;
// loc.Corner's iota order already matches TRIANGLES_CLOCKWISE, so the
// corner itself doubles as its clockwise index.
func turnAndContinue(rot loc.Rotation, dirIndex int, current loc.Loc) (turnLoc loc.Loc, turnCorner loc.Corner, continueLoc loc.Loc) {
	rotIndex := loc.RotateIndex(dirIndex, rot)
	turnCorner = loc.Corner(rotIndex)
	turnLoc = current.Sub(loc.ChunkDeltasClockwise[dirIndex]).Add(loc.ChunkDeltasClockwise[rotIndex])
	continueLoc = current.Add(loc.ChunkDeltasClockwise[rotIndex].MulInt(2))
	return turnLoc, turnCorner, continueLoc
}

type locPair struct {
	A, B loc.Loc
}

// sortPair orders a and b so equal unordered pairs produce equal locPair
// keys, mirroring the Python sort_pair helper.
func sortPair(a, b loc.Loc) locPair {
	if a.X2 < b.X2 || (a.X2 == b.X2 && a.Y2 < b.Y2) {
		return locPair{a, b}
	}
	return locPair{b, a}
}

func maxInt(vs ...int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
