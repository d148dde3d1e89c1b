package emptylogic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/emptylogic"
	"github.com/shakashaka/solver/loc"
	"github.com/shakashaka/solver/undecided"
)

func locSet(ls ...loc.Loc) map[loc.Loc]struct{} {
	out := make(map[loc.Loc]struct{}, len(ls))
	for _, l := range ls {
		out[l] = struct{}{}
	}
	return out
}

func TestAxisClosureIsBoundingBox(t *testing.T) {
	s := locSet(loc.New(0, 0), loc.New(2, 1))
	closure := emptylogic.AxisClosure(s)
	require.Len(t, closure, 6) // 3 x * 2 y
	require.Contains(t, closure, loc.New(1, 0))
	require.Contains(t, closure, loc.New(1, 1))
}

func TestIsRectangleTrueAndFalse(t *testing.T) {
	rect := locSet(loc.New(0, 0), loc.New(1, 0), loc.New(0, 1), loc.New(1, 1))
	require.True(t, emptylogic.IsRectangle(rect))

	lShape := locSet(loc.New(0, 0), loc.New(1, 0), loc.New(0, 1))
	require.False(t, emptylogic.IsRectangle(lShape))
}

func TestDiagonalClosureOfDiamond(t *testing.T) {
	// The four cells around (1,1) at distance 1 form a diagonal "diamond".
	// Its diagonal closure also forces in the center (1,1): a diagonal
	// rectangle whose perimeter is this diamond has (1,1) as its sole
	// interior cell. Its axis closure is the full 3x3 bounding box.
	diamond := locSet(loc.New(1, 0), loc.New(0, 1), loc.New(2, 1), loc.New(1, 2))
	withCenter := locSet(loc.New(1, 0), loc.New(0, 1), loc.New(2, 1), loc.New(1, 2), loc.New(1, 1))

	diag := emptylogic.DiagonalClosure(diamond)
	require.Equal(t, withCenter, diag)

	minClosure := emptylogic.MinClosure(diamond)
	require.Equal(t, withCenter, minClosure)
}

func TestConnectedSatisfyingIncludesSeedAlways(t *testing.T) {
	b := cell.NewUndecidedBoard(1)
	b.Set(loc.New(0, 0), cell.NewBlack())
	got := emptylogic.ConnectedSatisfying(b, loc.New(0, 0), cell.Cell.IsEmptyOrUndecided)
	require.Contains(t, got, loc.New(0, 0))
	require.Len(t, got, 1)
}

func TestValidateAxisRectangleOnSquare(t *testing.T) {
	b := cell.NewUndecidedBoard(2)
	ok, component := emptylogic.ValidateAxisRectangle(b, loc.New(0, 0))
	require.True(t, ok)
	require.Len(t, component, 4)
}

// emptyRing returns a 3x3 board whose eight outer cells are decided-empty
// and whose center (1,1) is still undecided. The minimum closure of the
// ring is the whole board, so it covers the undecided center.
func emptyRing() *cell.Board {
	b := cell.NewUndecidedBoard(3)
	for _, lc := range b.Cells() {
		if lc.Loc != loc.New(1, 1) {
			b.Set(lc.Loc, cell.NewEmpty())
		}
	}
	return b
}

func TestIsEmptyStillPossibleRespectsOptions(t *testing.T) {
	b := emptyRing()
	u := undecided.FromBoard(b)

	require.True(t, emptylogic.IsEmptyStillPossible(b, u, loc.New(0, 0)))

	// Remove Empty from the center, which the closure of the decided-empty
	// ring needs to stay empty-capable.
	_, _ = u.RemoveOpts(loc.New(1, 1), cell.SetEmpty)
	require.False(t, emptylogic.IsEmptyStillPossible(b, u, loc.New(0, 0)))
}

func TestDeduceConsequencesEmptyForcesClosure(t *testing.T) {
	b := emptyRing()
	u := undecided.FromBoard(b)

	ok := emptylogic.DeduceConsequencesEmpty(b, u, loc.New(0, 0))
	require.True(t, ok)

	opts, err := u.GetOpts(loc.New(1, 1))
	require.NoError(t, err)
	require.Equal(t, cell.SetEmpty, opts)
}
