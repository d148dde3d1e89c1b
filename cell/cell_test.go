package cell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
)

func TestCellPredicates(t *testing.T) {
	require.True(t, cell.NewTriangle(loc.LL).IsTriangle())
	require.False(t, cell.NewEmpty().IsTriangle())
	require.True(t, cell.NewEmpty().IsEmptyOrUndecided())
	require.True(t, cell.NewUndecided().IsEmptyOrUndecided())
	require.False(t, cell.NewBlack().IsEmptyOrUndecided())
	require.True(t, cell.NewNumber(2).IsNumber())
}

func TestBoardOffBoardIsBlack(t *testing.T) {
	b := cell.NewUndecidedBoard(3)
	require.Equal(t, cell.NewBlack(), b.At(loc.New(-1, 0)))
	require.Equal(t, cell.NewBlack(), b.At(loc.New(3, 0)))
	require.Equal(t, cell.NewBlack(), b.At(loc.FromDoubled(1, 0))) // non-integral
}

func TestBoardSetGetRoundTrip(t *testing.T) {
	b := cell.NewUndecidedBoard(2)
	b.Set(loc.New(1, 1), cell.NewTriangle(loc.UR))
	require.Equal(t, cell.NewTriangle(loc.UR), b.At(loc.New(1, 1)))

	// out-of-bounds write is a no-op
	b.Set(loc.New(5, 5), cell.NewEmpty())
	require.Equal(t, cell.NewBlack(), b.At(loc.New(5, 5)))
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := cell.NewUndecidedBoard(2)
	clone := b.Clone()
	clone.Set(loc.New(0, 0), cell.NewEmpty())

	require.Equal(t, cell.NewUndecided(), b.At(loc.New(0, 0)))
	require.Equal(t, cell.NewEmpty(), clone.At(loc.New(0, 0)))
}

func TestBoardCellsIterationCount(t *testing.T) {
	b := cell.NewUndecidedBoard(3)
	require.Len(t, b.Cells(), 9)
}

func TestSetOperations(t *testing.T) {
	s := cell.AllOptions
	require.Equal(t, 5, s.Count())

	s = s.Without(cell.SetEmpty)
	require.False(t, s.Has(cell.SetEmpty))
	require.Equal(t, 4, s.Count())

	s = cell.SetLL
	c, ok := s.Single()
	require.True(t, ok)
	require.Equal(t, cell.NewTriangle(loc.LL), c)
}

func TestCellBitRoundTrip(t *testing.T) {
	for _, c := range []cell.Cell{cell.NewEmpty(), cell.NewTriangle(loc.LL), cell.NewTriangle(loc.UR)} {
		bit := cell.CellBit(c)
		back, ok := bit.Single()
		require.True(t, ok)
		require.Equal(t, c, back)
	}
}
