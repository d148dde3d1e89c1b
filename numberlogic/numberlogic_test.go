package numberlogic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
	"github.com/shakashaka/solver/numberlogic"
	"github.com/shakashaka/solver/undecided"
)

func TestValidateNumberCountsAdjacentTriangles(t *testing.T) {
	b := cell.NewUndecidedBoard(3)
	center := loc.New(1, 1)
	b.Set(center, cell.NewNumber(2))
	b.Set(loc.New(0, 1), cell.NewTriangle(loc.LL))
	b.Set(loc.New(2, 1), cell.NewTriangle(loc.UR))
	b.Set(loc.New(1, 0), cell.NewEmpty())
	b.Set(loc.New(1, 2), cell.NewEmpty())

	require.True(t, numberlogic.ValidateNumber(b, center))

	b.Set(loc.New(1, 0), cell.NewTriangle(loc.LL))
	require.False(t, numberlogic.ValidateNumber(b, center))
}

func TestValidateNumberPanicsOnNonNumberCell(t *testing.T) {
	b := cell.NewUndecidedBoard(1)
	require.Panics(t, func() {
		numberlogic.ValidateNumber(b, loc.New(0, 0))
	})
}

func TestUpdateOptsAroundNumberForcesEmptyWhenSatisfied(t *testing.T) {
	b := cell.NewUndecidedBoard(3)
	center := loc.New(1, 1)
	b.Set(center, cell.NewNumber(1))
	b.Set(loc.New(0, 1), cell.NewTriangle(loc.LL))
	u := undecided.FromBoard(b)

	ok := numberlogic.UpdateOptsAroundNumber(b, u, center)
	require.True(t, ok)

	for _, n := range []loc.Loc{loc.New(2, 1), loc.New(1, 0), loc.New(1, 2)} {
		opts, err := u.GetOpts(n)
		require.NoError(t, err)
		require.Equal(t, cell.SetEmpty, opts)
	}
}

func TestUpdateOptsAroundNumberExcludesEmptyWhenNoMoreRoom(t *testing.T) {
	b := cell.NewUndecidedBoard(3)
	center := loc.New(1, 1)
	b.Set(center, cell.NewNumber(3))
	b.Set(loc.New(0, 1), cell.NewEmpty())
	u := undecided.FromBoard(b)

	ok := numberlogic.UpdateOptsAroundNumber(b, u, center)
	require.True(t, ok)

	for _, n := range []loc.Loc{loc.New(2, 1), loc.New(1, 0), loc.New(1, 2)} {
		opts, err := u.GetOpts(n)
		require.NoError(t, err)
		require.False(t, opts.Has(cell.SetEmpty))
	}
}

func TestUpdateOptsAroundNumberDetectsContradiction(t *testing.T) {
	b := cell.NewUndecidedBoard(3)
	center := loc.New(1, 1)
	b.Set(center, cell.NewNumber(1))
	b.Set(loc.New(0, 1), cell.NewTriangle(loc.LL))
	b.Set(loc.New(2, 1), cell.NewTriangle(loc.UR))
	u := undecided.FromBoard(b)

	ok := numberlogic.UpdateOptsAroundNumber(b, u, center)
	require.False(t, ok)
}

func TestUpdateOptsAroundNumberPanicsOnNonNumberCell(t *testing.T) {
	b := cell.NewUndecidedBoard(1)
	u := undecided.FromBoard(b)
	require.Panics(t, func() {
		numberlogic.UpdateOptsAroundNumber(b, u, loc.New(0, 0))
	})
}
