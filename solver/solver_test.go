package solver_test

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
	"github.com/shakashaka/solver/shakatext"
	"github.com/shakashaka/solver/solver"
)

func canonical(t *testing.T, b *cell.Board) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, shakatext.Print(&buf, b))
	return buf.String()
}

func canonicalSet(t *testing.T, boards []*cell.Board) []string {
	t.Helper()
	out := make([]string, len(boards))
	for i, b := range boards {
		out[i] = canonical(t, b)
	}
	sort.Strings(out)
	return out
}

func TestSolveEmptyOneByOne(t *testing.T) {
	b := cell.NewUndecidedBoard(1)
	s, err := solver.New(b)
	require.NoError(t, err)

	solutions, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, cell.NewEmpty(), solutions[0].At(loc.New(0, 0)))
}

func TestSolveSingleBlackCell(t *testing.T) {
	b := cell.NewUndecidedBoard(1)
	b.Set(loc.New(0, 0), cell.NewBlack())

	s, err := solver.New(b)
	require.NoError(t, err)

	solutions, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, cell.NewBlack(), solutions[0].At(loc.New(0, 0)))
}

func TestSolveTwoByTwoWithCornerNumber(t *testing.T) {
	b := cell.NewUndecidedBoard(2)
	b.Set(loc.New(0, 0), cell.NewNumber(2))

	s, err := solver.New(b)
	require.NoError(t, err)

	solutions, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, solutions)

	found := false
	for _, sol := range solutions {
		if sol.At(loc.New(1, 0)).IsTriangle() &&
			sol.At(loc.New(0, 1)).IsTriangle() &&
			sol.At(loc.New(1, 1)) == cell.NewEmpty() {
			found = true
			break
		}
	}
	require.True(t, found, "expected at least one solution with (1,0) and (0,1) as triangles and (1,1) empty")
}

func TestSolveThreeByThreeAllUndecidedIncludesAllEmpty(t *testing.T) {
	b := cell.NewUndecidedBoard(3)

	s, err := solver.New(b)
	require.NoError(t, err)

	solutions, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, solutions)

	allEmpty := false
	for _, sol := range solutions {
		ok := true
		for _, lc := range sol.Cells() {
			if lc.Cell != cell.NewEmpty() {
				ok = false
				break
			}
		}
		if ok {
			allEmpty = true
			break
		}
	}
	require.True(t, allEmpty, "expected the all-empty configuration among the solutions")
}

func TestSolveThreeByThreeZeroAtCenterForcesAxisNeighborsEmpty(t *testing.T) {
	b := cell.NewUndecidedBoard(3)
	b.Set(loc.New(1, 1), cell.NewNumber(0))

	s, err := solver.New(b)
	require.NoError(t, err)

	solutions, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, solutions)

	for _, sol := range solutions {
		require.Equal(t, cell.NewEmpty(), sol.At(loc.New(0, 1)))
		require.Equal(t, cell.NewEmpty(), sol.At(loc.New(2, 1)))
		require.Equal(t, cell.NewEmpty(), sol.At(loc.New(1, 0)))
		require.Equal(t, cell.NewEmpty(), sol.At(loc.New(1, 2)))
	}
}

func TestNewRejectsUnsatisfiableSingleCell(t *testing.T) {
	b := cell.NewUndecidedBoard(1)
	b.Set(loc.New(0, 0), cell.NewNumber(3))

	_, err := solver.New(b)
	require.Error(t, err)
	require.True(t, errors.Is(err, solver.ErrUnsatisfiable))
}

func TestSolveSolutionSetIndependentOfThreadCount(t *testing.T) {
	build := func() *cell.Board {
		return cell.NewUndecidedBoard(2)
	}

	single, err := solver.New(build(), solver.WithMaxThreads(1))
	require.NoError(t, err)
	singleSolutions, err := single.Solve(context.Background())
	require.NoError(t, err)

	multi, err := solver.New(build(), solver.WithMaxThreads(4))
	require.NoError(t, err)
	multiSolutions, err := multi.Solve(context.Background())
	require.NoError(t, err)

	require.Equal(t, canonicalSet(t, singleSolutions), canonicalSet(t, multiSolutions))
}

func TestSolveHonorsCancellation(t *testing.T) {
	b := cell.NewUndecidedBoard(3)

	s, err := solver.New(b)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Solve(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
