package solver

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/emptylogic"
	"github.com/shakashaka/solver/loc"
	"github.com/shakashaka/solver/numberlogic"
	"github.com/shakashaka/solver/pdr"
	"github.com/shakashaka/solver/undecided"
	"github.com/shakashaka/solver/validate"
)

// activeGoroutines approximates Python's threading.active_count(): the
// number of spawned fan-out worker goroutines currently running (the
// caller of Solve is not included), used to size the budget for spawning
// more.
var activeGoroutines atomic.Int64

// Solver holds the board and undecided-option state for one search branch.
type Solver struct {
	board     *cell.Board
	undecided *undecided.Store
	opts      Options
}

// New builds a Solver over b, applying opts to the defaults and running the
// initial prune (every still-undecided cell is checked against the empty
// and triangle closure rules, and every number cell's surrounding options
// are tightened). Returns ErrUnsatisfiable if the board's starting state
// already violates a number cell's constraints.
//
// New does not clone b: the returned Solver owns and mutates it directly,
// exactly as the search mutates every cloned branch board during Solve.
// Callers that need b unmodified should pass b.Clone().
func New(b *cell.Board, opts ...Option) (*Solver, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Solver{
		board:     b,
		undecided: undecided.FromBoard(b),
		opts:      o,
	}
	if err := s.initialPrune(); err != nil {
		return nil, err
	}
	return s, nil
}

// initialPrune ports Solver._initial_prune: drop any option that the
// closure rules already rule out, then tighten every number cell's
// neighbors. Unlike the Python original (which ignores the return value of
// remove_opts here), a location driven to zero options is treated as an
// immediate ErrUnsatisfiable rather than silently deferred to a search step
// that can never observe it, since Store.MinOptions never looks at bucket 0.
func (s *Solver) initialPrune() error {
	for _, l := range s.undecided.Locs() {
		opts, err := s.undecided.GetOpts(l)
		if err != nil {
			continue
		}

		var drop cell.Set
		for _, c := range opts.Cells() {
			if !s.isOptStillPossible(l, c) {
				drop = drop.With(cell.CellBit(c))
			}
		}
		if drop == 0 {
			continue
		}
		ok, err := s.undecided.RemoveOpts(l, drop)
		if err != nil {
			panic("solver: " + err.Error())
		}
		if !ok {
			return ErrUnsatisfiable
		}
	}

	for _, lc := range s.board.Cells() {
		if lc.Cell.IsNumber() {
			if !numberlogic.UpdateOptsAroundNumber(s.board, s.undecided, lc.Loc) {
				return ErrUnsatisfiable
			}
		}
	}
	return nil
}

// clone deep-copies the board and undecided state so a fan-out branch can
// mutate its own copy independently of its siblings.
func (s *Solver) clone() *Solver {
	return &Solver{
		board:     s.board.Clone(),
		undecided: s.undecided.Clone(),
		opts:      s.opts,
	}
}

// Solve returns every completion of the board consistent with the options
// still available, honoring ctx cancellation between branch attempts.
func (s *Solver) Solve(ctx context.Context) ([]*cell.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.undecided.Len() == 0 {
		if validate.Validate(s.board) {
			return []*cell.Board{s.board}, nil
		}
		return nil, nil
	}

	l, opts, ok := s.undecided.MinOptions()
	if !ok {
		return nil, nil
	}

	if opts.Count() == 1 {
		c, _ := opts.Single()
		if !s.assignCell(l, c) {
			return nil, nil
		}
		return s.Solve(ctx)
	}

	cells := opts.Cells()

	active := int(activeGoroutines.Load())
	// MaxThreads counts the caller's own goroutine too, hence the extra -1.
	childBudget := clamp(s.opts.MaxThreads-active-1, 0, len(cells)-1)
	totalWorkers := childBudget + 1

	chunks := distribute(cells, totalWorkers)
	currentChunk := chunks[len(chunks)-1]
	childChunks := chunks[:len(chunks)-1]

	type workerResult struct {
		boards []*cell.Board
		err    error
	}

	resultsCh := make(chan workerResult, len(childChunks))
	var wg sync.WaitGroup

	for _, chunk := range childChunks {
		wg.Add(1)
		activeGoroutines.Add(1)
		go func(chunk []cell.Cell) {
			defer wg.Done()
			defer activeGoroutines.Add(-1)
			boards, err := s.tryOptions(ctx, l, chunk)
			resultsCh <- workerResult{boards: boards, err: err}
		}(chunk)
	}

	currentBoards, currentErr := s.tryOptions(ctx, l, currentChunk)

	wg.Wait()
	close(resultsCh)

	var solutions []*cell.Board
	firstErr := currentErr
	solutions = append(solutions, currentBoards...)
	for wr := range resultsCh {
		if wr.err != nil && firstErr == nil {
			firstErr = wr.err
		}
		solutions = append(solutions, wr.boards...)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return solutions, nil
}

// tryOptions assigns each of cells at l on its own cloned branch and
// recurses, concatenating every branch's solutions. Used both for the
// current goroutine's own share of work and for each spawned worker.
func (s *Solver) tryOptions(ctx context.Context, l loc.Loc, cells []cell.Cell) ([]*cell.Board, error) {
	var out []*cell.Board
	for _, c := range cells {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		branch := s.clone()
		if s.opts.Verbose {
			fmt.Printf("solver: trying %s at %s\n", c, l)
		}
		if !branch.assignCell(l, c) {
			continue
		}
		boards, err := branch.Solve(ctx)
		if err != nil {
			return out, err
		}
		out = append(out, boards...)
	}
	return out, nil
}

// assignCell ports make_assignment: place c at l, drop l from the undecided
// store, then propagate its consequences and tighten every neighbor's
// remaining options. Returns false on the first contradiction.
func (s *Solver) assignCell(l loc.Loc, c cell.Cell) bool {
	s.board.Set(l, c)
	if err := s.undecided.RemoveLoc(l); err != nil {
		panic("solver: " + err.Error())
	}

	if !s.deduceConsequences(l, c) {
		return false
	}
	return s.updateSurroundingOpts(l, c)
}

// deduceConsequences ports _deduce_consequences.
func (s *Solver) deduceConsequences(l loc.Loc, c cell.Cell) bool {
	switch {
	case c.Kind == cell.Empty:
		return emptylogic.DeduceConsequencesEmpty(s.board, s.undecided, l)
	case c.IsTriangle():
		return pdr.DeduceConsequencesTriangle(s.board, s.undecided, l)
	default:
		panic("solver: assigned cell must be empty or triangle, got " + c.String())
	}
}

// updateSurroundingOpts ports _update_surrounding_opts: every undecided
// neighbor is re-checked against its remaining options, and every number
// neighbor is re-tightened.
func (s *Solver) updateSurroundingOpts(l loc.Loc, c cell.Cell) bool {
	for _, d := range loc.SurroundingDeltas {
		n := l.Add(d)
		nc := s.board.At(n)

		switch {
		case nc.Kind == cell.Undecided:
			opts, err := s.undecided.GetOpts(n)
			if err != nil {
				panic("solver: " + err.Error())
			}

			var drop cell.Set
			for _, oc := range opts.Cells() {
				if !s.isOptStillPossible(n, oc) {
					drop = drop.With(cell.CellBit(oc))
				}
			}
			if drop == 0 {
				continue
			}
			ok, err := s.undecided.RemoveOpts(n, drop)
			if err != nil {
				panic("solver: " + err.Error())
			}
			if !ok {
				return false
			}
		case nc.IsNumber():
			if !numberlogic.UpdateOptsAroundNumber(s.board, s.undecided, n) {
				return false
			}
		}
	}
	return true
}

// isOptStillPossible ports _is_opt_still_possible.
func (s *Solver) isOptStillPossible(l loc.Loc, c cell.Cell) bool {
	if c.Kind == cell.Empty {
		return emptylogic.IsEmptyStillPossible(s.board, s.undecided, l)
	}
	return pdr.IsTriangleStillPossible(s.board, s.undecided, l, c)
}

// distribute splits cells into workers roughly-equal-size chunks, giving
// the first len(cells)%workers chunks one extra element, mirroring the
// Python original's worker_size = options_per_worker + (1 if i < remainder
// else 0).
func distribute(cells []cell.Cell, workers int) [][]cell.Cell {
	n := len(cells)
	base := n / workers
	rem := n % workers

	out := make([][]cell.Cell, workers)
	idx := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < rem {
			size++
		}
		out[i] = cells[idx : idx+size]
		idx += size
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
