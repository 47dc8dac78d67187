package connectfour

import (
	"github.com/loic-ehrhardt/connect4-solver/internal/search"
	"github.com/loic-ehrhardt/connect4-solver/internal/ttable"
)

// DefaultTableCapacity is a prime near 8,388,593 entries (~64 MiB of
// 8-byte records), the capacity spec.md §4.B recommends.
const DefaultTableCapacity = 8388593

// Solver wraps a search engine and the transposition table it owns for its
// entire lifetime.
type Solver struct {
	engine *search.Engine
}

// SolverOption configures a Solver at construction time.
type SolverOption = search.Option

// WithLogger attaches a zerolog.Logger to the solver's search engine.
var WithLogger = search.WithLogger

// NewSolver allocates a transposition table of the given capacity and a
// search engine around it. capacity <= 0 returns InvalidSize.
func NewSolver(capacity int, opts ...SolverOption) (*Solver, error) {
	tt, err := ttable.New(capacity)
	if err != nil {
		return nil, err
	}
	return &Solver{engine: search.New(tt, opts...)}, nil
}

// Solve returns the exact game-theoretic score of b, from the perspective
// of the side to move, using the full alpha-beta window.
func (s *Solver) Solve(b *Board) int {
	return s.engine.Negamax(b.internalPosition())
}

// SolveDichotomic returns the same exact score as Solve, but via null-window
// iterative deepening (spec.md §4.C "dichotomic solve"). weak=true restricts
// the result to the score's sign (-1, 0, +1), which is much faster.
func (s *Solver) SolveDichotomic(b *Board, weak bool) int {
	return s.engine.DichotomicSolve(b.internalPosition(), weak)
}

// NumExplored returns the number of positions visited since the last Reset.
func (s *Solver) NumExplored() uint64 {
	return s.engine.NumExplored()
}

// Reset clears the transposition table and the exploration counter.
func (s *Solver) Reset() {
	s.engine.Reset()
}
