// Package search implements the alpha-beta negamax engine: transposition-
// table memoization, threat-based forced-move pruning, dynamic move
// ordering by induced-threat count, middle-outward column order, and
// null-window iterative deepening ("dichotomic solve").
//
// Grounded on original_source/connectpy/connectlib.cpp's Solver class for
// the core recursion shape, and on the pack's bluebear94-odnocam negamax
// endgame solver for the zerolog instrumentation idiom and the atomic node
// counter.
package search

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/loic-ehrhardt/connect4-solver/internal/position"
	"github.com/loic-ehrhardt/connect4-solver/internal/ttable"
)

// logEvery controls how often the engine emits a Debug progress line while
// exploring. It is a power of two so the modulus is cheap.
const logEvery = 1 << 20

// Engine holds everything a search needs across the lifetime of one solve:
// the exploration counter, the transposition table, and the precomputed
// middle-outward column order.
type Engine struct {
	tt          *ttable.Table
	numExplored atomic.Uint64
	columnOrder []int
	logger      zerolog.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a zerolog.Logger the engine uses for progress and
// diagnostic output. The zero value (zerolog.Nop()) is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New builds a search engine around an existing transposition table.
func New(tt *ttable.Table, opts ...Option) *Engine {
	e := &Engine{
		tt:          tt,
		columnOrder: columnOrder(position.W),
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NumExplored returns the number of positions visited since the last Reset.
func (e *Engine) NumExplored() uint64 {
	return e.numExplored.Load()
}

// Reset zeroes the exploration counter and clears the transposition table.
func (e *Engine) Reset() {
	e.numExplored.Store(0)
	e.tt.Reset()
}

// Negamax returns the exact score of p, from the perspective of the side to
// move, using the full [-W*H/2, +W*H/2] search window.
func (e *Engine) Negamax(p *position.Position) int {
	maxScore := position.BoardSize / 2
	return e.negamax(p, -maxScore, maxScore)
}

// terminalScore returns the negamax value of a position whose status is not
// InProgress: 0 for a draw, or the (negative) score of a just-completed
// loss for the side to move.
func terminalScore(p *position.Position) (int, bool) {
	switch p.GetStatus() {
	case position.Draw:
		return 0, true
	case position.Player1Wins, position.Player2Wins:
		return (p.Moves()-position.BoardSize)/2 - 1, true
	default:
		return 0, false
	}
}

// negamax is the null-window-capable alpha-beta core. See spec §4.C for the
// step-by-step contract this implements.
func (e *Engine) negamax(p *position.Position, alpha, beta int) int {
	e.numExplored.Add(1)
	if n := e.numExplored.Load(); n%logEvery == 0 {
		e.logger.Debug().Uint64("explored", n).Int("moves", p.Moves()).Msg("search-progress")
	}

	if score, ok := terminalScore(p); ok {
		return score
	}

	maxScore := (1 + position.BoardSize - p.Moves()) / 2
	for col := 0; col < position.W; col++ {
		if p.CanPlay(col) && p.IsWinningMove(col) {
			return maxScore
		}
	}
	maxScore--

	next := p.CandidatesMask()
	if next == 0 {
		return -(position.BoardSize - p.Moves()) / 2
	}

	key := p.Key()
	if stored, ok, _ := e.tt.Get(key); ok {
		maxScore = int(stored)
	}

	if maxScore < beta {
		beta = maxScore
		if alpha >= beta {
			return beta
		}
	}

	candidates := make([]candidateMove, 0, position.W)
	for _, col := range e.columnOrder {
		bit := next & position.ColumnMask(col)
		if bit == 0 {
			continue
		}
		candidates = append(candidates, candidateMove{
			column:        col,
			bit:           bit,
			opportunities: p.CountWinOpportunities(bit),
		})
	}
	orderMoves(candidates)

	for _, c := range candidates {
		child := p.Clone()
		child.PlayUnchecked(c.column)
		score := -e.negamax(child, -beta, -alpha)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	_ = e.tt.Put(key, int8(alpha))
	return alpha
}

// DichotomicSolve narrows the exact score using a sequence of null-window
// negamax probes. weak=true only establishes the sign of the score (-1, 0,
// +1) and runs substantially faster.
func (e *Engine) DichotomicSolve(p *position.Position, weak bool) int {
	if score, ok := terminalScore(p); ok {
		return score
	}

	var min, max int
	if weak {
		min, max = -1, 1
	} else {
		min = -(position.BoardSize - p.Moves()) / 2
		max = (1 + position.BoardSize - p.Moves()) / 2
	}

	for min < max {
		med := min + (max-min)/2
		if med <= 0 && med > min/2 {
			med = min / 2
		} else if med >= 0 && med < max/2 {
			med = max / 2
		}

		r := e.negamax(p, med, med+1)
		if r <= med {
			max = med
		} else {
			min = med + 1
		}
	}
	return min
}
