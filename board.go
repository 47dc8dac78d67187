// Package connectfour is the embedding API described in spec.md §6: the
// language-neutral surface a host driver (CLI, REPL, binding layer) builds
// on top of. It is a thin facade over internal/position, internal/search,
// internal/book, and internal/render — none of those packages are
// exported, so this file, solver.go and book.go are the only public API.
package connectfour

import (
	"github.com/loic-ehrhardt/connect4-solver/internal/position"
	"github.com/loic-ehrhardt/connect4-solver/internal/render"
)

// Status mirrors position.Status so callers never need to import the
// internal package.
type Status = position.Status

const (
	InProgress  = position.InProgress
	Draw        = position.Draw
	Player1Wins = position.Player1Wins
	Player2Wins = position.Player2Wins
)

// Board is a Connect Four position. The zero value is not usable; build one
// with NewBoard, NewBoardFromSequence, or NewBoardFromKey.
type Board struct {
	pos *position.Position
}

// NewBoard returns the empty starting position.
func NewBoard() *Board {
	return &Board{pos: position.New()}
}

// NewBoardFromSequence plays '1'..'7' column digits from the empty position.
// An illegal sequence returns an error (IllegalMove or an invalid-character
// error) instead of panicking.
func NewBoardFromSequence(sequence string) (*Board, error) {
	p, err := position.FromSequence(sequence)
	if err != nil {
		return nil, err
	}
	return &Board{pos: p}, nil
}

// NewBoardFromKey reconstructs a Board from a fingerprint produced by
// (*Board).Key. It reproduces mask, position, move count, and status.
func NewBoardFromKey(key uint64) (*Board, error) {
	p, err := position.FromKey(key)
	if err != nil {
		return nil, err
	}
	return &Board{pos: p}, nil
}

// CanPlay reports whether column col (1-based, matching the host-binding
// convention of spec.md §6) can legally receive a stone.
func (b *Board) CanPlay(col int) bool {
	return b.pos.CanPlay(col - 1)
}

// Play drops a stone in column col (1-based).
func (b *Board) Play(col int) error {
	return b.pos.Play(col - 1)
}

// PlaySequence plays a string of '1'..'7' digits against the current board.
func (b *Board) PlaySequence(sequence string) error {
	for i, d := range sequence {
		if d < '1' || d > '7' {
			return position.InvalidCharacter{Character: d, Index: i}
		}
		if err := b.pos.Play(int(d - '1')); err != nil {
			return err
		}
	}
	return nil
}

// IsWinningMove reports whether playing column col (1-based) would complete
// an alignment for the side to move.
func (b *Board) IsWinningMove(col int) bool {
	return b.pos.IsWinningMove(col - 1)
}

// Key returns the position's 56-bit fingerprint.
func (b *Board) Key() uint64 {
	return b.pos.Key()
}

// SymmetricKey returns the fingerprint of the horizontally mirrored
// position.
func (b *Board) SymmetricKey() uint64 {
	return b.pos.SymmetricKey()
}

// Moves returns the number of stones placed so far.
func (b *Board) Moves() int {
	return b.pos.Moves()
}

// Status returns the current game status.
func (b *Board) Status() Status {
	return b.pos.GetStatus()
}

// String renders the board as a human-readable H-line image (package
// internal/render), satisfying fmt.Stringer.
func (b *Board) String() string {
	return render.ToString(b.pos)
}

// internalPosition exposes the underlying *position.Position to sibling
// files in this package (solver.go, book.go) without making the type
// public.
func (b *Board) internalPosition() *position.Position {
	return b.pos
}
