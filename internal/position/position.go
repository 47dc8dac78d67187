// Package position implements the Connect Four bitboard: two 64-bit bitmaps
// encode a legal position, supporting constant-time move legality, alignment
// detection, threat detection, and "winnable-move" projection.
//
// Cells are numbered column-major with a one-bit sentinel row above each
// column:
//
//	row 6:  6  13  20  27  34  41  48    <- sentinel (always 0 in mask)
//	row 5:  5  12  19  26  33  40  47
//	...
//	row 0:  0   7  14  21  28  35  42
//
// `mask` has a bit set for every occupied cell; `position` has a bit set for
// every cell owned by the player whose turn it currently is. Because
// `position` flips its meaning every ply, the same bit pattern refers to
// different players at odd and even move counts.
package position

import "math/bits"

const (
	// W is the board width in columns.
	W = 7
	// H is the board height in rows.
	H = 6
	// BoardSize is the total number of cells, W*H.
	BoardSize = W * H
	// Centre is the middle column index used by the middle-outward column order.
	Centre = W / 2
)

// Status classifies a position as still being played, drawn, or won by one
// of the two players.
type Status int

const (
	InProgress Status = iota
	Draw
	Player1Wins
	Player2Wins
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Draw:
		return "Draw"
	case Player1Wins:
		return "Player1Wins"
	case Player2Wins:
		return "Player2Wins"
	default:
		return "Unknown"
	}
}

// floorMask has the lowest bit of every column set; boardMask has every
// playable cell set. Both are derived from W and H once, at package init,
// per the Design Notes' guidance on constexpr-free languages.
var (
	floorMask uint64
	boardMask uint64
)

func init() {
	for c := 0; c < W; c++ {
		floorMask |= bottomMask(c)
	}
	boardMask = floorMask * ((uint64(1) << H) - 1)
}

func bottomMask(col int) uint64 {
	return uint64(1) << uint(col*(H+1))
}

func topMask(col int) uint64 {
	return (uint64(1) << uint(H-1)) << uint(col*(H+1))
}

func columnMask(col int) uint64 {
	return ((uint64(1) << H) - 1) << uint(col*(H+1))
}

// ColumnMask exposes columnMask to other packages (the search engine uses it
// to pick a single candidate's move-bit out of a CandidatesMask).
func ColumnMask(col int) uint64 {
	return columnMask(col)
}

// Position is a value object: the central entity this package operates on.
// Callers that need to explore variations copy a Position (via Clone)
// before mutating the copy.
type Position struct {
	mask     uint64
	position uint64
	moves    int
	status   Status
}

// New returns the empty starting position.
func New() *Position {
	return &Position{status: InProgress}
}

// FromSequence plays a sequence of '1'..'7' digits from the empty position
// and returns the resulting Position. An illegal move anywhere in the
// sequence aborts the whole parse.
func FromSequence(seq string) (*Position, error) {
	p := New()
	for i, d := range seq {
		if d < '1' || d > '7' {
			return nil, InvalidCharacter{Character: d, Index: i}
		}
		if err := p.Play(int(d - '1')); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Moves returns the number of stones placed so far.
func (p *Position) Moves() int {
	return p.moves
}

// GetStatus returns the current game status.
func (p *Position) GetStatus() Status {
	return p.status
}

// Mask exposes the raw occupancy bitmap (all occupied cells).
func (p *Position) Mask() uint64 {
	return p.mask
}

// CurrentPlayerBits exposes the raw bitmap of the player to move's stones.
func (p *Position) CurrentPlayerBits() uint64 {
	return p.position
}

// CanPlay reports whether column col (0-based) can legally receive a stone
// right now.
func (p *Position) CanPlay(col int) bool {
	return p.status == InProgress && col >= 0 && col < W && p.mask&topMask(col) == 0
}

// Play drops a stone for the current player into column col (0-based),
// updating status and move count. It fails with IllegalMove if the column
// cannot legally be played.
func (p *Position) Play(col int) error {
	if !p.CanPlay(col) {
		return IllegalMove{Column: col}
	}
	p.play(col, true)
	return nil
}

// play is the unchecked hot-path primitive the search engine uses: the
// caller has already established legality (and, during search, that the
// move is not an immediate win) so the alignment check can be skipped.
func (p *Position) play(col int, check bool) {
	p.position ^= p.mask
	p.mask |= p.mask + bottomMask(col)
	p.moves++

	if check && hasAlignment(p.position^p.mask) {
		if p.moves%2 == 1 {
			p.status = Player1Wins
		} else {
			p.status = Player2Wins
		}
	}
	if p.status == InProgress && p.moves == BoardSize {
		p.status = Draw
	}
}

// PlayUnchecked drops a stone without checking for a resulting alignment.
// It exists for the search engine (package search), which calls it only
// after already establishing the move is not a winning move.
func (p *Position) PlayUnchecked(col int) {
	p.play(col, false)
}

// Clone returns an independent copy of p.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// hasAlignment reports whether bitmap pos contains any four-in-a-row, using
// four shift-and-mask tests (vertical, the two diagonals, horizontal).
func hasAlignment(pos uint64) bool {
	// Vertical.
	m := pos & (pos << 1) & (pos << 2) & (pos << 3)
	if m != 0 {
		return true
	}
	// Diagonal (\), shift H.
	m = pos & (pos << H)
	if m&(m<<(2*H)) != 0 {
		return true
	}
	// Horizontal, shift H+1.
	m = pos & (pos << (H + 1))
	if m&(m<<(2*(H+1))) != 0 {
		return true
	}
	// Diagonal (/), shift H+2.
	m = pos & (pos << (H + 2))
	if m&(m<<(2*(H+2))) != 0 {
		return true
	}
	return false
}

// IsWinningMove reports whether dropping a stone in column col would
// complete an alignment for the player to move.
func (p *Position) IsWinningMove(col int) bool {
	move := (p.mask + bottomMask(col)) & columnMask(col)
	return hasAlignment(p.position | move)
}

// winMask returns the set of empty, legal cells that would complete a line
// for the player whose bitmap is pos, using the standard 8+4+4+4
// shift-and-AND pattern (four directions, each from either end of a triple).
func winMask(pos, mask uint64) uint64 {
	// Vertical.
	r := (pos << 1) & (pos << 2) & (pos << 3)

	// Horizontal.
	p1 := (pos << (H + 1)) & (pos << (2 * (H + 1)))
	r |= p1 & (pos << (3 * (H + 1)))
	r |= p1 & (pos >> (H + 1))
	p1 >>= 3 * (H + 1)
	r |= p1 & (pos << (H + 1))
	r |= p1 & (pos >> (3 * (H + 1)))

	// Diagonal (\).
	p2 := (pos << H) & (pos << (2 * H))
	r |= p2 & (pos << (3 * H))
	r |= p2 & (pos >> H)
	p2 >>= 3 * H
	r |= p2 & (pos << H)
	r |= p2 & (pos >> (3 * H))

	// Diagonal (/).
	p3 := (pos << (H + 2)) & (pos << (2 * (H + 2)))
	r |= p3 & (pos << (3 * (H + 2)))
	r |= p3 & (pos >> (H + 2))
	p3 >>= 3 * (H + 2)
	r |= p3 & (pos << (H + 2))
	r |= p3 & (pos >> (3 * (H + 2)))

	return r & (boardMask ^ mask)
}

// OpponentWinMask returns the threats against the side to move: empty cells
// that would complete a line for the opponent if filled.
func (p *Position) OpponentWinMask() uint64 {
	return winMask(p.position^p.mask, p.mask)
}

// CountWinOpportunities reports how many new threats of the side to move
// would exist after playing moveBit (a single-bit mask for one candidate
// cell), used as the move-ordering heuristic.
func (p *Position) CountWinOpportunities(moveBit uint64) int {
	return bits.OnesCount64(winMask(p.position|moveBit, p.mask))
}

// CandidatesMask returns the set of column-bottom bits the side to move
// should consider: the lowest empty cell of every still-playable column,
// restricted by the forced-move / below-threat exclusion rules. A result of
// 0 means the opponent has two or more independent immediate threats and
// cannot be stopped.
func (p *Position) CandidatesMask() uint64 {
	possible := (p.mask + floorMask) & boardMask
	owm := p.OpponentWinMask()
	forced := owm & possible
	if forced != 0 {
		if forced&(forced-1) != 0 {
			// Two or more forced replies: the opponent wins regardless.
			return 0
		}
		possible = forced
	}
	return possible &^ (owm >> 1)
}

// Key returns the 56-bit position fingerprint position+mask, which uniquely
// identifies this position (see key.go for the reconstruction algorithm and
// its correctness argument).
func (p *Position) Key() uint64 {
	return p.position + p.mask
}

// SymmetricKey returns the fingerprint of this position reflected across
// the vertical axis (column c -> W-1-c), used to halve opening-book storage.
func (p *Position) SymmetricKey() uint64 {
	mp, mm := p.mirroredBitmaps()
	return mp + mm
}

func (p *Position) mirroredBitmaps() (mirroredPosition, mirroredMask uint64) {
	for col := 0; col < Centre; col++ {
		mirroredCol := W - 1 - col
		shift := uint((mirroredCol - col) * (H + 1))
		mirroredPosition |= ((p.position & columnMask(col)) << shift) |
			((p.position & columnMask(mirroredCol)) >> shift)
		mirroredMask |= ((p.mask & columnMask(col)) << shift) |
			((p.mask & columnMask(mirroredCol)) >> shift)
	}
	if W&1 == 1 {
		mirroredPosition |= p.position & columnMask(Centre)
		mirroredMask |= p.mask & columnMask(Centre)
	}
	return mirroredPosition, mirroredMask
}
