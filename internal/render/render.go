// Package render produces a human-readable string for a position. It is a
// peripheral component (included for testability, not hard): its glyph and
// annotation scheme is lifted verbatim from
// original_source/connectpy/connectlib.cpp's toString().
package render

import (
	"strconv"
	"strings"

	"github.com/loic-ehrhardt/connect4-solver/internal/position"
)

const (
	redCircle    = "\U0001F534" // large red circle
	yellowCircle = "\U0001F7E1" // large yellow circle
	emptyCell    = "\U0001F533" // white square button
)

// ToString renders p as an H-line board image, annotated on the right with
// move count, whose turn it is, the winner, or "draw", matching the
// original solver's glyph choice: the first player to move always renders
// as the red glyph, regardless of which side of `position` they currently
// occupy.
func ToString(p *position.Position) string {
	var b strings.Builder
	mask := p.Mask()
	cur := p.CurrentPlayerBits()
	moves := p.Moves()

	for row := position.H - 1; row >= 0; row-- {
		for col := 0; col < position.W; col++ {
			bitIndex := uint(row + col*(position.H+1))
			bit := uint64(1) << bitIndex
			switch {
			case mask&bit == 0:
				b.WriteString(emptyCell)
			case (cur&bit == 0) != (moves%2 == 0):
				b.WriteString(redCircle)
			default:
				b.WriteString(yellowCircle)
			}
		}
		switch {
		case row == 1:
			b.WriteString("   " + strconv.Itoa(moves) + " moves")
		case row == 0 && p.GetStatus() == position.InProgress:
			turn := redCircle
			if moves%2 != 0 {
				turn = yellowCircle
			}
			b.WriteString("   " + turn + "'s turn")
		case row == 0 && p.GetStatus() == position.Draw:
			b.WriteString("   draw")
		case row == 0:
			winner := redCircle
			if p.GetStatus() == position.Player2Wins {
				winner = yellowCircle
			}
			b.WriteString("   winner: " + winner)
		}
		if row > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
