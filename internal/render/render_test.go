package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loic-ehrhardt/connect4-solver/internal/position"
)

func TestToStringEmptyBoardIsAllEmptyCells(t *testing.T) {
	p := position.New()
	s := ToString(p)
	lines := strings.Split(s, "\n")
	require.Len(t, lines, position.H)
	assert.True(t, strings.HasPrefix(lines[0], strings.Repeat(emptyCell, position.W)))
	assert.Contains(t, lines[len(lines)-1], "turn")
}

func TestToStringShowsFirstStoneAsRed(t *testing.T) {
	p, err := position.FromSequence("1")
	require.NoError(t, err)
	s := ToString(p)
	lines := strings.Split(s, "\n")

	bottomRow := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(bottomRow, redCircle))
	assert.Contains(t, bottomRow, yellowCircle+"'s turn")
}

func TestToStringAnnotatesMoveCount(t *testing.T) {
	p, err := position.FromSequence("123")
	require.NoError(t, err)
	s := ToString(p)
	assert.Contains(t, s, "3 moves")
}

func TestToStringAnnotatesDraw(t *testing.T) {
	p, err := position.FromSequence("643426421252361677317153414534371522655677")
	require.NoError(t, err)
	require.Equal(t, position.Draw, p.GetStatus())
	assert.Contains(t, ToString(p), "draw")
}

func TestToStringAnnotatesWinner(t *testing.T) {
	p, err := position.FromSequence("1212121")
	require.NoError(t, err)
	require.Equal(t, position.Player1Wins, p.GetStatus())
	assert.Contains(t, ToString(p), "winner: "+redCircle)
}
