package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 0, b.Moves())
	assert.Equal(t, InProgress, b.Status())
	for col := 1; col <= 7; col++ {
		assert.True(t, b.CanPlay(col))
	}
}

func TestPlayIsOneBased(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Play(1))
	assert.True(t, b.CanPlay(1))
	assert.Equal(t, 1, b.Moves())
}

func TestPlaySequenceDetectsWin(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlaySequence("1212121"))
	assert.Equal(t, Player1Wins, b.Status())
}

func TestNewBoardFromSequenceRejectsIllegalMove(t *testing.T) {
	_, err := NewBoardFromSequence("1111111")
	require.Error(t, err)
}

func TestIsWinningMove(t *testing.T) {
	b, err := NewBoardFromSequence("112233")
	require.NoError(t, err)
	assert.True(t, b.IsWinningMove(4))
	assert.False(t, b.IsWinningMove(5))
}

func TestKeyRoundTripsThroughNewBoardFromKey(t *testing.T) {
	b, err := NewBoardFromSequence("12321")
	require.NoError(t, err)

	rebuilt, err := NewBoardFromKey(b.Key())
	require.NoError(t, err)
	assert.Equal(t, b.Key(), rebuilt.Key())
	assert.Equal(t, b.Moves(), rebuilt.Moves())
	assert.Equal(t, b.Status(), rebuilt.Status())
}

func TestSymmetricKey(t *testing.T) {
	a, err := NewBoardFromSequence("1234")
	require.NoError(t, err)
	b, err := NewBoardFromSequence("7654")
	require.NoError(t, err)
	assert.Equal(t, a.Key(), b.SymmetricKey())
}

func TestStringRendersBoard(t *testing.T) {
	b := NewBoard()
	s := b.String()
	assert.NotEmpty(t, s)
}
