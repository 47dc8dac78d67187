package position

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	p := New()
	assert.Equal(t, 0, p.Moves())
	assert.Equal(t, InProgress, p.GetStatus())
	for c := 0; c < W; c++ {
		assert.True(t, p.CanPlay(c))
	}
}

func TestPlayFillsColumn(t *testing.T) {
	p := New()
	for i := 0; i < H; i++ {
		require.True(t, p.CanPlay(0))
		require.NoError(t, p.Play(0))
	}
	assert.False(t, p.CanPlay(0))
	assert.Equal(t, H, p.Moves())
}

func TestPlayIllegalColumn(t *testing.T) {
	p := New()
	err := p.Play(7)
	require.Error(t, err)
	assert.IsType(t, IllegalMove{}, err)
}

func TestPlayFullColumnIsIllegal(t *testing.T) {
	p := New()
	for i := 0; i < H; i++ {
		require.NoError(t, p.Play(3))
	}
	err := p.Play(3)
	require.Error(t, err)
	assert.Equal(t, IllegalMove{Column: 3}, err)
}

func TestFromSequenceRejectsNonDigit(t *testing.T) {
	_, err := FromSequence("12a4")
	require.Error(t, err)
	assert.Equal(t, InvalidCharacter{Character: 'a', Index: 2}, err)
}

// Four vertical stones in column 1 (index 0) wins for the player who just
// moved.
func TestVerticalWin(t *testing.T) {
	p := New()
	moves := []int{0, 1, 0, 1, 0, 1, 0}
	var err error
	for _, c := range moves {
		err = p.Play(c)
		require.NoError(t, err)
	}
	assert.Equal(t, Player1Wins, p.GetStatus())
}

// A classic diagonal win built from a staircase of supporting stones.
func TestDiagonalWin(t *testing.T) {
	p := New()
	moves := []int{0, 1, 1, 2, 2, 3, 2, 3, 3, 0, 3}
	for _, c := range moves {
		require.NoError(t, p.Play(c))
	}
	assert.NotEqual(t, InProgress, p.GetStatus())
}

func TestIsWinningMoveMatchesPlay(t *testing.T) {
	p, err := FromSequence("112233")
	require.NoError(t, err)
	require.True(t, p.CanPlay(3))
	assert.True(t, p.IsWinningMove(3))

	clone := p.Clone()
	require.NoError(t, clone.Play(3))
	assert.Equal(t, Player1Wins, clone.GetStatus())
}

func TestDrawnBoard(t *testing.T) {
	// A full 42-move board with no alignment.
	seq := "643426421252361677317153414534371522655677"
	p, err := FromSequence(seq)
	require.NoError(t, err)
	require.Equal(t, BoardSize, p.Moves())
	assert.Equal(t, Draw, p.GetStatus())
}

func TestCloneIsIndependent(t *testing.T) {
	p := New()
	require.NoError(t, p.Play(0))
	clone := p.Clone()
	require.NoError(t, clone.Play(1))
	assert.NotEqual(t, p.Mask(), clone.Mask())
}

func TestCandidatesMaskForcedReply(t *testing.T) {
	// Player 1 stacked three in column 1 (index 0); player 2 to move must
	// plug the fourth slot or lose next turn.
	p, err := FromSequence("17171")
	require.NoError(t, err)
	candidates := p.CandidatesMask()
	require.Equal(t, 1, bits.OnesCount64(candidates))
	assert.Equal(t, candidates, candidates&columnMask(0))
}

func TestKeyRoundTrips(t *testing.T) {
	p, err := FromSequence("12321")
	require.NoError(t, err)
	rebuilt, err := FromKey(p.Key())
	require.NoError(t, err)
	assert.Equal(t, p.Mask(), rebuilt.Mask())
	assert.Equal(t, p.CurrentPlayerBits(), rebuilt.CurrentPlayerBits())
	assert.Equal(t, p.Moves(), rebuilt.Moves())
	assert.Equal(t, p.GetStatus(), rebuilt.GetStatus())
}

func TestSymmetricKeyOfMirroredPositionsMatch(t *testing.T) {
	a, err := FromSequence("1234")
	require.NoError(t, err)
	b, err := FromSequence("7654")
	require.NoError(t, err)
	assert.Equal(t, a.Key(), b.SymmetricKey())
	assert.Equal(t, a.SymmetricKey(), b.Key())
}

func TestSymmetricKeyOfCentredPositionIsSelf(t *testing.T) {
	p := New()
	assert.Equal(t, p.Key(), p.SymmetricKey())
}
