package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolverRejectsNonPositiveCapacity(t *testing.T) {
	_, err := NewSolver(0)
	require.Error(t, err)
}

func TestSolveImmediateWin(t *testing.T) {
	s, err := NewSolver(1024)
	require.NoError(t, err)

	b, err := NewBoardFromSequence("112233")
	require.NoError(t, err)

	assert.Equal(t, 18, s.Solve(b))
}

func TestSolveDichotomicWeakMatchesSignOfSolve(t *testing.T) {
	s, err := NewSolver(1 << 20)
	require.NoError(t, err)

	b, err := NewBoardFromSequence("3523274431771672241267147623463661")
	require.NoError(t, err)

	full := s.Solve(b)
	weak := s.SolveDichotomic(b, true)
	assert.Equal(t, 4, full)
	assert.Equal(t, 1, weak)
}

func TestSolverNumExploredAndReset(t *testing.T) {
	s, err := NewSolver(1024)
	require.NoError(t, err)

	b, err := NewBoardFromSequence("112233")
	require.NoError(t, err)

	s.Solve(b)
	assert.NotZero(t, s.NumExplored())

	s.Reset()
	assert.Zero(t, s.NumExplored())
}
