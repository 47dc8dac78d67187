package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exhaustively generating an opening book means solving the game from the
// empty position, a multi-hour batch job even at shallow depths; that
// behaviour is exercised in internal/book against small, pre-seeded
// positions instead. These tests cover only the facade's wiring.

func TestNewOpeningBookRejectsNonPositiveCapacity(t *testing.T) {
	_, err := NewOpeningBook(8, 0)
	require.Error(t, err)
}

func TestNewOpeningBookStartsEmpty(t *testing.T) {
	ob, err := NewOpeningBook(8, 1024)
	require.NoError(t, err)
	assert.Equal(t, 8, ob.Depth())
	assert.Equal(t, 0, ob.Len())
}

func TestOpeningBookLookupMissOnEmptyBook(t *testing.T) {
	ob, err := NewOpeningBook(8, 1024)
	require.NoError(t, err)

	_, ok := ob.Lookup(NewBoard())
	assert.False(t, ok)
}
