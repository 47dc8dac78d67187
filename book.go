package connectfour

import (
	"github.com/loic-ehrhardt/connect4-solver/internal/book"
)

// OpeningBook is a depth-bounded, exhaustive evaluation table keyed by
// position fingerprint (spec.md §4.D), with horizontal-mirror
// canonicalization and a compact binary file format.
type OpeningBook struct {
	b *book.Book
}

// BookOption configures an OpeningBook at construction time.
type BookOption = book.Option

// NewOpeningBook allocates an empty book generated (or loadable) to depth
// plies, with its own transposition table of ttCapacity entries for leaf
// evaluation.
func NewOpeningBook(depth, ttCapacity int, opts ...BookOption) (*OpeningBook, error) {
	inner, err := book.New(depth, ttCapacity, opts...)
	if err != nil {
		return nil, err
	}
	return &OpeningBook{b: inner}, nil
}

// Generate recursively fills the book from the empty position and returns
// its score.
func (o *OpeningBook) Generate() int8 {
	return o.b.Generate(NewBoard().internalPosition())
}

// Lookup returns the stored score for b, trying both the board's key and
// its symmetric key.
func (o *OpeningBook) Lookup(b *Board) (int8, bool) {
	return o.b.Lookup(b.internalPosition())
}

// Depth returns the ply depth the book was generated to.
func (o *OpeningBook) Depth() int {
	return o.b.Depth
}

// Len reports how many positions the book currently holds.
func (o *OpeningBook) Len() int {
	return o.b.Len()
}

// Dump writes the book to path in the binary format of spec.md §4.D.
func (o *OpeningBook) Dump(path string) error {
	return o.b.Dump(path)
}

// Load reads a book previously written by Dump, replacing this book's
// depth and entries.
func (o *OpeningBook) Load(path string) error {
	return o.b.Load(path)
}
