// Package book implements the opening book: a depth-bounded, exhaustive
// evaluation table keyed by position fingerprints, with horizontal-mirror
// canonicalization and a compact binary on-disk layout.
//
// Grounded on hailam-chessplay/internal/book/book.go for the "open a single
// file, read/write sequential encoding/binary records, sort before dumping"
// shape (there applied to a Polyglot chess book; here adapted to this
// spec's flat 9-byte <key><score> record format). The recursive generation
// algorithm is rebuilt from spec §4.D against original_source/connectpy,
// whose kept C++ file is pybind11-boundary-only and never implemented book
// generation itself.
package book

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/loic-ehrhardt/connect4-solver/internal/position"
	"github.com/loic-ehrhardt/connect4-solver/internal/search"
	"github.com/loic-ehrhardt/connect4-solver/internal/ttable"
)

const recordSize = 9 // 8-byte key + 1-byte score

// CorruptBook is returned by Load when the file size is not of the form
// 9n+1, or when stat-ing the file fails.
// Size is -1 when the file could not be stat-ed.
type CorruptBook struct {
	Path string
	Size int64
}

func (e CorruptBook) Error() string {
	if e.Size < 0 {
		return fmt.Sprintf("corrupt opening book %q: cannot stat file", e.Path)
	}
	return fmt.Sprintf("corrupt opening book %q: size %d is not 9n+1", e.Path, e.Size)
}

// IoError wraps an underlying read/write failure while loading or dumping.
type IoError struct {
	Op  string
	Err error
}

func (e IoError) Error() string {
	return fmt.Sprintf("book %s: %v", e.Op, e.Err)
}

func (e IoError) Unwrap() error {
	return e.Err
}

// Book maps position fingerprints to exact scores, generated exhaustively
// up to Depth plies and evaluated beyond that by an owned search engine.
type Book struct {
	Depth   int
	entries map[uint64]int8
	engine  *search.Engine
	logger  zerolog.Logger
}

// Option configures a Book at construction time.
type Option func(*Book)

// WithLogger attaches a zerolog.Logger used for generation progress.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Book) {
		b.logger = logger
	}
}

// New creates an empty book that will be generated (or is ready to be
// populated by Load) to the given ply depth. ttCapacity sizes the
// transposition table the internal search engine uses for leaf evaluation.
func New(depth, ttCapacity int, opts ...Option) (*Book, error) {
	tt, err := ttable.New(ttCapacity)
	if err != nil {
		return nil, err
	}
	b := &Book{
		Depth:   depth,
		entries: make(map[uint64]int8),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.engine = search.New(tt, search.WithLogger(b.logger))
	return b, nil
}

// Len reports how many positions the book currently holds.
func (b *Book) Len() int {
	return len(b.entries)
}

// Generate recursively fills the book starting from p (pass position.New()
// to build a book from the empty position), returning p's score from the
// perspective of the side to move.
func (b *Book) Generate(p *position.Position) int8 {
	score := b.generate(p)
	b.logger.Info().Int("depth", b.Depth).Int("entries", len(b.entries)).Msg("book-generated")
	return score
}

func (b *Book) generate(p *position.Position) int8 {
	if score, ok := b.entries[p.Key()]; ok {
		return score
	}
	if score, ok := b.entries[p.SymmetricKey()]; ok {
		return score
	}

	var score int8
	switch {
	case p.GetStatus() != position.InProgress:
		score = int8(b.engine.Negamax(p))
	case p.Moves() < b.Depth:
		best := 0
		first := true
		for col := 0; col < position.W; col++ {
			if !p.CanPlay(col) {
				continue
			}
			child := p.Clone()
			_ = child.Play(col)
			childScore := -int(b.generate(child))
			if first || childScore > best {
				best = childScore
				first = false
			}
		}
		score = int8(best)
	default:
		score = int8(b.engine.DichotomicSolve(p, false))
	}

	b.entries[p.Key()] = score
	if p.Moves()%2 == 0 && p.Moves() < b.Depth {
		b.logger.Debug().Int("moves", p.Moves()).Int("entries", len(b.entries)).Msg("book-generate-progress")
	}
	return score
}

// Lookup returns the stored score for p, trying p.Key() and then
// p.SymmetricKey(). It reports "not present" if p.Moves() exceeds Depth or
// neither key is in the book.
func (b *Book) Lookup(p *position.Position) (int8, bool) {
	if p.Moves() > b.Depth {
		return 0, false
	}
	if score, ok := b.entries[p.Key()]; ok {
		return score, true
	}
	if score, ok := b.entries[p.SymmetricKey()]; ok {
		return score, true
	}
	return 0, false
}

// Dump writes the book to path: one signed byte for Depth, then ascending
// 9-byte <key:8><score:1> records, little-endian.
func (b *Book) Dump(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return IoError{Op: "dump", Err: err}
	}
	defer f.Close()

	keys := make([]uint64, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	if _, err := f.Write([]byte{byte(int8(b.Depth))}); err != nil {
		return IoError{Op: "dump", Err: err}
	}

	var record [recordSize]byte
	for _, k := range keys {
		binary.LittleEndian.PutUint64(record[:8], k)
		record[8] = byte(b.entries[k])
		if _, err := f.Write(record[:]); err != nil {
			return IoError{Op: "dump", Err: err}
		}
	}
	return nil
}

// Load reads a book previously written by Dump, replacing b's Depth and
// in-memory entries.
func (b *Book) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return IoError{Op: "load", Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return CorruptBook{Path: path, Size: -1}
	}
	size := info.Size()
	if size < 1 || (size-1)%recordSize != 0 {
		return CorruptBook{Path: path, Size: size}
	}

	header := make([]byte, 1)
	if _, err := io.ReadFull(f, header); err != nil {
		return IoError{Op: "load", Err: err}
	}
	depth := int(int8(header[0]))

	entries := make(map[uint64]int8, (size-1)/recordSize)
	var record [recordSize]byte
	for {
		_, err := io.ReadFull(f, record[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return IoError{Op: "load", Err: err}
		}
		key := binary.LittleEndian.Uint64(record[:8])
		entries[key] = int8(record[8])
	}

	b.Depth = depth
	b.entries = entries
	b.logger.Info().Str("path", path).Int("depth", depth).Int("entries", len(entries)).Msg("book-loaded")
	return nil
}
