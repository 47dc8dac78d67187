// Package ttable implements the fixed-capacity, direct-mapped
// transposition table used by the search engine to memoize score bounds.
//
// It is a best-effort cache, not a source of truth: collisions are resolved
// by simply overwriting whatever was in the slot, exactly as the spec
// requires. Entries are packed as a single 64-bit word (56-bit key, 8-bit
// signed value) rather than a struct with bit-field syntax, per the Design
// Notes' guidance for languages without bit fields.
package ttable

import "fmt"

// emptySentinel is the value byte (and, after reset, every byte) meaning
// "no entry here". Valid scores fall in [-21, 22], so 127 is unambiguous.
const emptySentinel = 0x7F

// InvalidSize is returned by New when capacity <= 0.
type InvalidSize struct {
	Capacity int
}

func (e InvalidSize) Error() string {
	return fmt.Sprintf("invalid transposition table size %d: must be > 0", e.Capacity)
}

// InvalidKey is returned by Put/Get when key has a bit set at or above
// position 56.
type InvalidKey struct {
	Key uint64
}

func (e InvalidKey) Error() string {
	return fmt.Sprintf("invalid transposition table key %#x: bit 56 or above is set", e.Key)
}

const maxKey = uint64(1) << 56

// Table is a fixed-size direct-mapped cache from a 56-bit position
// fingerprint to a signed byte score bound.
type Table struct {
	data     []uint64
	capacity uint64
}

// New allocates a table with room for exactly capacity entries.
func New(capacity int) (*Table, error) {
	if capacity <= 0 {
		return nil, InvalidSize{Capacity: capacity}
	}
	t := &Table{
		data:     make([]uint64, capacity),
		capacity: uint64(capacity),
	}
	t.Reset()
	return t, nil
}

// pack combines a 56-bit key and a signed byte value into one 64-bit word.
func pack(key uint64, value int8) uint64 {
	return (key << 8) | uint64(uint8(value))
}

func unpack(entry uint64) (key uint64, value int8) {
	return entry >> 8, int8(entry & 0xFF)
}

// Put stores value under key, overwriting whatever was previously in that
// key's slot.
func (t *Table) Put(key uint64, value int8) error {
	if key >= maxKey {
		return InvalidKey{Key: key}
	}
	t.data[key%t.capacity] = pack(key, value)
	return nil
}

// Get looks up key, returning (value, true) on a hit or (0, false) if the
// slot is empty or holds a different key.
func (t *Table) Get(key uint64) (int8, bool, error) {
	if key >= maxKey {
		return 0, false, InvalidKey{Key: key}
	}
	storedKey, value := unpack(t.data[key%t.capacity])
	if storedKey != key || value == emptySentinel {
		return 0, false, nil
	}
	return value, true, nil
}

// emptyWord is every byte set to 0x7F: both the 56 key bits and the value
// byte read back as 127, the reserved "empty slot" sentinel.
const emptyWord = uint64(0x7F7F7F7F7F7F7F7F)

// Reset fills every slot with the empty sentinel.
func (t *Table) Reset() {
	for i := range t.data {
		t.data[i] = emptyWord
	}
}

// Capacity returns the number of slots in the table.
func (t *Table) Capacity() int {
	return int(t.capacity)
}
