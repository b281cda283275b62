package shash

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// none marks the absence of an entry in any link or bucket head.
const none = ^uint64(0)

// MaxBuckets is the largest bucket count New accepts. Its bucket array takes
// 128 MiB; larger sizes are refused with ErrAllocation before anything is
// allocated.
const MaxBuckets = uint64(1) << 24

type entry struct {
	key   []byte
	value []byte
	// next entry in the same bucket, most recently inserted first
	next uint64
	// neighbours in ascending key order across all buckets
	sprev uint64
	snext uint64
}

// A Table maps byte-string keys to values with hashed lookup, and threads every
// entry through a doubly-linked list kept in ascending key order.
//
// Entries live in an arena and refer to each other by index, so the bucket
// chains and the sorted list are two views of the same records. The number of
// buckets is fixed when the table is created and keys are never removed.
//
// A Table is not safe for concurrent use; see SyncTable.
type Table struct {
	buckets []uint64
	entries []entry
	count   uint64
	shead   uint64
	stail   uint64
}

func createBuckets(size uint64) []uint64 {
	buckets := make([]uint64, size)
	for i := range buckets {
		buckets[i] = none
	}
	return buckets
}

// New creates a table with size buckets and no entries. size must be between
// 1 and MaxBuckets.
func New(size uint64) (*Table, error) {
	if size == 0 {
		return nil, ErrInvalidSize
	}
	if size > MaxBuckets {
		return nil, ErrAllocation
	}
	return &Table{
		buckets: createBuckets(size),
		shead:   none,
		stail:   none,
	}, nil
}

func (t *Table) bucketIdx(key []byte) uint64 {
	return KeyIndex(key, uint64(len(t.buckets)))
}

// find returns the index of the entry holding key, scanning only its bucket.
func (t *Table) find(key []byte) (uint64, bool) {
	var i = t.buckets[t.bucketIdx(key)]
	for i != none {
		e := &t.entries[i]
		if std.BytesEqual(e.key, key) {
			return i, true
		}
		i = e.next
	}
	return 0, false
}

// set takes ownership of key and value.
func (t *Table) set(key []byte, value []byte) error {
	if t == nil {
		return ErrNilTable
	}
	if t.buckets == nil {
		return ErrDestroyed
	}
	if i, ok := t.find(key); ok {
		t.entries[i].value = value
		return nil
	}
	// arena indices must stay below none; a safety net, never reached in
	// practice
	if t.count >= none-1 {
		return ErrAllocation
	}

	b := t.bucketIdx(key)
	i := uint64(len(t.entries))
	t.entries = append(t.entries, entry{
		key:   key,
		value: value,
		next:  t.buckets[b],
		sprev: none,
		snext: none,
	})
	t.buckets[b] = i
	t.linkSorted(i)
	t.count = std.SumAssumeNoOverflow(t.count, 1)
	primitive.Assert(t.count == uint64(len(t.entries)))
	return nil
}

// Set stores value under key, replacing the value of an existing key in place.
// Empty keys and values are allowed.
func (t *Table) Set(key string, value string) error {
	return t.set([]byte(key), []byte(value))
}

// SetBytes is like Set but takes byte slices, which the table copies. A nil key
// or value is rejected, while an empty non-nil slice is a valid key or value.
func (t *Table) SetBytes(key []byte, value []byte) error {
	if t == nil {
		return ErrNilTable
	}
	if key == nil {
		return ErrNilKey
	}
	if value == nil {
		return ErrNilValue
	}
	return t.set(std.BytesClone(key), std.BytesClone(value))
}

func (t *Table) get(key []byte) ([]byte, bool) {
	if t == nil || t.buckets == nil {
		return nil, false
	}
	i, ok := t.find(key)
	if !ok {
		return nil, false
	}
	return t.entries[i].value, true
}

// GetBytes returns the value stored under key, or false for a nil key. The
// returned slice is owned by the table and must not be modified.
func (t *Table) GetBytes(key []byte) ([]byte, bool) {
	if key == nil {
		return nil, false
	}
	return t.get(key)
}

func (t *Table) Get(key string) (string, bool) {
	v, ok := t.get([]byte(key))
	if !ok {
		return "", false
	}
	return string(v), true
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return int(t.count)
}

// Size returns the number of buckets, or 0 once the table is destroyed.
func (t *Table) Size() uint64 {
	if t == nil {
		return 0
	}
	return uint64(len(t.buckets))
}

// Destroy releases every entry and the bucket array. Set on a destroyed table
// returns ErrDestroyed and lookups find nothing. Destroy on a nil or already
// destroyed table does nothing.
func (t *Table) Destroy() {
	if t == nil || t.buckets == nil {
		return
	}
	// every entry is on exactly one chain, so the chains alone reach all of
	// them
	for b := range t.buckets {
		var i = t.buckets[b]
		for i != none {
			next := t.entries[i].next
			t.entries[i] = entry{}
			t.count--
			i = next
		}
		t.buckets[b] = none
	}
	primitive.Assert(t.count == 0)
	t.entries = nil
	t.buckets = nil
	t.shead = none
	t.stail = none
}
