package shash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFilled(t *testing.T, size uint64, keys ...string) *Table {
	tbl, err := New(size)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range keys {
		if err := tbl.Set(k, "v"+k); err != nil {
			t.Fatal(err)
		}
	}
	return tbl
}

func TestValidateOK(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(newFilled(t, 1).Validate())
	assert.NoError(newFilled(t, 1, "c", "a", "b").Validate())
	assert.NoError(newFilled(t, 16, "delta", "alpha", "charlie", "bravo").Validate())

	var tbl *Table
	assert.ErrorIs(tbl.Validate(), ErrNilTable)
}

func TestValidateOutOfOrder(t *testing.T) {
	tbl := newFilled(t, 4, "a", "b")
	// swap the keys so the list is descending
	ia := tbl.shead
	ib := tbl.stail
	tbl.entries[ia].key, tbl.entries[ib].key = tbl.entries[ib].key, tbl.entries[ia].key
	assert.Error(t, tbl.Validate())
}

func TestValidateUnlinkedFromList(t *testing.T) {
	assert := assert.New(t)

	tbl := newFilled(t, 4, "a", "b", "c")
	// drop the tail from the sorted list only
	last := tbl.stail
	prev := tbl.entries[last].sprev
	tbl.entries[prev].snext = none
	tbl.stail = prev

	err := tbl.Validate()
	assert.Error(err)
	assert.Contains(err.Error(), "3 entries in bucket chains, 2 in sorted list")
}

func TestValidateBadTail(t *testing.T) {
	tbl := newFilled(t, 4, "a", "b")
	tbl.stail = tbl.shead
	assert.Error(t, tbl.Validate())
}

func TestValidateBrokenPrev(t *testing.T) {
	tbl := newFilled(t, 4, "a", "b", "c")
	tbl.entries[tbl.stail].sprev = tbl.shead
	assert.Error(t, tbl.Validate())
}

func TestValidateWrongBucket(t *testing.T) {
	assert := assert.New(t)

	tbl := newFilled(t, 2, "a")
	// "a" hashes to bucket 0; move it to bucket 1
	assert.Equal(uint64(0), KeyIndex([]byte("a"), 2))
	tbl.buckets[1] = tbl.buckets[0]
	tbl.buckets[0] = none
	assert.Error(tbl.Validate())
}

func TestValidateChainCycle(t *testing.T) {
	tbl := newFilled(t, 1, "a", "b")
	// the chain head is the newest entry; point the oldest back at it
	head := tbl.buckets[0]
	tbl.entries[tbl.entries[head].next].next = head
	assert.Error(t, tbl.Validate())
}

func TestChainLen(t *testing.T) {
	assert := assert.New(t)

	tbl := newFilled(t, 8, "a", "b", "c", "d", "e", "f", "g", "h", "i")
	var total = 0
	for b := uint64(0); b < tbl.Size(); b++ {
		total += tbl.ChainLen(b)
	}
	assert.Equal(tbl.Len(), total)
	assert.Equal(0, tbl.ChainLen(8), "out of range bucket")
}

func TestChainNewestFirst(t *testing.T) {
	assert := assert.New(t)

	tbl := newFilled(t, 1, "z", "a", "m")
	var keys []string
	for i := tbl.buckets[0]; i != none; i = tbl.entries[i].next {
		keys = append(keys, string(tbl.entries[i].key))
	}
	assert.Equal([]string{"m", "a", "z"}, keys)
}

func TestSetArenaFull(t *testing.T) {
	assert := assert.New(t)

	tbl := newFilled(t, 4, "a")
	tbl.count = none - 1
	assert.ErrorIs(tbl.Set("b", "1"), ErrAllocation)
	assert.Len(tbl.entries, 1, "nothing appended")
	assert.Equal(1, tbl.ChainLen(KeyIndex([]byte("a"), 4)))

	// updating an existing key needs no new entry
	assert.NoError(tbl.Set("a", "2"))
	v, _ := tbl.Get("a")
	assert.Equal("2", v)
}
