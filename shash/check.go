package shash

import (
	"bytes"
	"fmt"
)

// ChainLen returns the number of entries in bucket b.
func (t *Table) ChainLen(b uint64) int {
	if t == nil || b >= uint64(len(t.buckets)) {
		return 0
	}
	var n = 0
	for i := t.buckets[b]; i != none; i = t.entries[i].next {
		n++
	}
	return n
}

func (t *Table) validIndex(i uint64) bool {
	return i < uint64(len(t.entries))
}

// Validate checks that the bucket chains and the sorted list hold the same
// entries, that every entry is in the bucket its key hashes to, that keys are
// unique and that the list is strictly ascending with consistent links. It
// returns an error describing the first problem found.
func (t *Table) Validate() error {
	if t == nil {
		return ErrNilTable
	}
	if t.buckets == nil {
		if t.count != 0 || len(t.entries) != 0 {
			return fmt.Errorf("destroyed table still has %d entries", t.count)
		}
		return nil
	}
	if t.count != uint64(len(t.entries)) {
		return fmt.Errorf("count %d but arena holds %d entries", t.count, len(t.entries))
	}

	inChain := make([]bool, len(t.entries))
	var chained = uint64(0)
	for b, head := range t.buckets {
		for i := head; i != none; i = t.entries[i].next {
			if !t.validIndex(i) {
				return fmt.Errorf("bucket %d links to invalid entry %d", b, i)
			}
			if inChain[i] {
				return fmt.Errorf("entry %d reached twice from bucket chains", i)
			}
			inChain[i] = true
			chained++
			if want := t.bucketIdx(t.entries[i].key); want != uint64(b) {
				return fmt.Errorf("key %q in bucket %d, hashes to %d", t.entries[i].key, b, want)
			}
		}
	}

	inList := make([]bool, len(t.entries))
	var listed = uint64(0)
	var prev = none
	for i := t.shead; i != none; i = t.entries[i].snext {
		if !t.validIndex(i) {
			return fmt.Errorf("sorted list links to invalid entry %d", i)
		}
		if inList[i] {
			return fmt.Errorf("entry %d reached twice from sorted list", i)
		}
		inList[i] = true
		listed++
		e := &t.entries[i]
		if e.sprev != prev {
			return fmt.Errorf("entry %d has prev %d, want %d", i, e.sprev, prev)
		}
		if prev != none && bytes.Compare(t.entries[prev].key, e.key) >= 0 {
			return fmt.Errorf("sorted list out of order at %q, %q", t.entries[prev].key, e.key)
		}
		prev = i
	}
	if t.stail != prev {
		return fmt.Errorf("tail is %d, list ends at %d", t.stail, prev)
	}

	if chained != listed {
		return fmt.Errorf("%d entries in bucket chains, %d in sorted list", chained, listed)
	}
	for i := range t.entries {
		if !inChain[i] || !inList[i] {
			return fmt.Errorf("entry %d (%q) not linked into both structures", i, t.entries[i].key)
		}
	}
	return nil
}
