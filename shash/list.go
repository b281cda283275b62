package shash

import (
	"bytes"

	"github.com/goose-lang/primitive"
)

// linkSorted splices the unlinked entry i into the sorted list, before the
// first key that is not less than its own.
func (t *Table) linkSorted(i uint64) {
	key := t.entries[i].key
	var prev = none
	var cur = t.shead
	for cur != none && bytes.Compare(t.entries[cur].key, key) < 0 {
		prev = cur
		cur = t.entries[cur].snext
	}
	// keys are unique, so nothing equal can be found here
	primitive.Assert(cur == none || bytes.Compare(t.entries[cur].key, key) > 0)

	e := &t.entries[i]
	e.sprev = prev
	e.snext = cur
	if cur != none {
		t.entries[cur].sprev = i
	} else {
		t.stail = i
	}
	if prev != none {
		t.entries[prev].snext = i
	} else {
		t.shead = i
	}
}

func (t *Table) empty() bool {
	return t == nil || t.buckets == nil || t.shead == none
}

// Ascend calls fn for each key and value in ascending key order, stopping
// early if fn returns false.
func (t *Table) Ascend(fn func(key, value string) bool) {
	if t.empty() {
		return
	}
	for i := t.shead; i != none; i = t.entries[i].snext {
		e := &t.entries[i]
		if !fn(string(e.key), string(e.value)) {
			return
		}
	}
}

// Descend is Ascend in descending key order.
func (t *Table) Descend(fn func(key, value string) bool) {
	if t.empty() {
		return
	}
	for i := t.stail; i != none; i = t.entries[i].sprev {
		e := &t.entries[i]
		if !fn(string(e.key), string(e.value)) {
			return
		}
	}
}

// Keys returns all keys in ascending order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.Len())
	t.Ascend(func(key, _ string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
