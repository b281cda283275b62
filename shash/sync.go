package shash

import (
	"io"
	"sync"

	"github.com/goose-lang/std"
)

// A SyncTable is a Table guarded by a single mutex. Every method holds the
// lock for its whole duration, including full traversals, so a caller-supplied
// Ascend or Descend callback must not call back into the same SyncTable.
type SyncTable struct {
	mu *sync.Mutex
	t  *Table
}

func NewSyncTable(size uint64) (*SyncTable, error) {
	t, err := New(size)
	if err != nil {
		return nil, err
	}
	return &SyncTable{mu: new(sync.Mutex), t: t}, nil
}

func (s *SyncTable) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Set(key, value)
}

func (s *SyncTable) SetBytes(key []byte, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.SetBytes(key, value)
}

func (s *SyncTable) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Get(key)
}

// GetBytes returns a copy of the value stored under key, since the table's own
// slice may be replaced by a concurrent Set once the lock is released.
func (s *SyncTable) GetBytes(key []byte) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.t.GetBytes(key)
	if !ok {
		return nil, false
	}
	return std.BytesClone(v), true
}

func (s *SyncTable) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Len()
}

func (s *SyncTable) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Keys()
}

func (s *SyncTable) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.String()
}

func (s *SyncTable) ReverseString() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.ReverseString()
}

func (s *SyncTable) Fprint(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Fprint(w)
}

func (s *SyncTable) FprintReverse(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.FprintReverse(w)
}

func (s *SyncTable) Ascend(fn func(key, value string) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Ascend(fn)
}

func (s *SyncTable) Descend(fn func(key, value string) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Descend(fn)
}

// Validate runs Table.Validate under the lock.
func (s *SyncTable) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Validate()
}

func (s *SyncTable) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Destroy()
}
