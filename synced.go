package modified

import "sync"

// Synced guards a Resetable with a mutex so a single cell can be shared
// between goroutines. The plain cells make no atomicity guarantee across
// their two fields, so synchronization lives here, around the whole cell,
// rather than inside it.
type Synced[T any] struct {
	mu   sync.Mutex
	cell Resetable[T]
}

// NewSynced returns a Synced holding v.
func NewSynced[T any](v T) *Synced[T] {
	return &Synced[T]{cell: NewResetable(v)}
}

func (s *Synced[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cell.Get()
}

func (s *Synced[T]) GetChanged() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cell.GetChanged()
}

func (s *Synced[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.Set(v)
}

func (s *Synced[T]) IsModified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cell.IsModified()
}

func (s *Synced[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.Reset()
}

// Update runs fn on the inner value while holding the lock, and marks the
// cell as modified whether or not fn writes anything. The pointer must not
// be retained after fn returns.
func (s *Synced[T]) Update(fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cell.Ptr())
}
