package modified

// Modified is a cell that holds a single value and remembers whether it has
// been written to since it was created. The zero value holds a zero T and is
// not marked as modified.
type Modified[T any] struct {
	value   T
	changed bool
}

// New returns a Modified holding v.
func New[T any](v T) Modified[T] {
	return Modified[T]{value: v}
}

// NewModified returns a Modified holding v with the flag already set.
func NewModified[T any](v T) Modified[T] {
	return Modified[T]{value: v, changed: true}
}

// Get returns the current value. Reading never touches the flag.
func (m *Modified[T]) Get() T {
	return m.value
}

// GetChanged returns the current value together with the flag.
func (m *Modified[T]) GetChanged() (T, bool) {
	return m.value, m.changed
}

// Set replaces the value and marks the cell as modified. No equality check is
// made: writing the old value back still counts as a write.
func (m *Modified[T]) Set(v T) {
	m.value = v
	m.changed = true
}

// Ptr returns a pointer to the inner value and marks the cell as modified.
// The cell cannot see whether the caller actually writes through the pointer,
// so handing it out counts as a write.
func (m *Modified[T]) Ptr() *T {
	m.changed = true
	return &m.value
}

// Unwrap returns the inner value. The cell is not meant to be used afterwards.
func (m *Modified[T]) Unwrap() T {
	return m.value
}

// IsModified reports whether the value has been written to since the cell was
// created or, for a Resetable, since the last Reset.
func (m *Modified[T]) IsModified() bool {
	return m.changed
}

// IsUnchanged is the negation of IsModified.
func (m *Modified[T]) IsUnchanged() bool {
	return !m.changed
}
