package modified

// Resetable is a Modified whose flag can be cleared again, establishing a new
// baseline for change tracking.
type Resetable[T any] struct {
	Modified[T]
}

// NewResetable returns a Resetable holding v.
func NewResetable[T any](v T) Resetable[T] {
	return Resetable[T]{New(v)}
}

// NewResetableModified returns a Resetable holding v with the flag already set.
func NewResetableModified[T any](v T) Resetable[T] {
	return Resetable[T]{NewModified(v)}
}

// Reset clears the modified flag without touching the value.
func (r *Resetable[T]) Reset() {
	r.changed = false
}
