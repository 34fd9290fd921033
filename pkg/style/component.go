package style

// Component holds one style value together with its dirty state.
//
// Set and GetMut are the only mutators and both mark the cell dirty. A
// dynamic cell stays dirty after every fix, so it is recomputed each pass.
type Component[T any] struct {
	value   T
	dirty   bool
	dynamic bool
}

// NewComponent returns a dirty cell holding v.
func NewComponent[T any](v T) Component[T] {
	return Component[T]{value: v, dirty: true}
}

// Set replaces the value and marks the cell dirty.
func (c *Component[T]) Set(v T) {
	c.value = v
	c.dirty = true
}

// Get returns the value without touching the dirty flag.
func (c *Component[T]) Get() T {
	return c.value
}

// GetMut returns a pointer to the value and marks the cell dirty whether or
// not the caller changes it.
func (c *Component[T]) GetMut() *T {
	c.dirty = true
	return &c.value
}

// Dirty reports whether the value changed since the last fix.
func (c *Component[T]) Dirty() bool {
	return c.dirty
}

// Dynamic reports whether the cell is recomputed every pass.
func (c *Component[T]) Dynamic() bool {
	return c.dynamic
}

// SetDynamic toggles the dynamic flag and marks the cell dirty.
func (c *Component[T]) SetDynamic(dynamic bool) {
	c.dynamic = dynamic
	c.dirty = true
}

// MarkDirty flags the cell without changing its value.
func (c *Component[T]) MarkDirty() {
	c.dirty = true
}

// FixDirty returns the value and whether it was dirty, then clears the dirty
// flag unless the cell is dynamic.
func (c *Component[T]) FixDirty() (T, bool) {
	was := c.dirty
	c.dirty = c.dynamic
	return c.value, was
}

// FixDirtyForce returns the value regardless of the dirty flag and applies
// the same clear-unless-dynamic rule. It is used when an upstream dependency
// changed even though this cell did not.
func (c *Component[T]) FixDirtyForce() T {
	c.dirty = c.dynamic
	return c.value
}
