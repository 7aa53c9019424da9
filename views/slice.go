package views

// SliceView is a random-access view over a Go slice. The slice is not copied; mutating it
// while cursors are live is the caller's responsibility.
type SliceView[T any] struct {
	data []T
}

// FromSlice returns a view over data without copying it.
func FromSlice[T any](data []T) *SliceView[T] {
	return &SliceView[T]{data: data}
}

// Of returns a view over the given values.
func Of[T any](values ...T) *SliceView[T] {
	return &SliceView[T]{data: values}
}

func (v *SliceView[T]) Len() int { return len(v.data) }

func (v *SliceView[T]) Begin() Cursor[T] {
	return &sliceCursor[T]{view: v}
}

func (v *SliceView[T]) End() (Cursor[T], bool) {
	return &sliceCursor[T]{view: v, i: len(v.data)}, true
}

func (v *SliceView[T]) Cardinality() Cardinality { return Finite(len(v.data)) }

func (v *SliceView[T]) Capability() Capability { return RandomAccess }

type sliceCursor[T any] struct {
	view *SliceView[T]
	i    int
}

func (c *sliceCursor[T]) Value() (val T) {
	if c.i < 0 || c.i >= len(c.view.data) {
		return val
	}
	return c.view.data[c.i]
}

func (c *sliceCursor[T]) Next() { c.i++ }

func (c *sliceCursor[T]) Prev() { c.i-- }

func (c *sliceCursor[T]) Seek(n int) { c.i += n }

func (c *sliceCursor[T]) Done() bool { return c.i >= len(c.view.data) }

func (c *sliceCursor[T]) Clone() Cursor[T] {
	return &sliceCursor[T]{view: c.view, i: c.i}
}

func (c *sliceCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*sliceCursor[T])
	return ok && o.view == c.view && o.i == c.i
}

func (c *sliceCursor[T]) DistanceTo(other Cursor[T]) int {
	return other.(*sliceCursor[T]).i - c.i
}
