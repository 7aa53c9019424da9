package views

// TransformView applies f to every element of a view. It keeps the input's cardinality,
// capability and end cursor.
type TransformView[T, R any] struct {
	base View[T]
	f    func(T) R
}

// Transform returns the view of f applied to every element of v.
func Transform[T, R any](v View[T], f func(T) R) *TransformView[T, R] {
	return &TransformView[T, R]{base: v, f: f}
}

func (v *TransformView[T, R]) Begin() Cursor[R] {
	return &transformCursor[T, R]{view: v, base: v.base.Begin()}
}

func (v *TransformView[T, R]) End() (Cursor[R], bool) {
	end, ok := v.base.End()
	if !ok {
		return nil, false
	}
	return &transformCursor[T, R]{view: v, base: end}, true
}

func (v *TransformView[T, R]) Cardinality() Cardinality { return v.base.Cardinality() }

func (v *TransformView[T, R]) Capability() Capability { return v.base.Capability() }

type transformCursor[T, R any] struct {
	view *TransformView[T, R]
	base Cursor[T]
}

func (c *transformCursor[T, R]) Value() R { return c.view.f(c.base.Value()) }

func (c *transformCursor[T, R]) Next() { c.base.Next() }

func (c *transformCursor[T, R]) Prev() { prev(c.base) }

func (c *transformCursor[T, R]) Done() bool { return c.base.Done() }

func (c *transformCursor[T, R]) Clone() Cursor[R] {
	return &transformCursor[T, R]{view: c.view, base: c.base.Clone()}
}

func (c *transformCursor[T, R]) Equal(other Cursor[R]) bool {
	o, ok := other.(*transformCursor[T, R])
	return ok && c.base.Equal(o.base)
}

func (c *transformCursor[T, R]) DistanceTo(other Cursor[R]) int {
	return distance(c.base, other.(*transformCursor[T, R]).base)
}
