package views

// ZipWithView combines two views element-wise and stops at the end of the shorter one.
// Both inputs move in lock-step, so the view supports whatever traversal both inputs
// support, and it can name its end when its length is known.
type ZipWithView[A, B, R any] struct {
	f func(A, B) R
	a View[A]
	b View[B]
}

// ZipWith returns the view of f(a[i], b[i]) for every i below the shorter input's length.
func ZipWith[A, B, R any](f func(A, B) R, a View[A], b View[B]) *ZipWithView[A, B, R] {
	return &ZipWithView[A, B, R]{f: f, a: a, b: b}
}

func (v *ZipWithView[A, B, R]) Begin() Cursor[R] {
	return &zipWithCursor[A, B, R]{view: v, c1: v.a.Begin(), c2: v.b.Begin()}
}

// End moves both inputs to the shorter length, so it needs that length up front.
func (v *ZipWithView[A, B, R]) End() (Cursor[R], bool) {
	n, ok := v.Cardinality().Size()
	if !ok || v.Capability() < Forward {
		return nil, false
	}
	c := &zipWithCursor[A, B, R]{view: v, c1: v.a.Begin(), c2: v.b.Begin()}
	c.Seek(n)
	return c, true
}

func (v *ZipWithView[A, B, R]) Cardinality() Cardinality {
	return ShortestCardinality(v.a.Cardinality(), v.b.Cardinality())
}

func (v *ZipWithView[A, B, R]) Capability() Capability {
	return minCapability(v.a.Capability(), v.b.Capability())
}

type zipWithCursor[A, B, R any] struct {
	view *ZipWithView[A, B, R]
	c1   Cursor[A]
	c2   Cursor[B]
}

func (c *zipWithCursor[A, B, R]) Value() R {
	return c.view.f(c.c1.Value(), c.c2.Value())
}

func (c *zipWithCursor[A, B, R]) Next() {
	c.c1.Next()
	c.c2.Next()
}

func (c *zipWithCursor[A, B, R]) Prev() {
	prev(c.c1)
	prev(c.c2)
}

func (c *zipWithCursor[A, B, R]) Seek(n int) {
	seek(c.c1, n)
	seek(c.c2, n)
}

func (c *zipWithCursor[A, B, R]) Done() bool { return c.c1.Done() || c.c2.Done() }

func (c *zipWithCursor[A, B, R]) Clone() Cursor[R] {
	return &zipWithCursor[A, B, R]{view: c.view, c1: c.c1.Clone(), c2: c.c2.Clone()}
}

func (c *zipWithCursor[A, B, R]) Equal(other Cursor[R]) bool {
	o, ok := other.(*zipWithCursor[A, B, R])
	return ok && c.c1.Equal(o.c1) && c.c2.Equal(o.c2)
}

// DistanceTo measures on the first input; the second has moved by the same amount.
func (c *zipWithCursor[A, B, R]) DistanceTo(other Cursor[R]) int {
	return distance(c.c1, other.(*zipWithCursor[A, B, R]).c1)
}

// ConcatView yields the elements of one view followed by those of another.
type ConcatView[T any] struct {
	first  View[T]
	second View[T]
}

// Concat returns first followed by second.
func Concat[T any](first, second View[T]) *ConcatView[T] {
	return &ConcatView[T]{first: first, second: second}
}

func (v *ConcatView[T]) Begin() Cursor[T] {
	c := &concatCursor[T]{view: v, first: v.first.Begin(), second: v.second.Begin()}
	c.inSecond = c.first.Done()
	return c
}

// End is available when both inputs can name theirs.
func (v *ConcatView[T]) End() (Cursor[T], bool) {
	e1, ok1 := v.first.End()
	e2, ok2 := v.second.End()
	if !ok1 || !ok2 {
		return nil, false
	}
	return &concatCursor[T]{
		view:     v,
		first:    e1,
		second:   e2,
		inSecond: true,
		pos:      sizeOf(v.first) + sizeOf(v.second),
	}, true
}

func (v *ConcatView[T]) Cardinality() Cardinality {
	return ConcatCardinality(v.first.Cardinality(), v.second.Cardinality())
}

func (v *ConcatView[T]) Capability() Capability {
	return minCapability(v.first.Capability(), v.second.Capability())
}

// concatCursor keeps a cursor on each input; first stays at its end while inSecond.
type concatCursor[T any] struct {
	view     *ConcatView[T]
	first    Cursor[T]
	second   Cursor[T]
	inSecond bool
	pos      int
}

func (c *concatCursor[T]) Value() T {
	if c.inSecond {
		return c.second.Value()
	}
	return c.first.Value()
}

func (c *concatCursor[T]) Next() {
	c.pos++
	if c.inSecond {
		c.second.Next()
		return
	}
	c.first.Next()
	c.inSecond = c.first.Done()
}

// Prev steps back into first once second is at its beginning.
func (c *concatCursor[T]) Prev() {
	c.pos--
	if c.inSecond && c.second.Equal(c.view.second.Begin()) {
		c.inSecond = false
	}
	if c.inSecond {
		prev(c.second)
		return
	}
	prev(c.first)
}

func (c *concatCursor[T]) Done() bool { return c.inSecond && c.second.Done() }

func (c *concatCursor[T]) Clone() Cursor[T] {
	return &concatCursor[T]{
		view:     c.view,
		first:    c.first.Clone(),
		second:   c.second.Clone(),
		inSecond: c.inSecond,
		pos:      c.pos,
	}
}

func (c *concatCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*concatCursor[T])
	if !ok || c.inSecond != o.inSecond {
		return false
	}
	if c.inSecond {
		return c.second.Equal(o.second)
	}
	return c.first.Equal(o.first)
}

func (c *concatCursor[T]) DistanceTo(other Cursor[T]) int {
	return other.(*concatCursor[T]).pos - c.pos
}
