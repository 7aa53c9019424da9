package views

// MonoidalZipView pairs two views of possibly different length. While both inputs have
// elements it yields f(a, b); once the shorter input is exhausted it passes the longer
// input's elements through, so the result is as long as the longer input.
type MonoidalZipView[T any] struct {
	f func(T, T) T
	a View[T]
	b View[T]

	// passA and passB transform pass-through elements of a and b. nil leaves them unchanged.
	passA func(T) T
	passB func(T) T
}

// MonoidalZip combines a and b element-wise with f and passes the surviving input's
// elements through unchanged once the shorter input ends.
//
// The result is Infinite if either input is; with a single infinite input the finite one
// is combined while it lasts. Its capability is the lower of the inputs'.
func MonoidalZip[T any](f func(T, T) T, a, b View[T]) *MonoidalZipView[T] {
	return &MonoidalZipView[T]{f: f, a: a, b: b}
}

// MonoidalZipFill is MonoidalZip with an explicit neutral element: once the shorter input
// ends, the surviving elements are combined with fill (f(x, fill) or f(fill, y)) instead of
// passed through.
func MonoidalZipFill[T any](f func(T, T) T, a, b View[T], fill T) *MonoidalZipView[T] {
	return &MonoidalZipView[T]{
		f:     f,
		a:     a,
		b:     b,
		passA: func(x T) T { return f(x, fill) },
		passB: func(y T) T { return f(fill, y) },
	}
}

func (v *MonoidalZipView[T]) Cardinality() Cardinality {
	return ZipCardinality(v.a.Cardinality(), v.b.Cardinality())
}

func (v *MonoidalZipView[T]) Capability() Capability {
	return minCapability(v.a.Capability(), v.b.Capability())
}

func (v *MonoidalZipView[T]) Begin() Cursor[T] {
	c := &monoidalZipCursor[T]{view: v, c1: v.a.Begin(), c2: v.b.Begin()}
	// an input that is empty from the start puts the cursor straight into pass-through
	switch d1, d2 := c.c1.Done(), c.c2.Done(); {
	case d2 && !d1:
		c.diff = 1
	case d1 && !d2:
		c.diff = -1
	}
	return c
}

// End is available when both inputs are bounded. Input sizes not given by their
// cardinality are counted.
func (v *MonoidalZipView[T]) End() (Cursor[T], bool) {
	e1, ok1 := v.a.End()
	e2, ok2 := v.b.End()
	if !ok1 || !ok2 {
		return nil, false
	}
	n, m := sizeOf(v.a), sizeOf(v.b)
	c := &monoidalZipCursor[T]{view: v, c1: e1, c2: e2}
	switch {
	case n > m:
		c.diff = n - m + 1
	case n < m:
		c.diff = -(m - n + 1)
	}
	return c, true
}

// monoidalZipCursor tracks both inputs and a signed diff:
//
//	diff == 0  both inputs have elements (or both are exhausted)
//	diff  > 0  b is exhausted, a passes through; a is diff-1 steps past b's length
//	diff  < 0  a is exhausted, b passes through
type monoidalZipCursor[T any] struct {
	view *MonoidalZipView[T]
	c1   Cursor[T]
	c2   Cursor[T]
	diff int
}

func (c *monoidalZipCursor[T]) Value() T {
	switch {
	case c.diff > 0:
		x := c.c1.Value()
		if c.view.passA != nil {
			return c.view.passA(x)
		}
		return x
	case c.diff < 0:
		y := c.c2.Value()
		if c.view.passB != nil {
			return c.view.passB(y)
		}
		return y
	default:
		return c.view.f(c.c1.Value(), c.c2.Value())
	}
}

func (c *monoidalZipCursor[T]) Next() {
	// a longer than b
	if c.diff > 0 {
		c.c1.Next()
		c.diff++
		return
	}
	// b longer than a
	if c.diff < 0 {
		c.c2.Next()
		c.diff--
		return
	}
	// same
	c.c1.Next()
	c.c2.Next()
	if c.c2.Done() {
		c.diff++
	}
	if c.c1.Done() {
		c.diff--
	}
}

// Prev mirrors Next: the phase boundary is crossed back at the position it was crossed
// going forward.
func (c *monoidalZipCursor[T]) Prev() {
	if c.diff > 0 {
		prev(c.c1)
		c.diff--
		if c.diff == 0 {
			prev(c.c2)
		}
		return
	}
	if c.diff < 0 {
		prev(c.c2)
		c.diff++
		if c.diff == 0 {
			prev(c.c1)
		}
		return
	}
	prev(c.c1)
	prev(c.c2)
}

func (c *monoidalZipCursor[T]) Done() bool {
	return c.c1.Done() && c.c2.Done()
}

func (c *monoidalZipCursor[T]) Clone() Cursor[T] {
	return &monoidalZipCursor[T]{
		view: c.view,
		c1:   c.c1.Clone(),
		c2:   c.c2.Clone(),
		diff: c.diff,
	}
}

// Equal compares the input positions only; diff follows from them.
func (c *monoidalZipCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*monoidalZipCursor[T])
	return ok && c.c1.Equal(o.c1) && c.c2.Equal(o.c2)
}

// DistanceTo returns the larger of the two input distances. Both inputs move in lock-step
// until one is exhausted, so the longer leg's distance is the distance in the result.
func (c *monoidalZipCursor[T]) DistanceTo(other Cursor[T]) int {
	o := other.(*monoidalZipCursor[T])
	return largerMagnitude(distance(c.c1, o.c1), distance(c.c2, o.c2))
}
