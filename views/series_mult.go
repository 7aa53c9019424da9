package views

import "fmt"

// SeriesMultView is the discrete convolution of two coefficient views: the coefficients of
// the product of the polynomials (or power series) they describe.
//
//	R[k] = sum of A[i]*B[j] over i+j == k
//
// Advancing a cursor is O(1). Value is recomputed on every call as an inner product over
// the current overlap window and is not cached, so it costs O(window) each time.
type SeriesMultView[T Number] struct {
	a View[T]
	b View[T]
}

// SeriesMultiply returns the convolution of a and b. Both inputs must be at least
// Bidirectional; otherwise the error wraps ErrNotBidirectional. If either input is empty
// the result is empty.
func SeriesMultiply[T Number](a, b View[T]) (*SeriesMultView[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("series multiply: %w", ErrNilView)
	}
	if c := a.Capability(); c < Bidirectional {
		return nil, fmt.Errorf("series multiply: first input is %s: %w", c, ErrNotBidirectional)
	}
	if c := b.Capability(); c < Bidirectional {
		return nil, fmt.Errorf("series multiply: second input is %s: %w", c, ErrNotBidirectional)
	}
	return &SeriesMultView[T]{a: a, b: b}, nil
}

func (v *SeriesMultView[T]) Cardinality() Cardinality {
	return ConvolutionCardinality(v.a.Cardinality(), v.b.Cardinality())
}

func (v *SeriesMultView[T]) Capability() Capability {
	return minCapability(v.a.Capability(), v.b.Capability())
}

func (v *SeriesMultView[T]) Begin() Cursor[T] {
	c := &seriesMultCursor[T]{view: v, c1: v.a.Begin(), c2: v.b.Begin()}
	if c.c1.Done() || c.c2.Done() {
		c.empty = true
		return c
	}
	// the first coefficient has a window of one: A[0]*B[0]
	c.Next()
	return c
}

func (v *SeriesMultView[T]) End() (Cursor[T], bool) {
	e1, ok1 := v.a.End()
	e2, ok2 := v.b.End()
	if !ok1 || !ok2 {
		return nil, false
	}
	n, m := sizeOf(v.a), sizeOf(v.b)
	if n == 0 || m == 0 {
		return &seriesMultCursor[T]{view: v, c1: e1, c2: e2, empty: true}, true
	}
	overlap := min(n, m)
	return &seriesMultCursor[T]{
		view:    v,
		c1:      e1,
		c2:      e2,
		overlap: overlap,
		diff:    n - m,
		tail:    overlap,
	}, true
}

// seriesMultCursor walks the convolution triangle.
//
//	overlap  window length reached while both inputs still had unread elements
//	diff     steps taken on one input after the other was exhausted (> 0: a, < 0: b)
//	tail     once both inputs are exhausted, how far the window has shrunk
//
// c1 and c2 sit one past the last element of their input that belongs to the window.
type seriesMultCursor[T Number] struct {
	view    *SeriesMultView[T]
	c1      Cursor[T]
	c2      Cursor[T]
	overlap int
	diff    int
	tail    int
	empty   bool
}

// Value pairs the window of a, read forward, with the window of b, read backward.
func (c *seriesMultCursor[T]) Value() T {
	var sum T
	w := c.overlap - c.tail
	if c.empty || w <= 0 {
		return sum
	}
	a := c.c1.Clone()
	seek(a, -w)
	b := c.c2.Clone()
	for range w {
		prev(b)
		sum += a.Value() * b.Value()
		a.Next()
	}
	return sum
}

func (c *seriesMultCursor[T]) Next() {
	if c.empty {
		return
	}
	// both exhausted: shrink
	if c.tail > 0 || (c.c1.Done() && c.c2.Done()) {
		c.tail++
		return
	}
	// a longer than b
	if c.c2.Done() {
		c.c1.Next()
		c.diff++
		return
	}
	// b longer than a
	if c.c1.Done() {
		c.c2.Next()
		c.diff--
		return
	}
	// grow
	c.overlap++
	c.c1.Next()
	c.c2.Next()
}

func (c *seriesMultCursor[T]) Prev() {
	if c.empty {
		return
	}
	if c.tail > 0 {
		c.tail--
		return
	}
	if c.diff > 0 {
		prev(c.c1)
		c.diff--
		return
	}
	if c.diff < 0 {
		prev(c.c2)
		c.diff++
		return
	}
	c.overlap--
	prev(c.c1)
	prev(c.c2)
}

func (c *seriesMultCursor[T]) Done() bool {
	return c.empty || (c.tail == c.overlap && c.c1.Done() && c.c2.Done())
}

func (c *seriesMultCursor[T]) Clone() Cursor[T] {
	return &seriesMultCursor[T]{
		view:    c.view,
		c1:      c.c1.Clone(),
		c2:      c.c2.Clone(),
		overlap: c.overlap,
		diff:    c.diff,
		tail:    c.tail,
		empty:   c.empty,
	}
}

// Equal compares the bookkeeping as well as the input positions: during the tail phase
// every state shares the same input positions.
func (c *seriesMultCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*seriesMultCursor[T])
	if !ok {
		return false
	}
	if c.empty || o.empty {
		return c.empty == o.empty
	}
	return c.c1.Equal(o.c1) &&
		c.c2.Equal(o.c2) &&
		c.overlap == o.overlap &&
		c.diff == o.diff &&
		c.tail == o.tail
}

// DistanceTo is the larger of the input distances plus the change in tail.
func (c *seriesMultCursor[T]) DistanceTo(other Cursor[T]) int {
	o := other.(*seriesMultCursor[T])
	if c.empty || o.empty {
		return 0
	}
	return largerMagnitude(distance(c.c1, o.c1), distance(c.c2, o.c2)) + o.tail - c.tail
}
