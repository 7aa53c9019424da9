package views

import "fmt"

// ReverseView reads a bounded bidirectional view from its last element to its first.
type ReverseView[T any] struct {
	base View[T]
}

// Reverse needs a Bidirectional view with an end cursor.
func Reverse[T any](v View[T]) (*ReverseView[T], error) {
	if v == nil {
		return nil, fmt.Errorf("reverse: %w", ErrNilView)
	}
	if c := v.Capability(); c < Bidirectional {
		return nil, fmt.Errorf("reverse: view is %s: %w", c, ErrNotBidirectional)
	}
	if _, ok := v.End(); !ok {
		return nil, fmt.Errorf("reverse: %w", ErrUnbounded)
	}
	return &ReverseView[T]{base: v}, nil
}

func (v *ReverseView[T]) Begin() Cursor[T] {
	end, _ := v.base.End()
	return &reverseCursor[T]{base: end, first: v.base.Begin()}
}

func (v *ReverseView[T]) End() (Cursor[T], bool) {
	first := v.base.Begin()
	return &reverseCursor[T]{base: first.Clone(), first: first}, true
}

func (v *ReverseView[T]) Cardinality() Cardinality { return v.base.Cardinality() }

func (v *ReverseView[T]) Capability() Capability { return v.base.Capability() }

// reverseCursor sits one position after the element it denotes, so the input's end
// cursor is the reversed begin.
type reverseCursor[T any] struct {
	base  Cursor[T]
	first Cursor[T]
}

func (c *reverseCursor[T]) Value() T {
	at := c.base.Clone()
	prev(at)
	return at.Value()
}

func (c *reverseCursor[T]) Next() { prev(c.base) }

func (c *reverseCursor[T]) Prev() { c.base.Next() }

func (c *reverseCursor[T]) Done() bool { return c.base.Equal(c.first) }

func (c *reverseCursor[T]) Clone() Cursor[T] {
	return &reverseCursor[T]{base: c.base.Clone(), first: c.first}
}

func (c *reverseCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*reverseCursor[T])
	return ok && c.base.Equal(o.base)
}

func (c *reverseCursor[T]) DistanceTo(other Cursor[T]) int {
	return -distance(c.base, other.(*reverseCursor[T]).base)
}
