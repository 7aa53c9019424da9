package views

import "fmt"

// CycleView repeats a finite, non-empty view forever.
type CycleView[T any] struct {
	base View[T]
}

// Cycle returns an infinite view repeating v. v must be multi-pass, non-empty and not
// infinite. The cycle is Bidirectional when v is bidirectional and bounded, so that
// retreating from the first element can wrap to the last.
func Cycle[T any](v View[T]) (*CycleView[T], error) {
	if v == nil {
		return nil, fmt.Errorf("cycle: %w", ErrNilView)
	}
	if v.Capability() < Forward {
		return nil, fmt.Errorf("cycle: %w", ErrNotMultiPass)
	}
	if v.Cardinality().IsInfinite() {
		return nil, fmt.Errorf("cycle: %w", ErrInfinite)
	}
	if v.Begin().Done() {
		return nil, fmt.Errorf("cycle: %w", ErrEmptyCycle)
	}
	return &CycleView[T]{base: v}, nil
}

func (v *CycleView[T]) Begin() Cursor[T] {
	return &cycleCursor[T]{view: v, base: v.base.Begin()}
}

func (v *CycleView[T]) End() (Cursor[T], bool) { return nil, false }

func (v *CycleView[T]) Cardinality() Cardinality { return Infinite }

func (v *CycleView[T]) Capability() Capability {
	if v.base.Capability() >= Bidirectional {
		if _, ok := v.base.End(); ok {
			return Bidirectional
		}
	}
	return Forward
}

type cycleCursor[T any] struct {
	view *CycleView[T]
	base Cursor[T]
}

func (c *cycleCursor[T]) Value() T { return c.base.Value() }

func (c *cycleCursor[T]) Next() {
	c.base.Next()
	if c.base.Done() {
		c.base = c.view.base.Begin()
	}
}

func (c *cycleCursor[T]) Prev() {
	if c.base.Equal(c.view.base.Begin()) {
		c.base, _ = c.view.base.End()
	}
	prev(c.base)
}

func (c *cycleCursor[T]) Done() bool { return false }

func (c *cycleCursor[T]) Clone() Cursor[T] {
	return &cycleCursor[T]{view: c.view, base: c.base.Clone()}
}

// Equal compares positions within one lap.
func (c *cycleCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*cycleCursor[T])
	return ok && c.base.Equal(o.base)
}
