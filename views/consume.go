package views

import (
	"fmt"
	"iter"
	"slices"

	"lazyseq/seqs"
)

// All returns an iter.Seq over the view, from a fresh cursor on every iteration.
// Iterating an infinite view never ends unless the consumer stops.
func All[T any](v View[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := v.Begin(); !c.Done(); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Backward returns an iter.Seq reading the view from its last element to its first.
func Backward[T any](v View[T]) (iter.Seq[T], error) {
	r, err := Reverse(v)
	if err != nil {
		return nil, fmt.Errorf("backward: %w", err)
	}
	return All[T](r), nil
}

// Collect materializes a view. Infinite views are refused; an Unknown view is collected
// and the caller is trusted that it ends.
func Collect[T any](v View[T]) ([]T, error) {
	if v.Cardinality().IsInfinite() {
		return nil, fmt.Errorf("collect: %w", ErrInfinite)
	}
	return slices.Collect(All(v)), nil
}

// Reduce folds the elements of a finite view into a single value.
func Reduce[T, R any](v View[T], initial R, reducer func(R, T) R) R {
	return seqs.Reduce(All(v), initial, reducer)
}

// At returns the element at index i, stepping a fresh cursor to it.
func At[T any](v View[T], i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, fmt.Errorf("at %d: %w", i, ErrIndexOutOfBounds)
	}
	if n, ok := v.Cardinality().Size(); ok && i >= n {
		return zero, fmt.Errorf("at %d of %d: %w", i, n, ErrIndexOutOfBounds)
	}
	c := v.Begin()
	for ; i > 0 && !c.Done(); i-- {
		c.Next()
	}
	if c.Done() {
		return zero, fmt.Errorf("at: %w", ErrIndexOutOfBounds)
	}
	return c.Value(), nil
}

// Size returns the number of elements of a view whose length is known or that can name
// its end (in which case the elements are counted).
func Size[T any](v View[T]) (int, bool) {
	if n, ok := v.Cardinality().Size(); ok {
		return n, true
	}
	if v.Cardinality().IsInfinite() || v.Capability() < Forward {
		return 0, false
	}
	if _, ok := v.End(); !ok {
		return 0, false
	}
	return sizeOf(v), true
}

// Distance returns the signed number of Next steps from one cursor of v to another.
func Distance[T any](v View[T], from, to Cursor[T]) (int, error) {
	if c := v.Capability(); c < RandomAccess {
		return 0, fmt.Errorf("distance: view is %s: %w", c, ErrNotRandomAccess)
	}
	return distance(from, to), nil
}
