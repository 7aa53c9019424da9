package views

// IterateView is the infinite sequence seed, gen(seed), gen(gen(seed)), ...
// Each element is derived from the previous one, so the view is SinglePass.
type IterateView[T any] struct {
	gen  func(T) T
	seed T
}

// Iterate returns the infinite view of repeated applications of gen to seed.
func Iterate[T any](gen func(T) T, seed T) *IterateView[T] {
	return &IterateView[T]{gen: gen, seed: seed}
}

func (v *IterateView[T]) Begin() Cursor[T] {
	return &iterateCursor[T]{gen: v.gen, val: v.seed, remaining: -1}
}

func (v *IterateView[T]) End() (Cursor[T], bool) { return nil, false }

func (v *IterateView[T]) Cardinality() Cardinality { return Infinite }

func (v *IterateView[T]) Capability() Capability { return SinglePass }

// IterateNView is the first n elements of Iterate(gen, seed). gen is not called past the
// last element.
type IterateNView[T any] struct {
	gen  func(T) T
	seed T
	n    int
}

// IterateN returns the first n elements of Iterate(gen, seed).
func IterateN[T any](gen func(T) T, seed T, n int) *IterateNView[T] {
	return &IterateNView[T]{gen: gen, seed: seed, n: max(n, 0)}
}

func (v *IterateNView[T]) Begin() Cursor[T] {
	return &iterateCursor[T]{gen: v.gen, val: v.seed, remaining: v.n}
}

func (v *IterateNView[T]) End() (Cursor[T], bool) { return nil, false }

func (v *IterateNView[T]) Cardinality() Cardinality { return Finite(v.n) }

func (v *IterateNView[T]) Capability() Capability { return SinglePass }

// iterateCursor caches the current value. remaining is -1 for an unbounded iteration.
type iterateCursor[T any] struct {
	gen       func(T) T
	val       T
	remaining int
	step      int
}

func (c *iterateCursor[T]) Value() T { return c.val }

func (c *iterateCursor[T]) Next() {
	c.step++
	if c.remaining < 0 {
		c.val = c.gen(c.val)
		return
	}
	c.remaining--
	if c.remaining > 0 {
		c.val = c.gen(c.val)
	}
}

func (c *iterateCursor[T]) Done() bool { return c.remaining == 0 }

func (c *iterateCursor[T]) Clone() Cursor[T] {
	cp := *c
	return &cp
}

func (c *iterateCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*iterateCursor[T])
	return ok && c.step == o.step && c.remaining == o.remaining
}
