package views

// DropView skips the first k elements of a view. Its cursors are the input's own cursors,
// so capability and end cursor are preserved.
type DropView[T any] struct {
	base View[T]
	k    int
}

// Drop returns v without its first k elements. Drop(v, 1) is the tail of v.
func Drop[T any](v View[T], k int) *DropView[T] {
	return &DropView[T]{base: v, k: max(k, 0)}
}

func (v *DropView[T]) Begin() Cursor[T] {
	c := v.base.Begin()
	card := v.base.Cardinality()
	if _, ok := c.(Seeker); ok && (card.IsFinite() || card.IsInfinite()) {
		n := v.k
		if size, ok := card.Size(); ok {
			n = min(n, size)
		}
		seek(c, n)
		return c
	}
	for i := 0; i < v.k && !c.Done(); i++ {
		c.Next()
	}
	return c
}

func (v *DropView[T]) End() (Cursor[T], bool) { return v.base.End() }

func (v *DropView[T]) Cardinality() Cardinality {
	return DropCardinality(v.base.Cardinality(), v.k)
}

func (v *DropView[T]) Capability() Capability { return v.base.Capability() }

// TakeView is the first k elements of a view. It bounds infinite views, keeps the input's
// capability, and can name its end whenever the input is infinite or of known size, so a
// prefix of an infinite series can be reversed or multiplied.
type TakeView[T any] struct {
	base View[T]
	k    int
}

// Take returns the first k elements of v, or all of them if v is shorter.
func Take[T any](v View[T], k int) *TakeView[T] {
	return &TakeView[T]{base: v, k: max(k, 0)}
}

func (v *TakeView[T]) Begin() Cursor[T] {
	return &takeCursor[T]{view: v, base: v.base.Begin()}
}

func (v *TakeView[T]) End() (Cursor[T], bool) {
	if v.base.Capability() < Forward {
		return nil, false
	}
	n := v.k
	card := v.base.Cardinality()
	if size, ok := card.Size(); ok {
		n = min(n, size)
	} else if !card.IsInfinite() {
		return nil, false
	}
	c := &takeCursor[T]{view: v, base: v.base.Begin()}
	c.Seek(n)
	return c, true
}

func (v *TakeView[T]) Cardinality() Cardinality {
	return TakeCardinality(v.base.Cardinality(), v.k)
}

func (v *TakeView[T]) Capability() Capability { return v.base.Capability() }

// takeCursor counts its position. The input is never advanced onto the element after the
// k-th, so a generator behind it is not called for an element nobody reads; at pos == k
// the input still sits on the last taken element.
type takeCursor[T any] struct {
	view *TakeView[T]
	base Cursor[T]
	pos  int
}

func (c *takeCursor[T]) Value() T { return c.base.Value() }

func (c *takeCursor[T]) Next() {
	c.pos++
	if c.pos < c.view.k {
		c.base.Next()
	}
}

func (c *takeCursor[T]) Prev() {
	if c.pos < c.view.k {
		prev(c.base)
	}
	c.pos--
}

func (c *takeCursor[T]) Seek(n int) {
	to := c.pos + n
	seek(c.base, c.basePos(to)-c.basePos(c.pos))
	c.pos = to
}

// basePos is the input position backing pos.
func (c *takeCursor[T]) basePos(pos int) int {
	if pos >= c.view.k {
		return max(c.view.k-1, 0)
	}
	return pos
}

func (c *takeCursor[T]) Done() bool { return c.pos >= c.view.k || c.base.Done() }

func (c *takeCursor[T]) Clone() Cursor[T] {
	return &takeCursor[T]{view: c.view, base: c.base.Clone(), pos: c.pos}
}

func (c *takeCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*takeCursor[T])
	return ok && o.view == c.view && o.pos == c.pos
}

func (c *takeCursor[T]) DistanceTo(other Cursor[T]) int {
	return other.(*takeCursor[T]).pos - c.pos
}

// TakeWhileView yields elements while pred accepts them.
type TakeWhileView[T any] struct {
	base View[T]
	pred func(T) bool
}

// TakeWhile returns the longest prefix of v whose elements all satisfy pred.
func TakeWhile[T any](v View[T], pred func(T) bool) *TakeWhileView[T] {
	return &TakeWhileView[T]{base: v, pred: pred}
}

func (v *TakeWhileView[T]) Begin() Cursor[T] {
	return &takeWhileCursor[T]{view: v, base: v.base.Begin()}
}

func (v *TakeWhileView[T]) End() (Cursor[T], bool) { return nil, false }

func (v *TakeWhileView[T]) Cardinality() Cardinality {
	return TakeWhileCardinality(v.base.Cardinality())
}

func (v *TakeWhileView[T]) Capability() Capability {
	return minCapability(v.base.Capability(), Forward)
}

type takeWhileCursor[T any] struct {
	view *TakeWhileView[T]
	base Cursor[T]
}

func (c *takeWhileCursor[T]) Value() T { return c.base.Value() }

func (c *takeWhileCursor[T]) Next() { c.base.Next() }

func (c *takeWhileCursor[T]) Done() bool {
	return c.base.Done() || !c.view.pred(c.base.Value())
}

func (c *takeWhileCursor[T]) Clone() Cursor[T] {
	return &takeWhileCursor[T]{view: c.view, base: c.base.Clone()}
}

func (c *takeWhileCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*takeWhileCursor[T])
	if !ok {
		return false
	}
	if c.Done() || o.Done() {
		return c.Done() == o.Done()
	}
	return c.base.Equal(o.base)
}
