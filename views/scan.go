package views

// ScanView yields the running fold of a view: seed first, then op applied cumulatively to
// each input element. It has one more element than its input.
type ScanView[T, R any] struct {
	base View[T]
	seed R
	op   func(R, T) R
}

// Scan returns the running fold of v starting from seed.
func Scan[T, R any](v View[T], seed R, op func(R, T) R) *ScanView[T, R] {
	return &ScanView[T, R]{base: v, seed: seed, op: op}
}

func (v *ScanView[T, R]) Begin() Cursor[R] {
	return &scanCursor[T, R]{view: v, base: v.base.Begin(), acc: v.seed}
}

func (v *ScanView[T, R]) End() (Cursor[R], bool) { return nil, false }

func (v *ScanView[T, R]) Cardinality() Cardinality {
	return ScanCardinality(v.base.Cardinality())
}

func (v *ScanView[T, R]) Capability() Capability {
	return minCapability(v.base.Capability(), Forward)
}

// scanCursor holds a valid fold value until done is set. The input being exhausted is
// not the end: the last fold value is still to be read.
type scanCursor[T, R any] struct {
	view *ScanView[T, R]
	base Cursor[T]
	acc  R
	done bool
}

func (c *scanCursor[T, R]) Value() R { return c.acc }

func (c *scanCursor[T, R]) Next() {
	if c.base.Done() {
		c.done = true
		return
	}
	c.acc = c.view.op(c.acc, c.base.Value())
	c.base.Next()
}

func (c *scanCursor[T, R]) Done() bool { return c.done }

func (c *scanCursor[T, R]) Clone() Cursor[R] {
	return &scanCursor[T, R]{view: c.view, base: c.base.Clone(), acc: c.acc, done: c.done}
}

func (c *scanCursor[T, R]) Equal(other Cursor[R]) bool {
	o, ok := other.(*scanCursor[T, R])
	return ok && c.done == o.done && c.base.Equal(o.base)
}
