package views

// IotaView counts up from start forever: start, start+1, start+2, ...
type IotaView[T Number] struct {
	start T
}

// Iota returns the infinite view start, start+1, start+2, ...
func Iota[T Number](start T) *IotaView[T] {
	return &IotaView[T]{start: start}
}

func (v *IotaView[T]) Begin() Cursor[T] { return &iotaCursor[T]{view: v} }

func (v *IotaView[T]) End() (Cursor[T], bool) { return nil, false }

func (v *IotaView[T]) Cardinality() Cardinality { return Infinite }

func (v *IotaView[T]) Capability() Capability { return RandomAccess }

type iotaCursor[T Number] struct {
	view *IotaView[T]
	i    int
}

func (c *iotaCursor[T]) Value() T { return c.view.start + T(c.i) }

func (c *iotaCursor[T]) Next() { c.i++ }

func (c *iotaCursor[T]) Prev() { c.i-- }

func (c *iotaCursor[T]) Seek(n int) { c.i += n }

func (c *iotaCursor[T]) Done() bool { return false }

func (c *iotaCursor[T]) Clone() Cursor[T] {
	return &iotaCursor[T]{view: c.view, i: c.i}
}

func (c *iotaCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*iotaCursor[T])
	return ok && o.view == c.view && o.i == c.i
}

func (c *iotaCursor[T]) DistanceTo(other Cursor[T]) int {
	return other.(*iotaCursor[T]).i - c.i
}
