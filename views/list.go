package views

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// ListView is a doubly linked list with head and tail sentinels. Its cursors are
// bidirectional but cannot measure distances, so it exercises the non random-access paths
// of the combinators.
type ListView[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

// NewList creates a list view holding values in order.
func NewList[T any](values ...T) *ListView[T] {
	l := &ListView[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	l.headSentinel.next = l.tailSentinel
	l.tailSentinel.prev = l.headSentinel
	for _, v := range values {
		n := &node[T]{val: v, prev: l.tailSentinel.prev, next: l.tailSentinel}
		l.tailSentinel.prev.next = n
		l.tailSentinel.prev = n
		l.size++
	}
	return l
}

func (l *ListView[T]) Begin() Cursor[T] {
	// head.next is the tail sentinel when the list is empty
	return &listCursor[T]{list: l, current: l.headSentinel.next}
}

func (l *ListView[T]) End() (Cursor[T], bool) {
	return &listCursor[T]{list: l, current: l.tailSentinel}, true
}

func (l *ListView[T]) Cardinality() Cardinality { return Finite(l.size) }

func (l *ListView[T]) Capability() Capability { return Bidirectional }

type listCursor[T any] struct {
	list    *ListView[T]
	current *node[T]
}

func (c *listCursor[T]) Value() (val T) {
	if c.current == c.list.headSentinel || c.current == c.list.tailSentinel {
		return val
	}
	return c.current.val
}

// Next stops at the tail sentinel so Prev can recover from it.
func (c *listCursor[T]) Next() {
	if c.current == c.list.tailSentinel {
		return
	}
	c.current = c.current.next
}

func (c *listCursor[T]) Prev() {
	if c.current == c.list.headSentinel {
		return
	}
	c.current = c.current.prev
}

func (c *listCursor[T]) Done() bool { return c.current == c.list.tailSentinel }

func (c *listCursor[T]) Clone() Cursor[T] {
	return &listCursor[T]{list: c.list, current: c.current}
}

func (c *listCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*listCursor[T])
	return ok && o.current == c.current
}
