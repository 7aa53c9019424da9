package views

import "lazyseq/seqs"

// Number is the set of coefficient types the arithmetic views accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Capability is the traversal level a view supports. Levels are ordered:
// a RandomAccess view is also Bidirectional, Forward and SinglePass.
type Capability uint8

const (
	// SinglePass views can be traversed once; cursors cloned from them are not independent.
	SinglePass Capability = iota
	// Forward views can mint any number of independent cursors.
	Forward
	// Bidirectional views hand out cursors implementing BidirectionalCursor.
	Bidirectional
	// RandomAccess views hand out cursors implementing RandomAccessCursor.
	RandomAccess
)

func (c Capability) String() string {
	switch c {
	case SinglePass:
		return "single-pass"
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	default:
		return "unknown"
	}
}

// Cursor is a traversal position within a view.
//
// Value and Next must not be called once Done reports true; doing so is a precondition
// violation and may return zero values.
type Cursor[T any] interface {
	// Value returns the element at the current position.
	Value() T
	// Next advances the cursor by one element.
	Next()
	// Done reports whether the cursor is past the last element.
	Done() bool
	// Clone returns a copy of the cursor at the same position.
	Clone() Cursor[T]
	// Equal reports whether other denotes the same position of the same view.
	Equal(other Cursor[T]) bool
}

// BidirectionalCursor can also retreat. Retreating from an end cursor moves it onto the
// last element.
type BidirectionalCursor[T any] interface {
	Cursor[T]
	Prev()
}

// RandomAccessCursor can also measure the signed number of Next steps to another cursor
// of the same view.
type RandomAccessCursor[T any] interface {
	BidirectionalCursor[T]
	DistanceTo(other Cursor[T]) int
}

// Seeker is implemented by cursors that can move n positions in constant time.
type Seeker interface {
	Seek(n int)
}

// View is an immutable, lazily evaluated sequence.
type View[T any] interface {
	// Begin returns a cursor positioned at the first element.
	Begin() Cursor[T]
	// End returns a cursor positioned past the last element, if the view can name one.
	End() (Cursor[T], bool)
	Cardinality() Cardinality
	Capability() Capability
}

func minCapability(caps ...Capability) Capability {
	lowest := RandomAccess
	for _, c := range caps {
		lowest = min(lowest, c)
	}
	return lowest
}

func prev[T any](c Cursor[T]) {
	c.(BidirectionalCursor[T]).Prev()
}

func distance[T any](from, to Cursor[T]) int {
	return from.(RandomAccessCursor[T]).DistanceTo(to)
}

// seek moves c by n positions, in constant time when c is a Seeker.
// A negative n needs a bidirectional cursor.
func seek[T any](c Cursor[T], n int) {
	if s, ok := c.(Seeker); ok {
		s.Seek(n)
		return
	}
	for ; n > 0; n-- {
		c.Next()
	}
	for ; n < 0; n++ {
		prev(c)
	}
}

// sizeOf returns the number of elements of a bounded view, counting them when the
// cardinality does not say.
func sizeOf[T any](v View[T]) int {
	if n, ok := v.Cardinality().Size(); ok {
		return n
	}
	if v.Capability() >= RandomAccess {
		if end, ok := v.End(); ok {
			return distance(v.Begin(), end)
		}
	}
	return seqs.Count(All(v))
}

// largerMagnitude picks whichever of two same-signed distances is further from zero.
func largerMagnitude(d1, d2 int) int {
	if abs(d1) >= abs(d2) {
		return d1
	}
	return d2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
