package views

import "strconv"

type cardinalityKind uint8

const (
	finiteKind cardinalityKind = iota
	unknownKind
	infiniteKind
)

// Cardinality classifies the length of a view: exactly n, unknown but finite, or infinite.
// The zero value is Finite(0).
type Cardinality struct {
	kind cardinalityKind
	n    int
}

var (
	// Infinite is the cardinality of a view that never ends.
	Infinite = Cardinality{kind: infiniteKind}
	// Unknown is the cardinality of a finite view whose length is not known up front.
	Unknown = Cardinality{kind: unknownKind}
)

// Finite returns the cardinality of a view with exactly n elements.
// A negative n is treated as 0.
func Finite(n int) Cardinality {
	if n < 0 {
		n = 0
	}
	return Cardinality{kind: finiteKind, n: n}
}

func (c Cardinality) IsInfinite() bool { return c.kind == infiniteKind }

func (c Cardinality) IsUnknown() bool { return c.kind == unknownKind }

// IsFinite reports whether the exact length is known.
func (c Cardinality) IsFinite() bool { return c.kind == finiteKind }

// Size returns the exact length, if known.
func (c Cardinality) Size() (int, bool) {
	if c.kind != finiteKind {
		return 0, false
	}
	return c.n, true
}

func (c Cardinality) String() string {
	switch c.kind {
	case infiniteKind:
		return "infinite"
	case unknownKind:
		return "unknown"
	default:
		return strconv.Itoa(c.n)
	}
}

// ZipCardinality is the length of a monoidal zip: the longer input.
func ZipCardinality(c1, c2 Cardinality) Cardinality {
	switch {
	case c1.IsInfinite() || c2.IsInfinite():
		return Infinite
	case c1.IsUnknown() || c2.IsUnknown():
		return Unknown
	default:
		return Finite(max(c1.n, c2.n))
	}
}

// ConvolutionCardinality is the length of a series product: n+m-1, or 0 when either input
// is empty. An empty input wins over an infinite one.
func ConvolutionCardinality(c1, c2 Cardinality) Cardinality {
	switch {
	case c1.IsFinite() && c1.n == 0, c2.IsFinite() && c2.n == 0:
		return Finite(0)
	case c1.IsInfinite() || c2.IsInfinite():
		return Infinite
	case c1.IsUnknown() || c2.IsUnknown():
		return Unknown
	default:
		return Finite(c1.n + c2.n - 1)
	}
}

// ShortestCardinality is the length of a zip that stops at the shorter input.
func ShortestCardinality(c1, c2 Cardinality) Cardinality {
	switch {
	case c1.IsInfinite() && c2.IsInfinite():
		return Infinite
	case c1.IsInfinite():
		return c2
	case c2.IsInfinite():
		return c1
	case c1.IsFinite() && c2.IsFinite():
		return Finite(min(c1.n, c2.n))
	case c1.IsFinite() && c1.n == 0, c2.IsFinite() && c2.n == 0:
		return Finite(0)
	default:
		return Unknown
	}
}

// ConcatCardinality is the length of one input followed by the other.
func ConcatCardinality(c1, c2 Cardinality) Cardinality {
	switch {
	case c1.IsInfinite() || c2.IsInfinite():
		return Infinite
	case c1.IsUnknown() || c2.IsUnknown():
		return Unknown
	default:
		return Finite(c1.n + c2.n)
	}
}

// ScanCardinality is the length of a running fold: one more than the input.
func ScanCardinality(c Cardinality) Cardinality {
	if c.IsFinite() {
		return Finite(c.n + 1)
	}
	return c
}

// TakeCardinality is the length of the first k elements of a view.
func TakeCardinality(c Cardinality, k int) Cardinality {
	switch {
	case c.IsInfinite():
		return Finite(k)
	case c.IsUnknown():
		if k <= 0 {
			return Finite(0)
		}
		return Unknown
	default:
		return Finite(min(c.n, k))
	}
}

// DropCardinality is the length of a view without its first k elements.
func DropCardinality(c Cardinality, k int) Cardinality {
	if c.IsFinite() {
		return Finite(c.n - max(k, 0))
	}
	return c
}

// TakeWhileCardinality is the length of the prefix accepted by a predicate.
func TakeWhileCardinality(c Cardinality) Cardinality {
	if c.IsFinite() && c.n == 0 {
		return c
	}
	return Unknown
}
