package powerseries

import (
	"lazyseq/seqs"
	"lazyseq/views"
)

// Partial returns the first n coefficients of s, which bounds an infinite series.
func Partial[T views.Number](s views.View[T], n int) *views.TakeView[T] {
	return views.Take(s, n)
}

type horner[T views.Number] struct {
	sum T
	pow T
}

// PartialSums returns the running sums s[0], s[0]+s[1]x, s[0]+s[1]x+s[2]x^2, ... at x.
// The result is as long as s.
func PartialSums[T views.Number](s views.View[T], x T) views.View[T] {
	acc := views.Scan(s, horner[T]{pow: 1}, func(h horner[T], c T) horner[T] {
		return horner[T]{sum: h.sum + c*h.pow, pow: h.pow * x}
	})
	// the seed is the empty sum
	return views.Drop[T](views.Transform[horner[T], T](acc, func(h horner[T]) T { return h.sum }), 1)
}

// Evaluate returns the sum of the first n terms of s at x, or 0 when n is 0.
// Coefficients past the n-th are never read.
func Evaluate[T views.Number](s views.View[T], x T, n int) T {
	sum, _ := seqs.Last(seqs.Take(views.All(PartialSums(s, x)), n))
	return sum
}
