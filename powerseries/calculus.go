package powerseries

import "lazyseq/views"

// Differentiate returns the formal derivative: coefficient k is (k+1)*s[k+1].
// The constant term is dropped, so a series of n terms yields n-1.
func Differentiate[T views.Number](s views.View[T]) *views.ZipWithView[T, T, T] {
	return views.ZipWith(func(k, c T) T { return k * c }, views.Iota[T](1), views.Drop(s, 1))
}

// Integrate returns the formal antiderivative with a zero constant term. Coefficients are
// divided by their new exponent, so the result is always float64.
func Integrate[T views.Number](s views.View[T]) *views.ConcatView[float64] {
	quotients := views.ZipWith(func(c, k T) float64 {
		return float64(c) / float64(k)
	}, s, views.Iota[T](1))
	return views.Concat[float64](views.Of(0.0), quotients)
}
