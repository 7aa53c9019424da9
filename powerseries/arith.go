package powerseries

import (
	"errors"
	"fmt"

	"lazyseq/views"
)

// Negate flips the sign of every coefficient.
func Negate[T views.Number](s views.View[T]) *views.TransformView[T, T] {
	return views.Transform(s, func(c T) T { return -c })
}

// Scale multiplies every coefficient by k.
func Scale[T views.Number](s views.View[T], k T) *views.TransformView[T, T] {
	return views.Transform(s, func(c T) T { return c * k })
}

// Add sums two series term by term. The result is as long as the longer input.
func Add[T views.Number](s1, s2 views.View[T]) *views.MonoidalZipView[T] {
	return views.MonoidalZip(func(a, b T) T { return a + b }, s1, s2)
}

// Subtract returns s1 - s2. Terms of s2 beyond the end of s1 are negated.
func Subtract[T views.Number](s1, s2 views.View[T]) *views.MonoidalZipView[T] {
	return views.MonoidalZipFill(func(a, b T) T { return a - b }, s1, s2, 0)
}

// Multiply returns the Cauchy product of two series. Both must be bidirectional.
func Multiply[T views.Number](s1, s2 views.View[T]) (*views.SeriesMultView[T], error) {
	p, err := views.SeriesMultiply(s1, s2)
	if err != nil {
		return nil, fmt.Errorf("powerseries: multiply: %w", err)
	}
	return p, nil
}

// ErrNegativePower is returned by Pow for an exponent below zero.
var ErrNegativePower = errors.New("powerseries: negative power")

// Pow returns s multiplied by itself k times. Pow(s, 0) is the constant 1. For k >= 1, s
// must be bidirectional, as for Multiply.
func Pow[T views.Number](s views.View[T], k int) (views.View[T], error) {
	if s == nil {
		return nil, fmt.Errorf("powerseries: pow: %w", views.ErrNilView)
	}
	if k < 0 {
		return nil, fmt.Errorf("powerseries: pow %d: %w", k, ErrNegativePower)
	}
	if k == 0 {
		return views.Of[T](1), nil
	}
	if c := s.Capability(); c < views.Bidirectional {
		return nil, fmt.Errorf("powerseries: pow: series is %s: %w", c, views.ErrNotBidirectional)
	}
	acc := s
	for i := 1; i < k; i++ {
		p, err := Multiply(acc, s)
		if err != nil {
			return nil, fmt.Errorf("powerseries: pow: %w", err)
		}
		acc = p
	}
	return acc, nil
}
