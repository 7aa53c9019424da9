package powerseries

import (
	"fmt"
	"strings"

	"lazyseq/seqs"
	"lazyseq/views"
)

type term[T views.Number] struct {
	coeff T
	power int
}

func makeTerm[T views.Number](c T, p int) term[T] {
	return term[T]{coeff: c, power: p}
}

// ToString renders s as a polynomial in ascending powers, e.g. "1 - 2x + 3x^2".
// Zero terms are omitted and a coefficient of 1 is only written for the constant term.
// An all-zero or empty series renders as "". Infinite series are refused; bound them with
// Partial first.
func ToString[T views.Number](s views.View[T]) (string, error) {
	if s.Cardinality().IsInfinite() {
		return "", fmt.Errorf("powerseries: to string: %w", views.ErrInfinite)
	}
	return render[T](views.ZipWith(makeTerm[T], s, views.Iota(0))), nil
}

// ToStringReverse renders s in descending powers, e.g. "3x^2 - 2x + 1". s must be
// bidirectional and bounded.
func ToStringReverse[T views.Number](s views.View[T]) (string, error) {
	r, err := views.Reverse(s)
	if err != nil {
		return "", fmt.Errorf("powerseries: to string reverse: %w", err)
	}
	n, ok := views.Size(s)
	if !ok {
		return "", fmt.Errorf("powerseries: to string reverse: %w", views.ErrUnbounded)
	}
	powers := views.IterateN(func(p int) int { return p - 1 }, n-1, n)
	return render[T](views.ZipWith(makeTerm[T], r, powers)), nil
}

func render[T views.Number](terms views.View[term[T]]) string {
	var sb strings.Builder
	for t := range seqs.Filter(views.All(terms), nonZero[T]) {
		writeTerm(&sb, t)
	}
	return sb.String()
}

func nonZero[T views.Number](t term[T]) bool { return t.coeff != 0 }

func writeTerm[T views.Number](sb *strings.Builder, t term[T]) {
	// the first printed term carries a bare sign
	switch {
	case sb.Len() == 0 && t.coeff < 0:
		sb.WriteString("-")
	case sb.Len() > 0 && t.coeff < 0:
		sb.WriteString(" - ")
	case sb.Len() > 0:
		sb.WriteString(" + ")
	}
	c := t.coeff
	if c < 0 {
		c = -c
	}
	if c != 1 || t.power == 0 {
		sb.WriteString(fmt.Sprint(c))
	}
	sb.WriteString(xToPower(t.power))
}

func xToPower(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "x"
	default:
		return fmt.Sprintf("x^%d", n)
	}
}
