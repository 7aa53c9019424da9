package powerseries_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"lazyseq/powerseries"
	"lazyseq/views"
)

type PowerSeriesSuite struct {
	suite.Suite

	r1 views.View[int] // 1 + 2x + 3x^2 + 4x^3 + 5x^4
	r2 views.View[int] // 1 + 2x + 3x^2
}

func (s *PowerSeriesSuite) SetupTest() {
	s.r1 = views.Of(1, 2, 3, 4, 5)
	s.r2 = views.Of(1, 2, 3)
}

func (s *PowerSeriesSuite) render(v views.View[int]) string {
	str, err := powerseries.ToString(v)
	require.NoError(s.T(), err)
	return str
}

func (s *PowerSeriesSuite) renderReverse(v views.View[int]) string {
	str, err := powerseries.ToStringReverse(v)
	require.NoError(s.T(), err)
	return str
}

func (s *PowerSeriesSuite) TestAdd() {
	s.Equal("2 + 4x + 6x^2 + 8x^3 + 10x^4", s.render(powerseries.Add(s.r1, s.r1)))
	s.Equal("2 + 4x + 6x^2 + 4x^3 + 5x^4", s.render(powerseries.Add(s.r1, s.r2)))
	s.Equal("2 + 4x + 6x^2 + 4x^3 + 5x^4", s.render(powerseries.Add(s.r2, s.r1)))
}

func (s *PowerSeriesSuite) TestNegate() {
	s.Equal("-1 - 2x - 3x^2 - 4x^3 - 5x^4", s.render(powerseries.Negate(s.r1)))
	s.Equal("5x^4 + 4x^3 + 3x^2 + 2x + 1", s.renderReverse(powerseries.Negate[int](powerseries.Negate(s.r1))))
}

func (s *PowerSeriesSuite) TestSubtract() {
	shifted := views.Of(0, 1, 2, 3, 4)
	s.Equal("1 + x + x^2 + x^3 + x^4", s.render(powerseries.Subtract(s.r1, shifted)))
	s.Equal("", s.render(powerseries.Subtract(s.r1, s.r1)))

	// the tail of a longer subtrahend is negated, not passed through
	s.Equal("-4x^3 - 5x^4", s.render(powerseries.Subtract(s.r2, s.r1)))
	s.Equal("4x^3 + 5x^4", s.render(powerseries.Subtract(s.r1, s.r2)))
}

func (s *PowerSeriesSuite) TestMultiply() {
	p, err := powerseries.Multiply(s.r1, s.r1)
	s.Require().NoError(err)
	s.Equal("1 + 4x + 10x^2 + 20x^3 + 35x^4 + 44x^5 + 46x^6 + 40x^7 + 25x^8", s.render(p))

	p, err = powerseries.Multiply(s.r1, s.r2)
	s.Require().NoError(err)
	s.Equal("1 + 4x + 10x^2 + 16x^3 + 22x^4 + 22x^5 + 15x^6", s.render(p))

	p, err = powerseries.Multiply(s.r2, s.r1)
	s.Require().NoError(err)
	s.Equal("1 + 4x + 10x^2 + 16x^3 + 22x^4 + 22x^5 + 15x^6", s.render(p))
}

func (s *PowerSeriesSuite) TestMultiplyReverse() {
	binomial := views.Of(1, 1)
	p, err := powerseries.Multiply[int](binomial, binomial)
	s.Require().NoError(err)
	s.Equal("x^2 + 2x + 1", s.renderReverse(p))
}

func (s *PowerSeriesSuite) TestMultiplyRequiresBidirectional() {
	_, err := powerseries.Multiply[int](views.Iterate(func(n int) int { return n * 2 }, 1), s.r1)
	s.ErrorIs(err, views.ErrNotBidirectional)
}

func (s *PowerSeriesSuite) TestPow() {
	binomial := views.Of(1, 1)

	p, err := powerseries.Pow[int](binomial, 3)
	s.Require().NoError(err)
	s.Equal("1 + 3x + 3x^2 + x^3", s.render(p))

	p, err = powerseries.Pow[int](binomial, 0)
	s.Require().NoError(err)
	s.Equal("1", s.render(p))

	_, err = powerseries.Pow[int](binomial, -1)
	s.ErrorIs(err, powerseries.ErrNegativePower)

	// every positive power needs a bidirectional series, the first one included
	doubling := views.IterateN(func(n int) int { return n * 2 }, 1, 3)
	for _, k := range []int{1, 2} {
		_, err = powerseries.Pow[int](doubling, k)
		s.ErrorIs(err, views.ErrNotBidirectional, "k = %d", k)
	}
	p, err = powerseries.Pow[int](doubling, 0)
	s.Require().NoError(err)
	s.Equal("1", s.render(p))
}

func (s *PowerSeriesSuite) TestDifferentiate() {
	s.Equal("2 - 6x", s.render(powerseries.Differentiate(views.Of(1, 2, -3))))
	s.Equal("2 + 6x + 12x^2 + 20x^3", s.render(powerseries.Differentiate(s.r1)))
	s.Equal("", s.render(powerseries.Differentiate(views.Of(7))))
}

func (s *PowerSeriesSuite) TestIntegrate() {
	coeffs, err := views.Collect[float64](powerseries.Integrate(views.Of(1, 1, 1)))
	s.Require().NoError(err)
	s.InDeltaSlice([]float64{0, 1, 0.5, 1.0 / 3}, coeffs, 1e-12)

	// integration undoes differentiation up to the constant term
	back, err := views.Collect[float64](powerseries.Integrate[int](powerseries.Differentiate(s.r1)))
	s.Require().NoError(err)
	s.Equal([]float64{0, 2, 3, 4, 5}, back)
}

func (s *PowerSeriesSuite) TestScale() {
	s.Equal("3 + 6x + 9x^2", s.render(powerseries.Scale(s.r2, 3)))
	s.Equal("", s.render(powerseries.Scale(s.r2, 0)))
}

func (s *PowerSeriesSuite) TestInfinite() {
	naturals := views.Iota(1)

	_, err := powerseries.ToString[int](naturals)
	s.ErrorIs(err, views.ErrInfinite)

	s.Equal("2 + 4x + 6x^2", s.render(powerseries.Partial[int](powerseries.Add[int](naturals, naturals), 3)))
	s.Equal("2 + 4x + 6x^2 + 4x^3", s.render(powerseries.Partial[int](powerseries.Add[int](naturals, s.r2), 4)))

	p, err := powerseries.Multiply[int](naturals, views.Of(1, -1))
	s.Require().NoError(err)
	s.Equal("1 + x + x^2 + x^3", s.render(powerseries.Partial[int](p, 4)))

	_, err = powerseries.ToStringReverse[int](naturals)
	s.ErrorIs(err, views.ErrUnbounded)
}

func (s *PowerSeriesSuite) TestPartialComposes() {
	naturals := views.Iota(1)
	s.Equal("3x^2 + 2x + 1", s.renderReverse(powerseries.Partial[int](naturals, 3)))

	p, err := powerseries.Multiply[int](powerseries.Partial[int](naturals, 3), views.Of(1, 1))
	s.Require().NoError(err)
	s.Equal("1 + 3x + 5x^2 + 3x^3", s.render(p))
	s.Equal("3x^3 + 5x^2 + 3x + 1", s.renderReverse(p))
}

func (s *PowerSeriesSuite) TestCalculusComposes() {
	d := powerseries.Differentiate(views.Of(1, 2, 3))
	p, err := powerseries.Multiply[int](d, views.Of(1, 1))
	s.Require().NoError(err)
	s.Equal("2 + 8x + 6x^2", s.render(p))

	s.Equal("20x^3 + 12x^2 + 6x + 2", s.renderReverse(powerseries.Differentiate(s.r1)))
	s.Equal("6x + 2", s.renderReverse(powerseries.Differentiate(views.NewList(1, 2, 3))))

	i := powerseries.Integrate(views.Of(1, 1))
	q, err := powerseries.Multiply[float64](i, views.Of(1.0))
	s.Require().NoError(err)
	str, err := powerseries.ToString[float64](q)
	s.Require().NoError(err)
	s.Equal("x + 0.5x^2", str)

	str, err = powerseries.ToStringReverse[float64](i)
	s.Require().NoError(err)
	s.Equal("0.5x^2 + x", str)
}

func (s *PowerSeriesSuite) TestEvaluate() {
	// 1 + 2*2 + 3*4
	s.Equal(17, powerseries.Evaluate(s.r2, 2, 3))
	s.Equal(5, powerseries.Evaluate(s.r2, 2, 2))
	s.Equal(17, powerseries.Evaluate(s.r2, 2, 10))
	s.Equal(0, powerseries.Evaluate(s.r2, 2, 0))

	sums, err := views.Collect(powerseries.PartialSums(s.r2, 1))
	s.Require().NoError(err)
	s.Equal([]int{1, 3, 6}, sums)

	// geometric series 1 + x + x^2 + ... at x = 1/2 approaches 2
	ones, err := views.Cycle[float64](views.Of(1.0))
	s.Require().NoError(err)
	s.InDelta(2.0, powerseries.Evaluate[float64](ones, 0.5, 60), 1e-12)
}

func TestPowerSeriesSuite(t *testing.T) {
	suite.Run(t, new(PowerSeriesSuite))
}

func TestToString(t *testing.T) {
	tests := []struct {
		name          string
		coeffs        []int
		want, reverse string
	}{
		{"Positive", []int{1, 2, 3}, "1 + 2x + 3x^2", "3x^2 + 2x + 1"},
		{"NegativeConstant", []int{-1, 1, 3}, "-1 + x + 3x^2", "3x^2 + x - 1"},
		{"ZeroConstant", []int{0, 2, 3}, "2x + 3x^2", "3x^2 + 2x"},
		{"NegativeLeading", []int{0, -2, 3}, "-2x + 3x^2", "3x^2 - 2x"},
		{"ZeroMiddle", []int{1, 0, 3}, "1 + 3x^2", "3x^2 + 1"},
		{"NegativeLast", []int{1, 0, -3}, "1 - 3x^2", "-3x^2 + 1"},
		{"UnitConstant", []int{1}, "1", "1"},
		{"MinusOne", []int{-1, -1}, "-1 - x", "-x - 1"},
		{"AllZero", []int{0, 0}, "", ""},
		{"Empty", nil, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := powerseries.ToString[int](views.FromSlice(tt.coeffs))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			got, err = powerseries.ToStringReverse[int](views.NewList(tt.coeffs...))
			require.NoError(t, err)
			require.Equal(t, tt.reverse, got)
		})
	}
}

func TestToString_Floats(t *testing.T) {
	got, err := powerseries.ToString[float64](powerseries.Integrate(views.Of(2, 2)))
	require.NoError(t, err)
	require.Equal(t, "2x + x^2", got)

	got, err = powerseries.ToString[float64](views.Of(0.5, -1.5))
	require.NoError(t, err)
	require.Equal(t, "0.5 - 1.5x", got)
}
