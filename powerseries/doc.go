/*
Package powerseries implements formal power series arithmetic on top of package views.

A power series is any [views.View] of numbers; the element at index k is the coefficient of
x^k. Every operation returns a new lazy view, so infinite series such as [views.Iota] or a
[views.Cycle] can be added, multiplied and differentiated, and only the terms actually read
are ever computed.

	s := views.Of(1, 1)
	sq, _ := powerseries.Multiply[int](s, s)
	str, _ := powerseries.ToString[int](sq) // "1 + 2x + x^2"

Infinite series must be bounded with [Partial] before they are rendered. The prefix keeps
the series' traversal capability, so it can also be rendered in reverse or multiplied.
*/
package powerseries
