/*
Package views provides lazily-evaluated sequence views built on explicit cursors.

A [View] is an immutable descriptor over one or more sources. Elements are produced on
demand by a [Cursor] minted from [View.Begin]; nothing is materialized, so infinite sources
such as [Iota], [Cycle] and [Iterate] can be combined and partially consumed.

  - **Sources**: [FromSlice], [Of], [NewList], [Iota].
  - **Simple views**: [Cycle], [Iterate], [IterateN], [Scan], [Transform], [Drop], [Take],
    [TakeWhile], [ZipWith], [Concat], [Reverse].
  - **Combinators**: [MonoidalZip], [MonoidalZipFill] and [SeriesMultiply].
  - **Consumers**: [All], [Backward], [Collect], [Reduce], [At], [Size], [Distance].

# Cardinality

Every view reports a [Cardinality] (Finite, Unknown or Infinite) computed from its inputs'
cardinalities at construction time, never by iterating them.

# Capabilities

A view advertises a [Capability] level: SinglePass, Forward, Bidirectional or RandomAccess.
Cursors of Bidirectional views implement [BidirectionalCursor]; cursors of RandomAccess views
implement [RandomAccessCursor]. Constructors that need a capability check it once and return a
sentinel error (for example [ErrNotBidirectional]) instead of failing during iteration.

	a := views.Of(1, 2, 3, 4, 5)
	b := views.Of(1, 2, 3)
	product, err := views.SeriesMultiply[int](a, b)
	if err != nil {
		return err
	}
	coeffs, _ := views.Collect[int](product) // [1 4 10 16 22 22 15]

# Concurrency

Views are safe to share once built; each cursor belongs to a single consumer. Nothing in this
package starts goroutines or holds resources that need releasing.
*/
package views
