/*
Package seqs provides small combinators over Go iterators (iter.Seq).

The views package hands its elements to these helpers through views.All, so anything
that consumes a lazy view element by element is written once here:

  - **Transformations**: [Map], [Filter].
  - **Folds**: [Reduce], [Count], [Last].
  - **Flow Control**: [Take].

# Laziness

Every helper pulls from its input only as far as its consumer asks. [Take] stops its input
right after the n-th element, which is what makes an infinite view safe to consume:

	first, _ := seqs.Last(seqs.Take(views.All(views.Iota(1)), 3)) // 3
*/
package seqs
