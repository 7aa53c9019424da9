package views_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyseq/views"
)

func collect[T any](t *testing.T, v views.View[T]) []T {
	t.Helper()
	out, err := views.Collect(v)
	require.NoError(t, err)
	return out
}

func backward[T any](t *testing.T, v views.View[T]) []T {
	t.Helper()
	seq, err := views.Backward(v)
	require.NoError(t, err)
	return slices.Collect(seq)
}

func joined(t *testing.T, v views.View[string]) string {
	t.Helper()
	return strings.Join(collect(t, v), "")
}

func joinedBackward(t *testing.T, v views.View[string]) string {
	t.Helper()
	return strings.Join(backward(t, v), "")
}

func plus(a, b int) int { return a + b }

func concat(a, b string) string { return a + b }

func collatz(n int) int {
	if n%2 == 0 {
		return n / 2
	}
	return 3*n + 1
}

// forwardStates clones the cursor at every element reached from Begin.
func forwardStates[T any](v views.View[T]) []views.Cursor[T] {
	var states []views.Cursor[T]
	for c := v.Begin(); !c.Done(); c.Next() {
		states = append(states, c.Clone())
	}
	return states
}

// assertRetreatMirrorsAdvance walks back from End and checks that every position and value
// matches the one reached going forward.
func assertRetreatMirrorsAdvance[T any](t *testing.T, v views.View[T]) {
	t.Helper()
	states := forwardStates(v)
	end, ok := v.End()
	require.True(t, ok, "view has no end cursor")
	c, ok := end.(views.BidirectionalCursor[T])
	require.True(t, ok, "end cursor is not bidirectional")
	for i := len(states) - 1; i >= 0; i-- {
		c.Prev()
		assert.Truef(t, c.Equal(states[i]), "position %d", i)
		assert.Equalf(t, states[i].Value(), c.Value(), "value at %d", i)
	}
	assert.True(t, c.Equal(v.Begin()), "did not return to begin")
}

// assertDistances checks the distance from Begin to every element and to End.
func assertDistances[T any](t *testing.T, v views.View[T]) {
	t.Helper()
	states := forwardStates(v)
	begin := v.Begin()
	for i, s := range states {
		d, err := views.Distance(v, begin, s)
		require.NoError(t, err)
		assert.Equalf(t, i, d, "distance to %d", i)
	}
	end, ok := v.End()
	require.True(t, ok)
	d, err := views.Distance(v, begin, end)
	require.NoError(t, err)
	assert.Equal(t, len(states), d, "begin to end")
	d, err = views.Distance(v, end, begin)
	require.NoError(t, err)
	assert.Equal(t, -len(states), d, "end to begin")
}
