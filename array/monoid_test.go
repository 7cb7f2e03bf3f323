package array_test

import (
	"testing"

	"github.com/npillmayer/grow/array"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func arrayOf(t *testing.T, values ...int) *array.Array[int] {
	t.Helper()
	a, err := array.New[int]()
	require.NoError(t, err)
	a.FromSlice(values)
	return a
}

func TestMonoidIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grow.array")
	defer teardown()
	//
	a := arrayOf(t, 1, 2, 3)

	right := a.Copy()
	right.Concat(array.Empty[int]())
	require.True(t, right.Equal(a), "a • empty must equal a")

	left := array.Empty[int]()
	left.Concat(a)
	require.True(t, left.Equal(a), "empty • a must equal a")
}

func TestMonoidAssociativity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grow.array")
	defer teardown()
	//
	a := arrayOf(t, 1, 2)
	b := arrayOf(t, 3)
	c := arrayOf(t, 4, 5)

	// (a • b) • c
	lhs := a.Copy()
	lhs.Concat(b)
	lhs.Concat(c)

	// a • (b • c)
	bc := b.Copy()
	bc.Concat(c)
	rhs := a.Copy()
	rhs.Concat(bc)

	require.Equal(t, lhs.Slice(), rhs.Slice(), "concatenation must be associative")
	require.True(t, lhs.Equal(rhs))

	// the operands are untouched
	require.Equal(t, []int{1, 2}, a.Slice())
	require.Equal(t, []int{3}, b.Slice())
	require.Equal(t, []int{4, 5}, c.Slice())
}

func TestMonoidAssociativityWithEmptyOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grow.array")
	defer teardown()
	//
	a := arrayOf(t, 7)
	e := array.Empty[int]()

	lhs := a.Copy()
	lhs.Concat(e)
	lhs.Concat(a)

	ea := e.Copy()
	ea.Concat(a)
	rhs := a.Copy()
	rhs.Concat(ea)

	require.Equal(t, lhs.Slice(), rhs.Slice())
	require.Equal(t, []int{7, 7}, lhs.Slice())
}
