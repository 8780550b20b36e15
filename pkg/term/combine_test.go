package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireSum asserts t is a Sum node and returns its children.
func requireSum(t *testing.T, tm Term) []Term {
	t.Helper()
	agg, ok := tm.(*AggNode)
	require.True(t, ok, "expected *AggNode, got %T", tm)
	require.Equal(t, OpSum, agg.Op)
	return agg.Terms
}

func TestAddTwoNonSums(t *testing.T) {
	l := Constant(12)
	r := Constant(27)
	children := requireSum(t, Add(l, r))
	require.Len(t, children, 2)

	lv, err := children[0].Reduce()
	require.NoError(t, err)
	assert.InDelta(t, 12, lv, tol)
	rv, err := children[1].Reduce()
	require.NoError(t, err)
	assert.InDelta(t, 27, rv, tol)
}

func TestAddFlattensSumAndSum(t *testing.T) {
	l := Sum(Constant(1), Constant(2))
	r := Sum(Constant(3), Constant(4))
	children := requireSum(t, Add(l, r))
	require.Len(t, children, 4)

	// No nested Sum-of-Sum.
	for _, c := range children {
		_, isConst := c.(*ConstNode)
		assert.True(t, isConst, "child %s should be a constant", c)
	}
	for i, want := range []float64{1, 2, 3, 4} {
		v, err := children[i].Reduce()
		require.NoError(t, err)
		assert.InDelta(t, want, v, tol)
	}
}

func TestAddAppendsNonSumToSum(t *testing.T) {
	l := Sum(Constant(1), Constant(2))
	r := Cosine(Constant(0))
	children := requireSum(t, Add(l, r))
	require.Len(t, children, 3)

	v, err := children[2].Reduce()
	require.NoError(t, err)
	assert.InDelta(t, 1, v, tol)
}

func TestAddPrependsNonSumToSum(t *testing.T) {
	l := Constant(9)
	r := Sum(Constant(1), Constant(2))
	children := requireSum(t, Add(l, r))
	require.Len(t, children, 3)

	// L stays before R's children.
	v, err := children[0].Reduce()
	require.NoError(t, err)
	assert.InDelta(t, 9, v, tol)
	v, err = children[1].Reduce()
	require.NoError(t, err)
	assert.InDelta(t, 1, v, tol)
}

func TestAddDoesNotMutateOperands(t *testing.T) {
	l := Sum(Constant(1), Constant(2))
	r := Sum(Constant(3), Constant(4))
	combined := Add(l, r)

	assert.Len(t, l.Terms, 2)
	assert.Len(t, r.Terms, 2)

	// Mutating the result leaves the operands intact: children were cloned.
	combined.(*AggNode).Terms[0].(*ConstNode).Val = 99
	lv, err := l.Reduce()
	require.NoError(t, err)
	assert.InDelta(t, 3, lv, tol)
}

func TestAddChainsStayFlat(t *testing.T) {
	s := Add(Add(Add(Constant(1), Constant(2)), Constant(3)), Constant(4))
	children := requireSum(t, s)
	assert.Len(t, children, 4)

	v, err := s.Reduce()
	require.NoError(t, err)
	assert.InDelta(t, 10, v, tol)
}

func TestAddOperandsStillUsable(t *testing.T) {
	a := Constant(36)
	b := Constant(64)
	c := Add(a, b)

	for _, tc := range []struct {
		t    Term
		want float64
	}{{a, 36}, {b, 64}, {c, 100}} {
		v, err := tc.t.Reduce()
		require.NoError(t, err)
		assert.InDelta(t, tc.want, v, tol)
	}
}
