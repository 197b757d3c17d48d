package quadratic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveLinear(t *testing.T) {
	q := New(0, 2, -4)
	r := q.Solve(0)
	require.Equal(t, OrderLinear, r.Order)
	require.Equal(t, 1, r.N)
	assert.InDelta(t, 2, r.V[0], 1e-5)
}

func TestSolveConstantZero(t *testing.T) {
	r := New(0, 0, 0).Solve(0)
	assert.Equal(t, OrderConstant, r.Order)
	assert.Equal(t, -1, r.N)
}

func TestSolveConstantNonzero(t *testing.T) {
	r := New(0, 0, 5).Solve(0)
	assert.Equal(t, OrderConstant, r.Order)
	assert.Equal(t, 0, r.N)
}

func TestSolveQuadraticTwoRoots(t *testing.T) {
	// x^2 - 3x + 2 = (x-1)(x-2)
	r := New(1, -3, 2).Solve(0)
	require.Equal(t, OrderQuadric, r.Order)
	require.Equal(t, 2, r.N)
	assert.InDelta(t, 1, r.V[0], 1e-5)
	assert.InDelta(t, 2, r.V[1], 1e-5)
}

func TestSolveQuadraticOneRoot(t *testing.T) {
	// x^2 - 2x + 1 = (x-1)^2
	r := New(1, -2, 1).Solve(0)
	require.Equal(t, OrderQuadric, r.Order)
	require.Equal(t, 1, r.N)
	assert.InDelta(t, 1, r.V[0], 1e-5)
}

func TestSolveQuadraticNoRoots(t *testing.T) {
	// x^2 + 1 never touches zero
	r := New(1, 0, 1).Solve(0)
	assert.Equal(t, OrderQuadric, r.Order)
	assert.Equal(t, 0, r.N)
}

func TestSolveLEQTwoRootsOpensUp(t *testing.T) {
	ivs := New(1, -3, 2).SolveLEQ(0)
	require.Len(t, ivs, 1)
	assert.InDelta(t, 1, ivs[0].Lo, 1e-5)
	assert.InDelta(t, 2, ivs[0].Hi, 1e-5)
}

func TestSolveLEQTwoRootsOpensDown(t *testing.T) {
	ivs := New(-1, 3, -2).SolveLEQ(0)
	require.Len(t, ivs, 2)
	assert.True(t, ivs[0].Hi < ivs[1].Lo)
}

func TestSolveLEQTangentOpensUpIsPoint(t *testing.T) {
	ivs := New(1, -2, 1).SolveLEQ(0)
	require.Len(t, ivs, 1)
	assert.Equal(t, ivs[0].Lo, ivs[0].Hi)
}

func TestSolveLEQTangentOpensDownIsWholeLine(t *testing.T) {
	ivs := New(-1, 2, -1).SolveLEQ(0)
	require.Len(t, ivs, 1)
	assert.True(t, ivs[0].Lo < -1e30)
	assert.True(t, ivs[0].Hi > 1e30)
}

func TestSolveLEQNoRootsOpensUpIsEmpty(t *testing.T) {
	ivs := New(1, 0, 1).SolveLEQ(0)
	assert.Len(t, ivs, 0)
}

func TestSolveLEQNoRootsOpensDownIsWholeLine(t *testing.T) {
	ivs := New(-1, 0, -1).SolveLEQ(0)
	require.Len(t, ivs, 1)
	assert.True(t, ivs[0].Lo < -1e30)
	assert.True(t, ivs[0].Hi > 1e30)
}

func TestEval(t *testing.T) {
	q := New(2, 3, -1)
	assert.InDelta(t, 2*4+3*2-1, q.Eval(2), 1e-5)
}
