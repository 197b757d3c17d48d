package trig

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/itohio/kine7/x/math/interval"
)

func TestSolveSinCosEqKnownRoot(t *testing.T) {
	// sin(psi) = 0 at psi = 0 and psi = pi.
	roots := SolveSinCosEq(1, 0, 0, 0)
	found0, foundPi := false, false
	for _, r := range roots {
		if math32.Abs(r) < 1e-4 {
			found0 = true
		}
		if math32.Abs(r-math32.Pi) < 1e-4 || math32.Abs(r+math32.Pi) < 1e-4 {
			foundPi = true
		}
	}
	assert.True(t, found0)
	assert.True(t, foundPi)
}

func TestSolveSinCosLEQFullCircle(t *testing.T) {
	// cos(psi) <= 2 always holds.
	s := SolveSinCosLEQ(0, 1, 0, 2)
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(math32.Pi))
}

func TestSolveSinCosLEQEmpty(t *testing.T) {
	// cos(psi) <= -2 never holds.
	s := SolveSinCosLEQ(0, 1, 0, -2)
	assert.True(t, s.IsEmpty())
}

func TestSolveSinCosGEQIsComplementOfLEQAtBoundary(t *testing.T) {
	leq := SolveSinCosLEQ(1, 0, 0, 0)  // sin(psi) <= 0
	geq := SolveSinCosGEQ(1, 0, 0, 0)  // sin(psi) >= 0
	assert.False(t, leq.IsEmpty())
	assert.False(t, geq.IsEmpty())
	// every angle is in one or the other (boundary shared at sin=0)
	for _, psi := range []float32{0.1, 1.5, -1.5, 3, -3} {
		assert.True(t, leq.Contains(psi) || geq.Contains(psi))
	}
}

func TestSolveTanTypeQuadrantTotality(t *testing.T) {
	// theta = atan2(sin(psi), cos(psi)) = psi, so with a full joint range
	// the union of the Neg and Pos branches should cover every psi.
	lhs := Coeffs{1, 0, 0}
	rhs := Coeffs{0, 1, 0}
	full := interval.NewAngularIntervalSet(interval.NewAngularInterval(-math32.Pi, math32.Pi))
	res := SolveTanType(lhs, rhs, full)
	union := res.Neg.Union(res.Pos)
	assert.True(t, union.Contains(0.5))
	assert.True(t, union.Contains(-0.5))
	assert.True(t, union.Contains(2.5))
	assert.True(t, union.Contains(-2.5))
}
