package srs

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/kine7/x/math/interval"
	"github.com/itohio/kine7/x/math/mat"
)

func defaultSolver(t *testing.T) *Kine7 {
	t.Helper()
	g := Default()
	k, err := NewKine7(g.L1, g.L2, g.L3, g.D, g.JointLimits[:], g.SingularBound)
	require.NoError(t, err)
	return k
}

func TestNewKine7RejectsWrongJointLimitCount(t *testing.T) {
	g := Default()
	_, err := NewKine7(g.L1, g.L2, g.L3, g.D, g.JointLimits[:3], g.SingularBound)
	assert.ErrorIs(t, err, ErrJointLimitCount)
}

func TestForwardZeroPoseIsFinite(t *testing.T) {
	k := defaultSolver(t)
	m := k.Forward([7]float32{})
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.False(t, math32.IsNaN(m[i][j]))
		}
	}
}

func TestInverseRoundTripZeroPose(t *testing.T) {
	k := defaultSolver(t)
	q := [7]float32{}
	t07 := k.Forward(q)

	motions := k.Inverse(t07)
	require.NotEmpty(t, motions)

	sh := NewSingularityHandler(k.JointLimits())
	sh.UpdateCurrentJoints(q)

	found := false
	for _, m := range motions {
		rng := m.ArmAngleRange()
		if rng.IsEmpty() {
			continue
		}
		for _, arc := range rng {
			mid := (arc.Lo + arc.Hi) / 2
			for _, js := range m.GetJoints(mid, sh) {
				fk := k.Forward(js)
				if closeTransform(fk, t07, 1e-2) {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "expected at least one self-motion branch to reproduce the zero pose")
}

func TestInverseRoundTripNonSingularPose(t *testing.T) {
	k := defaultSolver(t)
	q := [7]float32{0.3, 0.4, -0.2, 1.1, 0.1, 0.5, -0.3}
	t07 := k.Forward(q)

	motions := k.Inverse(t07)
	require.NotEmpty(t, motions)

	sh := NewSingularityHandler(k.JointLimits())
	sh.UpdateCurrentJoints(q)

	found := false
	for _, m := range motions {
		rng := m.ArmAngleRange()
		if rng.IsEmpty() {
			continue
		}
		for _, arc := range rng {
			mid := (arc.Lo + arc.Hi) / 2
			for _, js := range m.GetJoints(mid, sh) {
				fk := k.Forward(js)
				if closeTransform(fk, t07, 1e-2) {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "expected at least one self-motion branch to reproduce the non-singular pose")
}

func TestInverseUnreachablePoseIsEmpty(t *testing.T) {
	k := defaultSolver(t)
	// place the tip far beyond any possible reach of the arm.
	t07 := k.Forward([7]float32{})
	t07[0][3] = 10000
	t07[1][3] = 10000
	t07[2][3] = 10000

	motions := k.Inverse(t07)
	assert.Empty(t, motions)
}

func TestReferencePlaneOnShoulderAxisIsZero(t *testing.T) {
	t1, t2 := ReferencePlane(0, 0, 0, 50, 55, 30, 4.5)
	assert.Equal(t, float32(0), t1)
	_ = t2
}

func TestSingularityHandlerSplitsProportionally(t *testing.T) {
	lims := [7]interval.AngularInterval{}
	for i := range lims {
		lims[i] = interval.NewAngularInterval(-math32.Pi, math32.Pi)
	}
	sh := NewSingularityHandler(lims)
	sh.UpdateCurrentJoints([7]float32{0, 0, 0, 0, 0, 0, 0})
	t1, t3 := sh.GetUpperJoints(1.0)
	assert.InDelta(t, 1.0, t1+t3, 1e-4)
	// both joints sit at 0 with equal slack pi to their upper limit.
	assert.InDelta(t, 0.5, t1, 1e-4)
}

func closeTransform(a, b mat.Matrix4x4, tol float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d := a[i][j] - b[i][j]
			if d < -tol || d > tol {
				return false
			}
		}
	}
	return true
}
