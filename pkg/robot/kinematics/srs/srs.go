// Package srs implements closed-form inverse kinematics for a 7-DoF
// spherical-revolute-spherical (S-R-S) anthropomorphic arm: shoulder
// (3 intersecting axes), elbow (1 axis), wrist (3 intersecting axes).
// The redundant degree of freedom is parameterized by the arm angle psi,
// the rotation of the elbow about the shoulder-to-wrist line; every other
// joint becomes a sin/cos-linear function of psi once an elbow angle
// theta4 is chosen, via the Rodrigues-parameterized rotation coefficient
// matrices built in Inverse.
//
// Grounded in full on original_source/CyberSystem/kine7.hpp, with the
// teacher's pkg/robot/kinematics/dh package supplying the forward
// Denavit-Hartenberg evaluator this analytical solver checks itself
// against.
package srs

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/itohio/kine7/pkg/logger"
	"github.com/itohio/kine7/pkg/robot/kinematics/dh"
	"github.com/itohio/kine7/x/math/interval"
	"github.com/itohio/kine7/x/math/mat"
	"github.com/itohio/kine7/x/math/trig"
	"github.com/itohio/kine7/x/math/vec"
)

// matrixEps rounds the Rodrigues coefficient matrices before they feed the
// trigonometric branch solvers, distinct from a solver's own singularBound
// (which instead widens the arc around a true kinematic singularity).
const matrixEps = 1e-6

// ErrJointLimitCount is returned by NewKine7 when fewer or more than 7
// joint limits are supplied.
var ErrJointLimitCount = errors.New("srs: exactly 7 joint limits are required")

// DefaultGeometry holds the reference arm's link lengths and joint
// travel limits.
type DefaultGeometry struct {
	L1, L2, L3, D float32
	JointLimits   [7]interval.AngularInterval
	SingularBound float32
}

// Default returns the reference geometry this core ships with, in radians.
func Default() DefaultGeometry {
	lim := interval.NewAngularInterval
	return DefaultGeometry{
		L1: 55, L2: 30, L3: 6.1, D: 4.5,
		JointLimits: [7]interval.AngularInterval{
			lim(-2.62, 2.62),
			lim(-2.01, 2.01),
			lim(-2.97, 2.97),
			lim(-0.87, 3.14),
			lim(-1.27, 4.79),
			lim(-1.57, 1.57),
			lim(-2.35, 2.35),
		},
		SingularBound: 5e-5,
	}
}

// Kine7 is an immutable analytical forward/inverse kinematics solver for a
// 7-DoF S-R-S arm of fixed geometry.
type Kine7 struct {
	l1, l2, l3, d float32
	jointLimits   [7]interval.AngularInterval
	dhTable       dh.Table
	singularBound float32
}

// NewKine7 builds a solver for the given link lengths and joint limits.
// jointLimits must have exactly 7 entries, shoulder-to-wrist in DH order.
func NewKine7(l1, l2, l3, d float32, jointLimits []interval.AngularInterval, singularBound float32) (*Kine7, error) {
	if len(jointLimits) != 7 {
		return nil, ErrJointLimitCount
	}
	var limits [7]interval.AngularInterval
	copy(limits[:], jointLimits)

	return &Kine7{
		l1: l1, l2: l2, l3: l3, d: d,
		jointLimits:   limits,
		dhTable:       dhTable(l1, l2, l3, d),
		singularBound: singularBound,
	}, nil
}

// dhTable builds the 7-row Denavit-Hartenberg table for the S-R-S
// geometry, matching kine7.hpp's constructor exactly.
func dhTable(l1, l2, l3, d float32) dh.Table {
	const halfPi = math32.Pi / 2
	return dh.Table{
		{Alpha: -halfPi, D: 0, R: 0},
		{Alpha: halfPi, D: 0, R: 0},
		{Alpha: -halfPi, D: l1, R: d},
		{Alpha: halfPi, D: 0, R: -d},
		{Alpha: -halfPi, D: l2, R: 0},
		{Alpha: halfPi, D: 0, R: 0},
		{Alpha: 0, D: l3, R: 0},
	}
}

// Forward evaluates the tip pose for 7 joint angles.
func (k *Kine7) Forward(q [7]float32) mat.Matrix4x4 {
	return k.dhTable.Forward(q[:])
}

// JointLimits returns the solver's joint travel ranges, shoulder-to-wrist.
func (k *Kine7) JointLimits() [7]interval.AngularInterval {
	return k.jointLimits
}

// Inverse solves the tip pose T07 for every elbow-angle (theta4) branch,
// returning one SelfMotion per real root of the elbow equation. A branch
// whose joint-limit-feasible arm-angle range is empty still appears here;
// callers that only want reachable branches should check
// ArmAngleRange().IsEmpty().
func (k *Kine7) Inverse(t07 mat.Matrix4x4) []SelfMotion {
	xWt7 := vec.Vector3D{0, 0, k.l3}
	xSt0 := t07.Translation()
	r70 := t07.Rotation()
	xSw0 := xSt0.Sub(r70.MulVec(xWt7)).Round(k.singularBound)

	t4Roots := trig.SolveSinCosEq(
		2*k.d*(k.l1+k.l2),
		2*(k.l1*k.l2-k.d*k.d),
		2*k.d*k.d+k.l1*k.l1+k.l2*k.l2,
		xSw0.SumSqr(),
	)
	if len(t4Roots) == 0 {
		logger.Log.Debug().Msg("srs: theta4 has no solution")
		return nil
	}

	motions := make([]SelfMotion, 0, len(t4Roots))
	for _, theta4 := range t4Roots {
		motions = append(motions, k.branch(theta4, xSw0, r70))
	}
	return motions
}

func (k *Kine7) branch(theta4 float32, xSw0 vec.Vector3D, r70 mat.Matrix3x3) SelfMotion {
	p0, q0, r0 := xSw0[0], xSw0[1], xSw0[2]
	theta1Ref, theta2Ref := ReferencePlane(theta4, p0, q0, r0, k.l1, k.l2, k.d)

	c4, s4 := math32.Cos(theta4), math32.Sin(theta4)
	r43 := mat.Matrix3x3{
		{c4, 0, s4},
		{s4, 0, -c4},
		{0, 1, 0},
	}

	s1, c1 := math32.Sin(theta1Ref), math32.Cos(theta1Ref)
	s2, c2 := math32.Sin(theta2Ref), math32.Cos(theta2Ref)

	v := xSw0.Normalize()
	vSkew := mat.Skew(v)
	vSquared := vSkew.Mul(vSkew)

	r30Ref := mat.Matrix3x3{
		{c1 * c2, -c1 * s2, -s1},
		{s1 * c2, -s1 * s2, c1},
		{-s2, -c2, 0},
	}

	as := vSkew.Mul(r30Ref).Round(matrixEps)
	bs := vSquared.Mul(r30Ref).Scale(-1).Round(matrixEps)
	cs := mat.Identity3().Add(vSquared).Mul(r30Ref).Round(matrixEps)

	pu := k.upperArm(as, bs, cs)

	aw := as.Mul(r43).Transpose().Mul(r70).Round(matrixEps)
	bw := bs.Mul(r43).Transpose().Mul(r70).Round(matrixEps)
	cw := cs.Mul(r43).Transpose().Mul(r70).Round(matrixEps)

	pl := k.lowerArm(aw, bw, cw)

	phi := pu.Intersect(pl)

	return SelfMotion{
		phi:           phi,
		jointLimits:   k.jointLimits,
		theta4:        theta4,
		as:            as, bs: bs, cs: cs,
		aw:            aw, bw: bw, cw: cw,
		singularBound: k.singularBound,
	}
}
