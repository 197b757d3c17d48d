package srs

import (
	"github.com/chewxy/math32"

	"github.com/itohio/kine7/x/math/interval"
	"github.com/itohio/kine7/x/math/mat"
	"github.com/itohio/kine7/x/math/trig"
)

func asSet(a interval.AngularInterval) interval.AngularIntervalSet {
	return interval.NewAngularIntervalSet(a)
}

// upperArm solves the shoulder triple (theta1, theta2, theta3) feasibility
// as a function of the arm angle psi, given this branch's Rodrigues
// coefficient matrices.
func (k *Kine7) upperArm(as, bs, cs mat.Matrix3x3) interval.AngularIntervalSet {
	p2 := trig.SolveCosType(trig.Coeffs{-as[2][1], -bs[2][1], -cs[2][1]}, asSet(k.jointLimits[1]), k.singularBound)
	p1 := trig.SolveTanType(
		trig.Coeffs{-as[1][1], -bs[1][1], -cs[1][1]},
		trig.Coeffs{-as[0][1], -bs[0][1], -cs[0][1]},
		asSet(k.jointLimits[0]),
	)
	p3 := trig.SolveTanType(
		trig.Coeffs{as[2][2], bs[2][2], cs[2][2]},
		trig.Coeffs{-as[2][0], -bs[2][0], -cs[2][0]},
		asSet(k.jointLimits[2]),
	)

	pu := p1.Neg.Intersect(p2.Neg).Intersect(p3.Neg).Union(
		p1.Pos.Intersect(p2.Pos).Intersect(p3.Pos))

	validRange := k.jointLimits[0].Add(k.jointLimits[2])
	singular := handleSingularity(
		trig.Coeffs{-as[2][1], -bs[2][1], -cs[2][1]},
		trig.Coeffs{as[1][0], bs[1][0], cs[1][0]},
		trig.Coeffs{as[0][0], bs[0][0], cs[0][0]},
		validRange, k.singularBound,
	)
	return pu.Union(singular)
}

// lowerArm solves the wrist triple (theta5, theta6, theta7) feasibility,
// mirroring upperArm with the Aw/Bw/Cw coefficient matrices.
func (k *Kine7) lowerArm(aw, bw, cw mat.Matrix3x3) interval.AngularIntervalSet {
	p6 := trig.SolveCosType(trig.Coeffs{aw[2][2], bw[2][2], cw[2][2]}, asSet(k.jointLimits[5]), k.singularBound)
	p5 := trig.SolveTanType(
		trig.Coeffs{aw[1][2], bw[1][2], cw[1][2]},
		trig.Coeffs{aw[0][2], bw[0][2], cw[0][2]},
		asSet(k.jointLimits[4]),
	)
	p7 := trig.SolveTanType(
		trig.Coeffs{aw[2][1], bw[2][1], cw[2][1]},
		trig.Coeffs{-aw[2][0], -bw[2][0], -cw[2][0]},
		asSet(k.jointLimits[6]),
	)

	pl := p5.Neg.Intersect(p6.Neg).Intersect(p7.Neg).Union(
		p5.Pos.Intersect(p6.Pos).Intersect(p7.Pos))

	validRange := k.jointLimits[4].Add(k.jointLimits[6])
	singular := handleSingularity(
		trig.Coeffs{aw[2][2], bw[2][2], cw[2][2]},
		trig.Coeffs{aw[1][0], bw[1][0], cw[1][0]},
		trig.Coeffs{aw[0][0], bw[0][0], cw[0][0]},
		validRange, k.singularBound,
	)
	return pl.Union(singular)
}

// handleSingularity finds the psi sub-range where a shoulder or wrist
// triple sits at its own algorithmic singularity (theta2 or theta6 near
// zero), where only the sum of the other two joints in the triple is
// determined. validRange is the Minkowski sum of those two joints' own
// travel limits, the range their sum is allowed to land in.
func handleSingularity(fCos, fSumSin, fSumCos trig.Coeffs, validRange interval.AngularIntervalSet, singularBound float32) interval.AngularIntervalSet {
	negHalf := asSet(interval.NewAngularInterval(-math32.Pi, 0))
	posHalf := asSet(interval.NewAngularInterval(0, math32.Pi))
	negRange := negHalf.Intersect(validRange)
	posRange := posHalf.Intersect(validRange)

	singularRange := trig.SolveSinCosGEQ(fCos[0], fCos[1], fCos[2], math32.Cos(singularBound))
	resPos := trig.SolveQuadrant(1, 1, fSumSin, fSumCos, posRange)
	resNeg := trig.SolveQuadrant(1, -1, fSumSin, fSumCos, negRange)

	return resPos.Union(resNeg).Intersect(singularRange)
}
