package trig

import (
	"github.com/chewxy/math32"

	"github.com/itohio/kine7/x/math/interval"
)

// Coeffs is a [sin, cos, const] coefficient triple for a sin/cos-linear
// expression a*sin(psi)+b*cos(psi)+c, the shape every Rodrigues
// coefficient row (As/Bs/Cs, Aw/Bw/Cw) takes once fixed at a matrix entry.
type Coeffs [3]float32

// SolveQuadrantLEQ tests the boundary angle u of a candidate atan2-quotient
// arc against the quadrant sign pair (s1, s2), reducing the quadrant
// feasibility test at u to a sin/cos inequality. u is a valid-range upper
// endpoint: u = 0 and u = pi are decided directly from s2, any other u is
// passed through cot.
func SolveQuadrantLEQ(s1, s2 float32, lhs, rhs Coeffs, u float32) interval.AngularIntervalSet {
	switch {
	case (s2 < 0 && u == math32.Pi) || (s2 > 0 && u == 0):
		return interval.Empty()
	case (s2 < 0 && u == 0) || (s2 > 0 && u == math32.Pi):
		return interval.Full()
	}

	s := s1 * s2
	v := 1 / math32.Tan(u)
	a := roundEps(s * (v*lhs[0] - rhs[0]))
	b := roundEps(s * (v*lhs[1] - rhs[1]))
	c := roundEps(s * (v*lhs[2] - rhs[2]))
	return SolveSinCosLEQ(a, b, c, 0)
}

// SolveQuadrantGEQ is SolveQuadrantLEQ's >= counterpart, evaluated at a
// valid-range lower endpoint l.
func SolveQuadrantGEQ(s1, s2 float32, lhs, rhs Coeffs, l float32) interval.AngularIntervalSet {
	switch {
	case (s2 < 0 && l == math32.Pi) || (s2 > 0 && l == 0):
		return interval.Full()
	case (s2 < 0 && l == 0) || (s2 > 0 && l == math32.Pi):
		return interval.Empty()
	}

	s := s1 * s2
	v := 1 / math32.Tan(l)
	a := roundEps(s * (v*lhs[0] - rhs[0]))
	b := roundEps(s * (v*lhs[1] - rhs[1]))
	c := roundEps(s * (v*lhs[2] - rhs[2]))
	return SolveSinCosGEQ(a, b, c, 0)
}

// SolveQuadrant restricts the feasible psi range to where atan2(lhs(psi),
// rhs(psi)) lands in the quadrant signed by (s1, s2), over the candidate
// set in. lhs and rhs are each sin/cos-linear in psi.
func SolveQuadrant(s1, s2 float32, lhs, rhs Coeffs, in interval.AngularIntervalSet) interval.AngularIntervalSet {
	if in.IsEmpty() {
		return interval.Empty()
	}
	s := s1 * s2
	res1 := SolveSinCosGEQ(s*lhs[0], s*lhs[1], s*lhs[2], 0)

	var res2 interval.AngularIntervalSet
	for _, a := range in {
		t1 := SolveQuadrantGEQ(s1, s2, lhs, rhs, a.Lower(true))
		t2 := SolveQuadrantLEQ(s1, s2, lhs, rhs, a.Upper())
		res2 = res2.Union(t1.Intersect(t2))
	}

	return res1.Intersect(res2)
}

// TanType is the pair of feasible-psi sets produced by SolveTanType and
// SolveCosType, one per sign branch of the triple's middle joint. For
// SolveTanType, Pos is where atan2(lhs,rhs) lands inside the limit and Neg
// is where the pi-shifted partner atan2(-lhs,-rhs) does (the value paired
// with a negative middle joint); both can hold at the same psi. Both are
// carried forward so the shoulder/wrist triple can intersect its three
// joints per branch before taking the union over the two branches.
type TanType struct {
	Neg interval.AngularIntervalSet
	Pos interval.AngularIntervalSet
}

// SolveTanType solves an atan2-bounded joint-limit constraint: the joint
// angle is atan2(lhs(psi), rhs(psi)), and it must land inside in (an
// AngularIntervalSet already restricted by the joint's own travel limit,
// e.g. limits[0]).
func SolveTanType(lhs, rhs Coeffs, in interval.AngularIntervalSet) TanType {
	negHalf := interval.NewAngularIntervalSet(interval.NewAngularInterval(-math32.Pi, 0))
	posHalf := interval.NewAngularIntervalSet(interval.NewAngularInterval(0, math32.Pi))
	neg := negHalf.Intersect(in)
	pos := posHalf.Intersect(in)

	r1 := SolveQuadrant(1, 1, lhs, rhs, pos)
	r4 := SolveQuadrant(1, -1, lhs, rhs, neg)
	r2 := SolveQuadrant(-1, 1, lhs, rhs, pos)
	r3 := SolveQuadrant(-1, -1, lhs, rhs, neg)

	return TanType{
		Neg: r2.Union(r3),
		Pos: r1.Union(r4),
	}
}

// solveCosTypeUtil restricts psi by a single acos-bounded arc [l, u] (each
// endpoint optionally absent, meaning unbounded on that side), where the
// joint's cosine is F(psi) = F[0]*sin(psi)+F[1]*cos(psi)+F[2].
func solveCosTypeUtil(f Coeffs, lHas bool, l float32, uHas bool, u float32) interval.AngularIntervalSet {
	ru := interval.Full()
	rl := interval.Full()
	if uHas {
		ru = SolveSinCosLEQ(f[0], f[1], f[2], math32.Cos(u))
	}
	if lHas {
		rl = SolveSinCosGEQ(f[0], f[1], f[2], math32.Cos(l))
	}
	return ru.Intersect(rl)
}

// SolveCosType solves an acos-bounded joint-limit constraint: the joint
// angle is +acos(F(psi)) (Pos) or -acos(F(psi)) (Neg), so the negative and
// positive halves of the joint's limit set in (minus the singular band
// around 0) are each handled by their own boundary walk, accumulating
// (unioning) across every arc of in
// on that half — the literal assignment in the original source collapsed
// multiple arcs into just the last one, which this implementation
// corrects.
func SolveCosType(coeffs Coeffs, in interval.AngularIntervalSet, singularBound float32) TanType {
	inNeg := interval.NewAngularIntervalSet(interval.NewAngularInterval(-math32.Pi, -singularBound)).Intersect(in)
	inPos := interval.NewAngularIntervalSet(interval.NewAngularInterval(singularBound, math32.Pi)).Intersect(in)

	var resNeg, resPos interval.AngularIntervalSet
	for _, a := range inNeg {
		lVal := a.Lower(true)
		uVal := a.Upper()
		resNeg = resNeg.Union(solveCosTypeUtil(coeffs, lVal != math32.Pi, lVal, uVal != 0, uVal))
	}
	for _, a := range inPos {
		lVal := a.Upper()
		uVal := a.Lower(true)
		resPos = resPos.Union(solveCosTypeUtil(coeffs, lVal != math32.Pi, lVal, uVal != 0, uVal))
	}

	return TanType{Neg: resNeg, Pos: resPos}
}
