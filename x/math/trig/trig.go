// Package trig solves the trigonometric equalities and inequalities that
// drive the SRS inverse-kinematics branch feasibility tests: every joint
// angle in this core is a sin/cos-linear function of the redundant arm
// angle psi, a*sin(psi)+b*cos(psi)+c, so every joint-limit constraint
// reduces — via the t=tan(psi/2) substitution — to a quadratic on R.
// Grounded on original_source/CyberSystem/kine7.hpp's solve_sin_cos_*,
// solve_quadrant*, solve_tan_type, and solve_cos_type* static methods, and
// spec.md §4.2-§4.4.
package trig

import (
	"github.com/chewxy/math32"

	"github.com/itohio/kine7/x/math/interval"
	"github.com/itohio/kine7/x/math/quadratic"
)

const eps = 1e-6

// roundEps truncates x toward zero to a multiple of eps (x - x mod eps),
// the epsilon bookkeeping applied to every sin/cos coefficient before it
// feeds the quadratic solver (and to the quadrant boundary solvers' derived
// coefficients), so that razor's-edge coefficients classify consistently.
func roundEps(x float32) float32 {
	return x - math32.Mod(x, eps)
}

func quad(a, b, c, f float32) quadratic.Quadratic {
	a, b, c = roundEps(a), roundEps(b), roundEps(c)
	cf := c - f
	return quadratic.New(cf-b, 2*a, cf+b)
}

// SolveSinCosEq solves a*sin(psi)+b*cos(psi)+c = f over psi, via
// t=tan(psi/2): (c-f-b)t^2 + 2a*t + (c-f+b) = 0, psi = 2*atan(t) per real
// root. When the quadratic's order is below 2 and it does not have the
// identically-zero ("all psi") case, psi=pi is also a solution (the
// t-substitution cannot represent the psi=pi root directly since
// tan(pi/2) is undefined).
func SolveSinCosEq(a, b, c, f float32) []float32 {
	q := quad(a, b, c, f)
	roots := q.Solve(0)

	var out []float32
	for _, t := range roots.V {
		out = append(out, 2*math32.Atan(t))
	}
	if roots.Order < quadratic.OrderQuadric && roots.N != -1 {
		out = append(out, math32.Pi)
	}
	return out
}

// SolveSinCosLEQ solves a*sin(psi)+b*cos(psi)+c <= f over psi.
func SolveSinCosLEQ(a, b, c, f float32) interval.AngularIntervalSet {
	q := quad(a, b, c, f)
	ivs := q.SolveLEQ(0)

	var arcs []interval.AngularInterval
	for _, iv := range ivs {
		// math32.Atan maps -Inf -> -pi/2, +Inf -> pi/2, matching the
		// t=tan(psi/2) substitution's single point at infinity sitting at
		// psi=pi (approached from either side).
		lo := 2 * math32.Atan(iv.Lo)
		hi := 2 * math32.Atan(iv.Hi)
		arcs = append(arcs, interval.NewAngularInterval(lo, hi))
	}
	return interval.NewAngularIntervalSet(arcs...)
}

// SolveSinCosGEQ solves a*sin(psi)+b*cos(psi)+c >= f, by negating every
// coefficient and delegating to SolveSinCosLEQ (x<=y iff -x>=-y).
func SolveSinCosGEQ(a, b, c, f float32) interval.AngularIntervalSet {
	return SolveSinCosLEQ(-a, -b, -c, -f)
}
