// Package quadratic solves real quadratics a*x^2 + b*x + c - f = 0 and
// reports their sign-set on R, the leaf the trigonometric inequality
// solvers in x/math/trig reduce to via the Weierstrass half-angle
// substitution. Grounded on original_source/CyberSystem/quadratic.hpp and
// spec.md §4.1.
package quadratic

import "github.com/chewxy/math32"

// Quadratic is a*x^2 + b*x + c.
type Quadratic struct {
	A, B, C float32
}

func New(a, b, c float32) Quadratic {
	return Quadratic{A: a, B: b, C: c}
}

func (q Quadratic) Eval(x float32) float32 {
	return (q.A*x+q.B)*x + q.C
}

// Order is the effective polynomial degree of a*x^2+b*x+c-f: 0 (constant),
// 1 (linear), or 2 (quadratic).
type Order int

const (
	OrderConstant Order = 0
	OrderLinear   Order = 1
	OrderQuadric  Order = 2
)

// Roots is the result of Solve: N is the real root count, or -1 to encode
// the identically-zero case (infinitely many roots), matching spec.md §3's
// roots_type.
type Roots struct {
	Order Order
	N     int
	V     []float32
}

// Solve finds the real roots of a*x^2+b*x+c-f = 0, exactly per spec.md
// §4.1's table.
func (q Quadratic) Solve(f float32) Roots {
	a, b, c := q.A, q.B, q.C-f

	if a == 0 {
		if b == 0 {
			if c == 0 {
				return Roots{Order: OrderConstant, N: -1}
			}
			return Roots{Order: OrderConstant, N: 0}
		}
		return Roots{Order: OrderLinear, N: 1, V: []float32{-c / b}}
	}

	d := b*b - 4*a*c
	switch {
	case d < 0:
		return Roots{Order: OrderQuadric, N: 0}
	case d == 0:
		return Roots{Order: OrderQuadric, N: 1, V: []float32{-b / (2 * a)}}
	default:
		ds := math32.Sqrt(d)
		x1 := (-b - ds) / (2 * a)
		x2 := (-b + ds) / (2 * a)
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		return Roots{Order: OrderQuadric, N: 2, V: []float32{x1, x2}}
	}
}

// Interval is a closed subset of R, using +/-Inf sentinels for unbounded
// ends.
type Interval struct {
	Lo, Hi float32
}

// SolveLEQ returns the closed subset of R where a*x^2+b*x+c-f <= 0, exactly
// per spec.md §4.1's table — including the two asymmetric branches flagged
// as an open question in spec.md §9 (order=2,n=0,a>0 emits nothing; the
// order=2,n=1,a<0 tangent case emits the whole line). Preserved verbatim,
// per §9's instruction not to "fix" the source's table absent a surfaced
// bug.
func (q Quadratic) SolveLEQ(f float32) []Interval {
	posInf := math32.Inf(1)
	negInf := math32.Inf(-1)
	roots := q.Solve(f)
	var res []Interval

	switch roots.Order {
	case OrderConstant:
		if q.C-f <= 0 {
			res = append(res, Interval{negInf, posInf})
		}
	case OrderLinear:
		if q.B > 0 {
			res = append(res, Interval{negInf, roots.V[0]})
		} else {
			res = append(res, Interval{roots.V[0], posInf})
		}
	case OrderQuadric:
		switch roots.N {
		case 2:
			if q.A > 0 {
				res = append(res, Interval{roots.V[0], roots.V[1]})
			} else {
				res = append(res, Interval{negInf, roots.V[0]})
				res = append(res, Interval{roots.V[1], posInf})
			}
		case 1:
			if q.A > 0 {
				res = append(res, Interval{roots.V[0], roots.V[0]})
			} else {
				res = append(res, Interval{negInf, posInf})
			}
		case 0:
			if q.A <= 0 {
				res = append(res, Interval{negInf, posInf})
			}
		}
	}
	return res
}
