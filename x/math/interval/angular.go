// Package interval implements the closed-arc algebra on S^1 that the
// trigonometric branch solvers in x/math/trig reduce their feasible sets
// to: single arcs (AngularInterval), their canonical disjoint union
// (AngularIntervalSet), and the Minkowski sum of two arcs (used for joint
// limit composition). Grounded on the angular_interval/angular_interval_set
// usage pattern throughout original_source/CyberSystem/kine7.hpp and
// spec.md §3/§4.2.
package interval

import "github.com/chewxy/math32"

const (
	pi    = math32.Pi
	twoPi = 2 * math32.Pi
)

// AngularInterval is a closed arc [Lower, Upper], traveled in the
// direction of increasing angle, with Upper-Lower <= 2*pi. The arcs the
// trigonometric solvers in x/math/trig produce always lie within
// (-pi, pi]; joint-limit arcs supplied by callers may be wider plain real
// bounds (e.g. [-1.27, 4.79]). Wraparound arcs that don't fit a single
// such interval are represented, when necessary, as two pieces inside an
// AngularIntervalSet.
type AngularInterval struct {
	Lo, Hi float32
}

func NewAngularInterval(lo, hi float32) AngularInterval {
	return AngularInterval{Lo: lo, Hi: hi}
}

// Lower returns the arc's lower bound. When canonical is true, a lower
// bound sitting exactly at -pi is reported as +pi instead, letting callers
// distinguish "this arc actually starts at the branch point" from "this
// arc merely touches -pi as an ordinary value" — the distinction
// solve_cos_type's boundary bookkeeping depends on.
func (a AngularInterval) Lower(canonical bool) float32 {
	if canonical && a.Lo == -pi {
		return pi
	}
	return a.Lo
}

func (a AngularInterval) Upper() float32 {
	return a.Hi
}

func (a AngularInterval) IsEmpty() bool {
	return a.Lo > a.Hi
}

// Contains reports whether x, taken modulo 2*pi, falls within this arc.
// Joint limits in this core are plain real bounds that may span more than
// pi (e.g. [-1.27, 4.79]), wider than any angle atan2 or acos can return
// directly, so containment wraps x into the arc's own 2*pi window rather
// than assuming both x and the arc already live in (-pi, pi].
func (a AngularInterval) Contains(x float32) bool {
	if a.IsEmpty() {
		return false
	}
	d := x - a.Lo
	for d < 0 {
		d += twoPi
	}
	for d >= twoPi {
		d -= twoPi
	}
	return d <= a.Hi-a.Lo
}

// Add forms the Minkowski sum of two arcs on the circle, i.e. the set of
// all a+b for a in this arc and b in other. Used to compose two joint
// limit ranges into the valid range a singularity's redundant sum angle
// must land in.
func (a AngularInterval) Add(other AngularInterval) AngularIntervalSet {
	lo := a.Lo + other.Lo
	hi := a.Hi + other.Hi
	return normalizeArc(lo, hi)
}

// normalizeArc reduces an arc [lo, hi] (hi-lo may exceed 2*pi, and lo need
// not lie in (-pi, pi]) into canonical S^1 form, splitting across the
// -pi/pi seam where necessary.
func normalizeArc(lo, hi float32) AngularIntervalSet {
	span := hi - lo
	if span >= twoPi {
		return Full()
	}

	loR := wrapAngle(lo)
	hiR := loR + span

	if hiR <= pi {
		return AngularIntervalSet{AngularInterval{loR, hiR}}
	}
	return canonicalize([]AngularInterval{
		{loR, pi},
		{-pi, hiR - twoPi},
	})
}

// wrapAngle reduces x into (-pi, pi].
func wrapAngle(x float32) float32 {
	for x > pi {
		x -= twoPi
	}
	for x <= -pi {
		x += twoPi
	}
	return x
}
