package srs

import (
	"github.com/chewxy/math32"

	"github.com/itohio/kine7/x/math/trig"
)

// ReferencePlane picks a consistent (theta1, theta2) reference pose for a
// given elbow angle theta4 and shoulder-to-wrist vector (p0, q0, r0): the
// shoulder orientation the Rodrigues coefficient matrices are built
// relative to. Grounded on kine7.hpp's reference_plane.
func ReferencePlane(theta4, p0, q0, r0, l1, l2, d float32) (theta1Ref, theta2Ref float32) {
	c4, s4 := math32.Cos(theta4), math32.Sin(theta4)
	p3 := -c4*d + s4*l2 + d
	q3 := -d*s4 - l2*c4 - l1

	if p0 == 0 && q0 == 0 {
		return 0, math32.Atan2(-p3, -q3)
	}

	var theta2Candidates []float32
	if r0*r0 >= p3*p3+q3*q3 {
		if r0 >= 0 {
			theta2Candidates = []float32{math32.Atan2(p3, q3)}
		} else {
			theta2Candidates = []float32{-math32.Pi + math32.Atan2(p3, q3)}
		}
	} else {
		theta2Candidates = trig.SolveSinCosEq(p3, q3, r0, 0)
	}

	for _, t2 := range theta2Candidates {
		c2, s2 := math32.Cos(t2), math32.Sin(t2)
		a := sign(p3*c2 - q3*s2)
		b := sign(p3)
		theta2Ref = t2
		theta1Ref = math32.Atan2(a*q0, a*p0)
		if a*b >= 0 {
			break
		}
	}
	return theta1Ref, theta2Ref
}

func sign(x float32) float32 {
	if x >= 0 {
		return 1
	}
	return -1
}
