package srs

import (
	"github.com/chewxy/math32"

	"github.com/itohio/kine7/x/math/interval"
)

// SingularityHandler resolves the redundant angle sum at a shoulder or
// wrist algorithmic singularity (theta2 or theta6 near zero, where only
// theta1+theta3 or theta5+theta7 is determined) into individual joint
// values, by splitting the required sum change proportionally to how much
// slack each joint has against its own limit and its distance from the
// arm's current pose. It carries mutable state (the caller's last
// commanded joints) and is not meant to be shared across concurrent
// solves; callers typically own one instance per arm.
type SingularityHandler struct {
	jointLimits   [7]interval.AngularInterval
	currentJoints [7]float32
}

func NewSingularityHandler(jointLimits [7]interval.AngularInterval) *SingularityHandler {
	return &SingularityHandler{jointLimits: jointLimits}
}

// UpdateCurrentJoints records the arm's last commanded joint vector, the
// reference point subsequent singularity splits are resolved against.
func (s *SingularityHandler) UpdateCurrentJoints(q [7]float32) {
	s.currentJoints = q
}

// GetUpperJoints splits a required theta1+theta3 sum into individual
// values at a shoulder singularity.
func (s *SingularityHandler) GetUpperJoints(sum float32) (t1, t3 float32) {
	return s.split(sum, 0, 2)
}

// GetLowerJoints splits a required theta5+theta7 sum into individual
// values at a wrist singularity.
func (s *SingularityHandler) GetLowerJoints(sum float32) (t5, t7 float32) {
	return s.split(sum, 4, 6)
}

// split implements kine7.hpp's _get_joints: it moves (t, tt) toward
// whichever of sum's two joints has more room, proportional to each
// joint's distance from its own limit in the direction sum is asking it to
// move.
func (s *SingularityHandler) split(sum float32, i, j int) (t, tt float32) {
	const twoPi = 2 * math32.Pi
	t = s.currentJoints[i]
	tt = s.currentJoints[j]

	var l, u, ll, uu float32
	if s.jointLimits[i].Contains(t) {
		l = s.jointLimits[i].Lower(true)
		u = s.jointLimits[i].Upper()
	}
	if s.jointLimits[j].Contains(tt) {
		ll = s.jointLimits[j].Lower(true)
		uu = s.jointLimits[j].Upper()
	}

	var d, dd float32
	if sum < t+tt {
		if t > l {
			d = t - l
		} else {
			d = t - l + twoPi
		}
		if tt > ll {
			dd = tt - ll
		} else {
			dd = tt - ll + twoPi
		}
	} else {
		if u > t {
			d = u - t
		} else {
			d = u - t + twoPi
		}
		if uu > tt {
			dd = uu - tt
		} else {
			dd = uu - tt + twoPi
		}
	}

	delta := sum - t - tt
	alpha := d / (d + dd)
	return t + alpha*delta, tt + (1-alpha)*delta
}
