package srs

import (
	"github.com/chewxy/math32"

	"github.com/itohio/kine7/x/math/interval"
	"github.com/itohio/kine7/x/math/mat"
)

// SelfMotion is one elbow-angle (theta4) branch of Kine7.Inverse: the arm
// angle psi range this branch's shoulder and wrist triples can jointly
// realize, and the Rodrigues coefficient matrices that turn a chosen psi
// into all 7 joint angles.
type SelfMotion struct {
	phi           interval.AngularIntervalSet
	jointLimits   [7]interval.AngularInterval
	theta4        float32
	as, bs, cs    mat.Matrix3x3
	aw, bw, cw    mat.Matrix3x3
	singularBound float32
}

// ArmAngleRange returns the feasible psi set for this branch. An empty set
// means no psi on this elbow branch produces a joint-limit-respecting
// pose.
func (m SelfMotion) ArmAngleRange() interval.AngularIntervalSet {
	return m.phi
}

// ElbowJoint returns this branch's fixed theta4.
func (m SelfMotion) ElbowJoint() float32 {
	return m.theta4
}

// GetJoints evaluates every full 7-joint solution at arm angle psi,
// resolving the shoulder or wrist triple's own redundancy via sh whenever
// psi sits at that triple's algorithmic singularity (theta2 or theta6 near
// zero). Up to 4 joint vectors are returned (2 shoulder branches times 2
// wrist branches), filtered to those respecting every joint's travel
// limit.
func (m SelfMotion) GetJoints(psi float32, sh *SingularityHandler) [][7]float32 {
	sp, cp := math32.Sin(psi), math32.Cos(psi)

	shoulder := m.tripleBranches(sp, cp, m.as, m.bs, m.cs, false, sh.GetUpperJoints)
	wrist := m.tripleBranches(sp, cp, m.aw, m.bw, m.cw, true, sh.GetLowerJoints)

	var joints [][7]float32
	for _, s := range shoulder {
		for _, w := range wrist {
			v := [7]float32{s[0], s[1], s[2], m.theta4, w[0], w[1], w[2]}
			if m.validateJoints(v) {
				joints = append(joints, v)
			}
		}
	}
	return joints
}

type triple [3]float32

// tripleBranches evaluates one Rodrigues-coefficient triple (shoulder or
// wrist) at (sp, cp), returning either the single singularity-resolved
// branch or the two ordinary +/-theta2-style branches. The shoulder
// (As/Bs/Cs) and wrist (Aw/Bw/Cw) matrices are unrelated (Aw = (As*R43)^t *
// R70), so they don't share a matrix-entry/sign pattern; wrist selects the
// wrist's own pattern, matching the distinct index sets armbranches.go's
// upperArm/lowerArm already use for feasibility.
func (m SelfMotion) tripleBranches(sp, cp float32, a, b, c mat.Matrix3x3, wrist bool, getJoints func(sum float32) (float32, float32)) []triple {
	var cMid float32
	if wrist {
		cMid = a[2][2]*sp + b[2][2]*cp + c[2][2]
	} else {
		cMid = -(a[2][1]*sp + b[2][1]*cp + c[2][1])
	}
	var t2 float32
	if cMid <= 1 {
		t2 = math32.Acos(cMid)
	}

	if math32.Abs(t2) <= m.singularBound+matrixEps {
		t13 := math32.Atan2(
			a[1][0]*sp+b[1][0]*cp+c[1][0],
			a[0][0]*sp+b[0][0]*cp+c[0][0],
		)
		t1, t3 := getJoints(t13)
		return []triple{{t1, t2, t3}}
	}

	var s1, c1, s3, c3 float32
	if wrist {
		s1 = a[1][2]*sp + b[1][2]*cp + c[1][2]
		c1 = a[0][2]*sp + b[0][2]*cp + c[0][2]
		s3 = a[2][1]*sp + b[2][1]*cp + c[2][1]
		c3 = -(a[2][0]*sp + b[2][0]*cp + c[2][0])
	} else {
		s1 = -(a[1][1]*sp + b[1][1]*cp + c[1][1])
		c1 = -(a[0][1]*sp + b[0][1]*cp + c[0][1])
		s3 = a[2][2]*sp + b[2][2]*cp + c[2][2]
		c3 = -(a[2][0]*sp + b[2][0]*cp + c[2][0])
	}
	t1 := math32.Atan2(s1, c1)
	t3 := math32.Atan2(s3, c3)

	branches := []triple{{t1, t2, t3}}

	t2b := -t2
	t1b := t1
	if t1b > 0 {
		t1b -= math32.Pi
	} else {
		t1b += math32.Pi
	}
	t3b := t3
	if t3b > 0 {
		t3b -= math32.Pi
	} else {
		t3b += math32.Pi
	}
	branches = append(branches, triple{t1b, t2b, t3b})

	return branches
}

func (m SelfMotion) validateJoints(joints [7]float32) bool {
	for i, lim := range m.jointLimits {
		if !lim.Contains(joints[i]) {
			return false
		}
	}
	return true
}
