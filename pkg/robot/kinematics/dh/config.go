// Package dh implements Denavit-Hartenberg forward kinematics: a per-joint
// parameter table and the homogeneous link transform it produces. Grounded
// on the teacher's pkg/robot/kinematics/dh/config.go — same table layout,
// same CalculateTransform column/row assignment — adapted to this core's
// fixed Matrix4x4 type and to a 7-row revolute-only table (the teacher's
// generic parameter-index switch, covering prismatic/alpha/r joints a
// general arm might need, collapses to pure theta-offset rotation for
// every joint of this S-R-S arm).
//
//  n | theta | alpha | r | d |
//
// n - frame index
// theta - rotation offset around the previous Z axis
// alpha - rotation around the previous X axis
// r - displacement along the X axis
// d - displacement along the Z axis
package dh

import "github.com/itohio/kine7/x/math/mat"

// Config is one row of a Denavit-Hartenberg parameter table. Every joint in
// this core is revolute, so the live parameter always adds to Theta; Min
// and Max are carried for callers that want to clamp a commanded angle
// before evaluating the transform (Forward never clamps on its own).
type Config struct {
	Min, Max    float32
	Theta       float32
	Alpha       float32
	R           float32
	D           float32
}

func (c Config) Limit(a float32) float32 {
	switch {
	case a < c.Min:
		return c.Min
	case a > c.Max:
		return c.Max
	default:
		return a
	}
}

// Transform evaluates this row's link transform with the joint's current
// angle added to Theta.
func (c Config) Transform(theta float32) mat.Matrix4x4 {
	return mat.DH2T(c.Alpha, c.D, c.Theta+theta, c.R)
}

// Table is an ordered Denavit-Hartenberg parameter table for a serial
// chain.
type Table []Config

// Forward composes the chain's link transforms for the given joint
// angles, base to tip. len(q) must equal len(t).
func (t Table) Forward(q []float32) mat.Matrix4x4 {
	m := mat.Identity4()
	for i, cfg := range t {
		m = m.Mul(cfg.Transform(q[i]))
	}
	return m
}
