// Package vec provides the fixed-size 3D vector arithmetic the SRS
// inverse-kinematics core needs: shoulder-to-wrist vectors, rotation axes,
// translations. It intentionally skips the generic N-dimensional
// Vector/Accessors interface framework used elsewhere in this corpus — a
// 7-DoF arm only ever needs a concrete Vector3D, not a pluggable backend.
package vec

import "github.com/chewxy/math32"

// Vector3D is a 3-element column vector, value-receiver like the rest of
// this corpus's math types.
type Vector3D [3]float32

func (v Vector3D) Add(o Vector3D) Vector3D {
	return Vector3D{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vector3D) Sub(o Vector3D) Vector3D {
	return Vector3D{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vector3D) Scale(s float32) Vector3D {
	return Vector3D{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vector3D) Dot(o Vector3D) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vector3D) SumSqr() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vector3D) Norm() float32 {
	return math32.Sqrt(v.SumSqr())
}

// Normalize returns v/||v||. The zero vector is returned unchanged; this
// core never normalizes a zero shoulder-to-wrist vector since that pose
// is only reachable at an unrelated singularity already rejected upstream.
func (v Vector3D) Normalize() Vector3D {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Round truncates each component toward zero to a multiple of eps,
// matching the epsilon-rounding `x - (x mod eps)` used throughout the
// kinematics core to stabilize near-singular classification.
func (v Vector3D) Round(eps float32) Vector3D {
	return Vector3D{
		roundEps(v[0], eps),
		roundEps(v[1], eps),
		roundEps(v[2], eps),
	}
}

func roundEps(x, eps float32) float32 {
	return x - math32.Mod(x, eps)
}
