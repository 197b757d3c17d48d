// Package mat provides the fixed-size 3x3/4x4 matrix algebra the SRS
// inverse-kinematics core needs: rotation composition, the skew-symmetric
// operator behind the Rodrigues coefficient matrices, and homogeneous
// transform assembly/extraction. Like x/math/vec, this trades the rest of
// the corpus's generic NxM Matrix interface for concrete fixed-size types —
// the arm's geometry never needs anything but 3x3 and 4x4.
package mat

import "github.com/itohio/kine7/x/math/vec"

// Matrix3x3 is row-major: m[row][col].
type Matrix3x3 [3][3]float32

func Identity3() Matrix3x3 {
	return Matrix3x3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Skew returns the skew-symmetric cross-product matrix of v, such that
// Skew(v).MulVec(x) == v.Cross(x).
func Skew(v vec.Vector3D) Matrix3x3 {
	return Matrix3x3{
		{0, -v[2], v[1]},
		{v[2], 0, -v[0]},
		{-v[1], v[0], 0},
	}
}

func (m Matrix3x3) Mul(o Matrix3x3) Matrix3x3 {
	var r Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float32
			for k := 0; k < 3; k++ {
				s += m[i][k] * o[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

func (m Matrix3x3) Add(o Matrix3x3) Matrix3x3 {
	var r Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] + o[i][j]
		}
	}
	return r
}

func (m Matrix3x3) Scale(s float32) Matrix3x3 {
	var r Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] * s
		}
	}
	return r
}

func (m Matrix3x3) Transpose() Matrix3x3 {
	var r Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

func (m Matrix3x3) MulVec(v vec.Vector3D) vec.Vector3D {
	return vec.Vector3D{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Round epsilon-rounds every entry, matching the `around()` helper in the
// reference implementation that stabilizes near-singular matrix entries
// before they feed the trigonometric inequality solvers.
func (m Matrix3x3) Round(eps float32) Matrix3x3 {
	var r Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = roundEps(m[i][j], eps)
		}
	}
	return r
}
