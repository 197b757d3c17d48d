package mat

import "github.com/chewxy/math32"
import "github.com/itohio/kine7/x/math/vec"

// Matrix4x4 is a row-major homogeneous transform [R t; 0 1].
type Matrix4x4 [4][4]float32

func Identity4() Matrix4x4 {
	var m Matrix4x4
	m[0][0], m[1][1], m[2][2], m[3][3] = 1, 1, 1, 1
	return m
}

func (m Matrix4x4) Mul(o Matrix4x4) Matrix4x4 {
	var r Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[i][k] * o[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// Rotation extracts the top-left 3x3 rotation block.
func (m Matrix4x4) Rotation() Matrix3x3 {
	var r Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j]
		}
	}
	return r
}

// Translation extracts the 4th column, first 3 rows.
func (m Matrix4x4) Translation() vec.Vector3D {
	return vec.Vector3D{m[0][3], m[1][3], m[2][3]}
}

// DH2T builds the standard Denavit-Hartenberg link transform for
// (alpha, d, theta, a), matching the teacher's dh/config.go CalculateTransform
// layout exactly (same column/row assignment, just expressed as a [4][4]
// rather than a flat 16-element array).
func DH2T(alpha, d, theta, a float32) Matrix4x4 {
	ct := math32.Cos(theta)
	st := math32.Sin(theta)
	ca := math32.Cos(alpha)
	sa := math32.Sin(alpha)

	var m Matrix4x4
	m[0] = [4]float32{ct, -st * ca, st * sa, a * ct}
	m[1] = [4]float32{st, ct * ca, -ct * sa, a * st}
	m[2] = [4]float32{0, sa, ca, d}
	m[3] = [4]float32{0, 0, 0, 1}
	return m
}
