package math

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FromAxes packs a rigid-body frame into a matrix: the three axes become
// columns 0..2 and the point becomes the translation column.
func FromAxes(point, axis1, axis2, axis3 Vec3) Mat4 {
	return Mat4{
		axis1.X, axis1.Y, axis1.Z, 0,
		axis2.X, axis2.Y, axis2.Z, 0,
		axis3.X, axis3.Y, axis3.Z, 0,
		point.X, point.Y, point.Z, 1,
	}
}

// Axes unpacks a matrix built by FromAxes.
func (m Mat4) Axes() (point, axis1, axis2, axis3 Vec3) {
	axis1 = Vec3{m[0], m[1], m[2]}
	axis2 = Vec3{m[4], m[5], m[6]}
	axis3 = Vec3{m[8], m[9], m[10]}
	point = Vec3{m[12], m[13], m[14]}
	return point, axis1, axis2, axis3
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
func (m Mat4) TransformPoint(p [3]float32) [3]float32 {
	x := m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12]
	y := m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13]
	z := m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14]
	w := m[3]*p[0] + m[7]*p[1] + m[11]*p[2] + m[15]
	if w != 0 && w != 1 {
		return [3]float32{x / w, y / w, z / w}
	}
	return [3]float32{x, y, z}
}

// TransformVec3 transforms a Vec3 point by this matrix.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	p := m.TransformPoint([3]float32{v.X, v.Y, v.Z})
	return Vec3{p[0], p[1], p[2]}
}

// Determinant3 returns the determinant of the upper-left 3x3 block, i.e. the
// scalar triple product axis3 . (axis1 x axis2) of a FromAxes matrix.
func (m Mat4) Determinant3() float32 {
	_, a1, a2, a3 := m.Axes()
	return a3.Dot(a1.Cross(a2))
}
