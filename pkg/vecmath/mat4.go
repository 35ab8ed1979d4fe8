package vecmath

import "math"

// Mat4 is a row-major 4x4 matrix, stored flat as in the original C
// implementation this package is ported from.
type Mat4 struct {
	m [16]float64
}

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	var m Mat4
	m.m[0], m.m[5], m.m[10], m.m[15] = 1, 1, 1, 1
	return m
}

// Translate returns a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m.m[3], m.m[7], m.m[11] = v.X, v.Y, v.Z
	return m
}

// Scale returns a scaling matrix.
func Scale(v Vec3) Mat4 {
	var m Mat4
	m.m[0], m.m[5], m.m[10], m.m[15] = v.X, v.Y, v.Z, 1
	return m
}

// RotateX returns a rotation matrix about the X axis, angle in radians.
func RotateX(t float64) Mat4 {
	m := Identity()
	c, s := math.Cos(t), math.Sin(t)
	m.m[5], m.m[6] = c, -s
	m.m[9], m.m[10] = s, c
	return m
}

// RotateY returns a rotation matrix about the Y axis, angle in radians.
func RotateY(t float64) Mat4 {
	m := Identity()
	c, s := math.Cos(t), math.Sin(t)
	m.m[0], m.m[2] = c, -s
	m.m[8], m.m[10] = s, c
	return m
}

// RotateZ returns a rotation matrix about the Z axis, angle in radians.
func RotateZ(t float64) Mat4 {
	m := Identity()
	c, s := math.Cos(t), math.Sin(t)
	m.m[0], m.m[1] = c, -s
	m.m[4], m.m[5] = s, c
	return m
}

// RotateAxis returns the composed rotation about the given principal axis.
func RotateAxis(axis Axis, angle float64) Mat4 {
	switch axis {
	case AxisX:
		return RotateX(angle)
	case AxisY:
		return RotateY(angle)
	default:
		return RotateZ(angle)
	}
}

// Mul returns m*n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var res Mat4
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			i := x + y*4
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.m[k+y*4] * n.m[x+k*4]
			}
			res.m[i] = sum
		}
	}
	return res
}

// ApplyPoint applies m to a point (implicit w=1).
func (m Mat4) ApplyPoint(v Vec3) Vec3 { return m.apply(v, 1) }

// ApplyVector applies m to a direction (implicit w=0, so translation does
// not affect the result).
func (m Mat4) ApplyVector(v Vec3) Vec3 { return m.apply(v, 0) }

func (m Mat4) apply(v Vec3, w float64) Vec3 {
	return Vec3{
		m.m[0]*v.X + m.m[1]*v.Y + m.m[2]*v.Z + m.m[3]*w,
		m.m[4]*v.X + m.m[5]*v.Y + m.m[6]*v.Z + m.m[7]*w,
		m.m[8]*v.X + m.m[9]*v.Y + m.m[10]*v.Z + m.m[11]*w,
	}
}
