// Package vecmath provides the Vec3/Mat4 algebra the rest of the tracer is
// built on. Values are immutable: every method returns a new Vec3 rather
// than mutating the receiver.
package vecmath

import "math"

// Vec3 is a point, direction, or color depending on context.
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the additive identity.
var Zero = Vec3{}

// V3 constructs a Vec3 from three components.
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Splat returns a Vec3 with all three components set to a.
func Splat(a float64) Vec3 { return Vec3{a, a, a} }

func (v Vec3) Add(b Vec3) Vec3 { return Vec3{v.X + b.X, v.Y + b.Y, v.Z + b.Z} }
func (v Vec3) Sub(b Vec3) Vec3 { return Vec3{v.X - b.X, v.Y - b.Y, v.Z - b.Z} }
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Div(s float64) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// MulV multiplies componentwise (used for color modulation).
func (v Vec3) MulV(b Vec3) Vec3 { return Vec3{v.X * b.X, v.Y * b.Y, v.Z * b.Z} }

// Neg returns the additive inverse.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(b Vec3) float64 { return v.X*b.X + v.Y*b.Y + v.Z*b.Z }

// Eq reports exact component equality.
func (v Vec3) Eq(b Vec3) bool { return v.X == b.X && v.Y == b.Y && v.Z == b.Z }

// Aeq (almost-equal) reports whether v and b differ by no more than eps
// per component. Useful where direct equality is unlikely due to float
// accumulation.
func (v Vec3) Aeq(b Vec3, eps float64) bool {
	return math.Abs(v.X-b.X) <= eps && math.Abs(v.Y-b.Y) <= eps && math.Abs(v.Z-b.Z) <= eps
}

func (v Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		v.Y*b.Z - v.Z*b.Y,
		v.Z*b.X - v.X*b.Z,
		v.X*b.Y - v.Y*b.X,
	}
}

func (v Vec3) LengthSq() float64 { return v.Dot(v) }
func (v Vec3) Length() float64   { return math.Sqrt(v.LengthSq()) }

// Norm returns v scaled to unit length. Norm of the zero vector is not a
// unit vector: the division by zero yields NaN components.
func (v Vec3) Norm() Vec3 { return v.Div(v.Length()) }

// Inv returns the componentwise reciprocal. Zero components produce ±Inf,
// which is relied upon by the BVH slab test (spec: IEEE ±∞ on zero
// components is acceptable).
func (v Vec3) Inv() Vec3 { return Vec3{1 / v.X, 1 / v.Y, 1 / v.Z} }

// Reflect reflects v about the normal n: v - 2*(n·v)*n.
func (v Vec3) Reflect(n Vec3) Vec3 { return v.Sub(n.Mul(2 * n.Dot(v))) }

// Clamp clamps each component to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{clampf(v.X, lo, hi), clampf(v.Y, lo, hi), clampf(v.Z, lo, hi)}
}

func clampf(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// Axis identifies one of the three principal axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Component returns the value of v along the given axis.
func (v Vec3) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// WithComponent returns a copy of v with the given axis replaced by val.
func (v Vec3) WithComponent(a Axis, val float64) Vec3 {
	switch a {
	case AxisX:
		v.X = val
	case AxisY:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

// Min returns the componentwise minimum of a and b.
func Min(a, b Vec3) Vec3 {
	return Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

// Max returns the componentwise maximum of a and b.
func Max(a, b Vec3) Vec3 {
	return Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}
