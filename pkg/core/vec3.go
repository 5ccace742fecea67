// Package core provides the scalar, vector, ray and transform primitives
// shared by every other package in the renderer.
package core

import (
	"fmt"
	"math"
)

// Scalar is the floating-point type used throughout the renderer.
type Scalar = float64

// Epsilon bounds the floating point error used to dilate conservative
// intersection tests.
const Epsilon Scalar = 1e-10

// Gamma bounds the accumulated rounding error of a sequence of n
// floating-point operations, per Higham's error analysis (as used by pbrt).
func Gamma(n Scalar) Scalar {
	return (n * Epsilon) / (1 - n*Epsilon)
}

// Vec3 is a 3-component tuple of Scalars. Point3 and Normal3 are the same
// storage; the distinction is purely in how a Transform applies to them.
type Vec3 struct {
	X, Y, Z Scalar
}

// Point3 is a position in space. Points translate under a Transform.
type Point3 = Vec3

// Normal3 is a surface normal. Normals transform by the inverse-transpose
// of a Transform, which is why they are never treated as a plain Vec3 when
// a Transform is applied.
type Normal3 = Vec3

// Vec2 is a 2-component tuple, used for UV coordinates and 2D samples.
type Vec2 struct {
	X, Y Scalar
}

// NewVec3 builds a Vec3 from components.
func NewVec3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// NewVec2 builds a Vec2 from components.
func NewVec2(x, y Scalar) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec3) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// MulVec returns the component-wise product of two vectors.
func (v Vec3) MulVec(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Negate returns the additive inverse of the vector.
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) Scalar { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// AbsDot returns the absolute value of the dot product.
func (v Vec3) AbsDot(o Vec3) Scalar { return math.Abs(v.Dot(o)) }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() Scalar { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Length returns the magnitude of the vector.
func (v Vec3) Length() Scalar { return math.Sqrt(v.LengthSquared()) }

// Normalize returns a unit vector in the same direction, or the zero vector
// if v is degenerate.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// FaceForward flips n to lie in the same hemisphere as ref.
func FaceForward(n, ref Vec3) Vec3 {
	if n.Dot(ref) < 0 {
		return n.Negate()
	}
	return n
}

// Clamp clamps every component of v to [lo, hi].
func (v Vec3) Clamp(lo, hi Scalar) Vec3 {
	return Vec3{
		X: math.Max(lo, math.Min(hi, v.X)),
		Y: math.Max(lo, math.Min(hi, v.Y)),
		Z: math.Max(lo, math.Min(hi, v.Z)),
	}
}

// MinComponent returns the smallest of the three components.
func (v Vec3) MinComponent() Scalar { return math.Min(v.X, math.Min(v.Y, v.Z)) }

// MaxComponent returns the largest of the three components.
func (v Vec3) MaxComponent() Scalar { return math.Max(v.X, math.Max(v.Y, v.Z)) }

// Lerp linearly interpolates between two scalars.
func Lerp(t, a, b Scalar) Scalar { return (1-t)*a + t*b }

// Clamp clamps a scalar to [lo, hi].
func Clamp(x, lo, hi Scalar) Scalar {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Quadratic solves at^2 + bt + c = 0 using the numerically stable form that
// reorders around the sign of b, returning the two roots with t0 <= t1.
func Quadratic(a, b, c Scalar) (t0, t1 Scalar, ok bool) {
	discrim := b*b - 4*a*c
	if discrim < 0 {
		return 0, 0, false
	}
	sqrtD := math.Sqrt(discrim)
	var q Scalar
	if b < 0 {
		q = -0.5 * (b - sqrtD)
	} else {
		q = -0.5 * (b + sqrtD)
	}
	t0, t1 = q/a, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}
