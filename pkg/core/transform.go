package core

import "math"

// Transform is a rigid or affine change of coordinate frame, carried as a
// matched forward/inverse pair so the inverse never needs recomputing on
// the hot path: points, vectors, normals, rays and AABBs each transform
// differently, which is why a bare Matrix4 is never exposed as "the"
// transform of a shape.
type Transform struct {
	Forward, Inverse Matrix4
}

// Identity is the no-op transform.
func Identity() Transform {
	return Transform{Forward: Identity4(), Inverse: Identity4()}
}

// NewTransform pairs a forward matrix with its caller-supplied inverse.
func NewTransform(forward, inverse Matrix4) Transform {
	return Transform{Forward: forward, Inverse: inverse}
}

// NewTransformFromForward inverts forward, ok is false if it is singular.
func NewTransformFromForward(forward Matrix4) (Transform, bool) {
	inv, ok := forward.Inverse()
	if !ok {
		return Transform{}, false
	}
	return Transform{Forward: forward, Inverse: inv}, true
}

// Inverted swaps the forward and inverse matrices, turning a transform into
// its own inverse.
func (t Transform) Inverted() Transform {
	return Transform{Forward: t.Inverse, Inverse: t.Forward}
}

// Compose returns the transform equivalent to applying o first and then t
// (matrix convention: the forward matrix is t.Forward * o.Forward).
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		Forward: t.Forward.Mul(o.Forward),
		Inverse: o.Inverse.Mul(t.Inverse),
	}
}

// Translate builds a translation transform.
func Translate(delta Vec3) Transform {
	f := Identity4()
	f[0][3], f[1][3], f[2][3] = delta.X, delta.Y, delta.Z
	inv := Identity4()
	inv[0][3], inv[1][3], inv[2][3] = -delta.X, -delta.Y, -delta.Z
	return Transform{Forward: f, Inverse: inv}
}

// Scale builds a non-uniform scaling transform.
func Scale(s Vec3) Transform {
	f := Identity4()
	f[0][0], f[1][1], f[2][2] = s.X, s.Y, s.Z
	inv := Identity4()
	inv[0][0], inv[1][1], inv[2][2] = 1/s.X, 1/s.Y, 1/s.Z
	return Transform{Forward: f, Inverse: inv}
}

// RotateX builds a rotation of theta radians about the X axis.
func RotateX(theta Scalar) Transform {
	sinT, cosT := math.Sin(theta), math.Cos(theta)
	f := Identity4()
	f[1][1], f[1][2] = cosT, -sinT
	f[2][1], f[2][2] = sinT, cosT
	return Transform{Forward: f, Inverse: f.Transpose()}
}

// RotateY builds a rotation of theta radians about the Y axis.
func RotateY(theta Scalar) Transform {
	sinT, cosT := math.Sin(theta), math.Cos(theta)
	f := Identity4()
	f[0][0], f[0][2] = cosT, sinT
	f[2][0], f[2][2] = -sinT, cosT
	return Transform{Forward: f, Inverse: f.Transpose()}
}

// RotateZ builds a rotation of theta radians about the Z axis.
func RotateZ(theta Scalar) Transform {
	sinT, cosT := math.Sin(theta), math.Cos(theta)
	f := Identity4()
	f[0][0], f[0][1] = cosT, -sinT
	f[1][0], f[1][1] = sinT, cosT
	return Transform{Forward: f, Inverse: f.Transpose()}
}

// LookAt builds the camera-to-world transform for an eye at pos looking
// toward look with the given up hint. Camera space is right-handed with -Z
// mapped to the viewing direction.
func LookAt(pos, look Point3, up Vec3) Transform {
	dir := look.Sub(pos).Normalize()
	right := dir.Cross(up.Normalize()).Normalize()
	newUp := right.Cross(dir)

	f := Identity4()
	f[0][0], f[0][1], f[0][2], f[0][3] = right.X, newUp.X, -dir.X, pos.X
	f[1][0], f[1][1], f[1][2], f[1][3] = right.Y, newUp.Y, -dir.Y, pos.Y
	f[2][0], f[2][1], f[2][2], f[2][3] = right.Z, newUp.Z, -dir.Z, pos.Z

	inv, ok := f.Inverse()
	if !ok {
		inv = Identity4()
	}
	return Transform{Forward: f, Inverse: inv}
}

// RotateQuaternion builds a rotation transform from a unit quaternion
// (x, y, z, w), the representation glTF node rotations are stored in.
func RotateQuaternion(x, y, z, w Scalar) Transform {
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	f := Identity4()
	f[0][0], f[0][1], f[0][2] = 1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy)
	f[1][0], f[1][1], f[1][2] = 2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx)
	f[2][0], f[2][1], f[2][2] = 2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy)

	return Transform{Forward: f, Inverse: f.Transpose()}
}

func mulPoint(m Matrix4, p Point3) Point3 {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	if w == 1 {
		return Point3{x, y, z}
	}
	return Point3{x / w, y / w, z / w}
}

func mulVector(m Matrix4, v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Point transforms a position.
func (t Transform) Point(p Point3) Point3 { return mulPoint(t.Forward, p) }

// InversePoint transforms a position by the inverse.
func (t Transform) InversePoint(p Point3) Point3 { return mulPoint(t.Inverse, p) }

// Vector transforms a direction (no translation).
func (t Transform) Vector(v Vec3) Vec3 { return mulVector(t.Forward, v) }

// InverseVector transforms a direction by the inverse.
func (t Transform) InverseVector(v Vec3) Vec3 { return mulVector(t.Inverse, v) }

// Normal transforms a surface normal by the inverse-transpose, which is why
// it uses the *inverse* matrix without transposing t itself.
func (t Transform) Normal(n Normal3) Normal3 {
	m := t.Inverse
	return Vec3{
		X: m[0][0]*n.X + m[1][0]*n.Y + m[2][0]*n.Z,
		Y: m[0][1]*n.X + m[1][1]*n.Y + m[2][1]*n.Z,
		Z: m[0][2]*n.X + m[1][2]*n.Y + m[2][2]*n.Z,
	}
}

// InverseNormal transforms a normal by the forward-transpose.
func (t Transform) InverseNormal(n Normal3) Normal3 {
	m := t.Forward
	return Vec3{
		X: m[0][0]*n.X + m[1][0]*n.Y + m[2][0]*n.Z,
		Y: m[0][1]*n.X + m[1][1]*n.Y + m[2][1]*n.Z,
		Z: m[0][2]*n.X + m[1][2]*n.Y + m[2][2]*n.Z,
	}
}

// Ray transforms a ray's origin and direction, leaving its parametric range
// and differentials untouched.
func (t Transform) Ray(r Ray) Ray {
	r.Origin = t.Point(r.Origin)
	r.Direction = t.Vector(r.Direction)
	return r
}

// InverseRay transforms a ray by the inverse.
func (t Transform) InverseRay(r Ray) Ray {
	r.Origin = t.InversePoint(r.Origin)
	r.Direction = t.InverseVector(r.Direction)
	return r
}

// AABB transforms a bounding box by transforming all eight corners and
// taking their union; this is a loose bound when the transform rotates the
// box, but always conservative.
func (t Transform) AABB(b AABB3) AABB3 {
	corners := [8]Point3{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z}, {b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z}, {b.Max.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Max.Z}, {b.Max.X, b.Max.Y, b.Max.Z},
	}
	ret := AABBFromPoint(t.Point(corners[0]))
	for _, c := range corners[1:] {
		ret = ret.Union(t.Point(c))
	}
	return ret
}

// SwapsHandedness reports whether the transform flips orientation (negative
// determinant of the upper-left 3x3), which matters for normal flipping on
// reflected geometry.
func (t Transform) SwapsHandedness() bool {
	m := t.Forward
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	return det < 0
}
