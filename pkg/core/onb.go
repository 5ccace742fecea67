package core

import "math"

// ONB is an orthonormal basis used to build a local shading frame around a
// surface normal, so BSDFs can work in the canonical frame where the
// normal is (0, 0, 1).
type ONB struct {
	U, V, W Vec3
}

// NewONBFromW builds a basis whose W axis is n (normalized), picking an
// arbitrary stable U/V pair. The 0.9 threshold avoids choosing a helper
// axis nearly parallel to w, which would make the cross product unstable.
func NewONBFromW(n Vec3) ONB {
	w := n.Normalize()
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = Vec3{0, 1, 0}
	} else {
		a = Vec3{1, 0, 0}
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// ToWorld maps a vector from local (u,v,w) coordinates into world space.
func (b ONB) ToWorld(a Vec3) Vec3 {
	return b.U.Mul(a.X).Add(b.V.Mul(a.Y)).Add(b.W.Mul(a.Z))
}

// ToLocal maps a world-space vector into local (u,v,w) coordinates; the
// basis vectors are orthonormal so this is just a projection onto each.
func (b ONB) ToLocal(a Vec3) Vec3 {
	return Vec3{X: a.Dot(b.U), Y: a.Dot(b.V), Z: a.Dot(b.W)}
}
