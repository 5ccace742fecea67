package shape

import (
	"math"

	"github.com/evhansen/lumentrace/pkg/core"
)

// Sphere is centered at the object-space origin with radius R.
// ReverseOrientation flips the returned normal, for shapes placed inside
// out by a negative-determinant transform.
type Sphere struct {
	Radius             core.Scalar
	ReverseOrientation bool
}

// NewSphere builds a unit-centered sphere of the given radius.
func NewSphere(radius core.Scalar) *Sphere {
	return &Sphere{Radius: radius}
}

// Intersect implements Shape. Solves |o + t*d|^2 = r^2 with the
// Gauss-stable quadratic form, picks the smallest t within the ray's
// range, and derives UVs/partials per the spherical parameterization.
func (s *Sphere) Intersect(ray *core.Ray) (core.SurfaceInteraction, bool) {
	oc := ray.Origin
	a := ray.Direction.LengthSquared()
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	t0, t1, ok := core.Quadratic(a, b, c)
	if !ok {
		return core.SurfaceInteraction{}, false
	}

	t := t0
	if t < ray.TMin || t > ray.TMax {
		t = t1
		if t < ray.TMin || t > ray.TMax {
			return core.SurfaceInteraction{}, false
		}
	}
	ray.TMax = t

	// The spherical parameterization below is degenerate on the z axis, so
	// it works from a copy of the hit point nudged off the axis; the
	// returned point and normal use the exact hit point.
	pHit := ray.At(t)
	p := pHit
	if p.X == 0 && p.Y == 0 {
		p.X = 1e-5 * s.Radius
	}
	n := pHit.Normalize()
	if s.ReverseOrientation {
		n = n.Negate()
	}

	theta := math.Acos(core.Clamp(p.Z/s.Radius, -1, 1))
	phi := math.Atan2(p.X, p.Y)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	u := phi / (2 * math.Pi)
	v := theta / math.Pi

	invZ := 1 / math.Sqrt(p.X*p.X+p.Y*p.Y)
	cosPhi := p.X * invZ
	sinPhi := p.Y * invZ
	dpdu := core.Vec3{X: -2 * math.Pi * p.Y, Y: 2 * math.Pi * p.X, Z: 0}
	dpdv := core.Vec3{X: p.Z * cosPhi, Y: p.Z * sinPhi, Z: -s.Radius * math.Sin(theta)}.Mul(math.Pi)

	si := core.SurfaceInteraction{
		P:    pHit,
		Wo:   ray.Direction.Negate(),
		N:    n,
		UV:   core.Vec2{X: u, Y: v},
		Time: ray.Time,
		Dpdu: dpdu,
		Dpdv: dpdv,
	}
	si.SetShadingGeometry(dpdu, dpdv)
	return si, true
}

// IntersectP implements Shape.
func (s *Sphere) IntersectP(ray core.Ray) bool {
	a := ray.Direction.LengthSquared()
	b := 2 * ray.Direction.Dot(ray.Origin)
	c := ray.Origin.LengthSquared() - s.Radius*s.Radius
	t0, t1, ok := core.Quadratic(a, b, c)
	if !ok {
		return false
	}
	t := t0
	if t < ray.TMin || t > ray.TMax {
		t = t1
		if t < ray.TMin || t > ray.TMax {
			return false
		}
	}
	return true
}

// BoundingBox implements Shape.
func (s *Sphere) BoundingBox() core.AABB3 {
	r := core.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return core.NewAABB(r.Negate(), r)
}

// Area implements Shape.
func (s *Sphere) Area() core.Scalar { return 4 * math.Pi * s.Radius * s.Radius }

// Sample implements Shape: maps u uniformly over the unit sphere, scales
// to exactly Radius to avoid drift from repeated normalization.
func (s *Sphere) Sample(u core.Vec2) (core.SurfaceInteraction, core.Scalar) {
	pObj := core.UniformSampleSphere(u).Mul(s.Radius)
	n := pObj.Normalize()
	if s.ReverseOrientation {
		n = n.Negate()
	}
	pdf := 1 / s.Area()
	return core.SurfaceInteraction{P: pObj, N: n, ShadingN: n}, pdf
}
