package shape

import "github.com/evhansen/lumentrace/pkg/core"

// Triangle is a single triangle referencing shared position/normal arrays,
// so a TriangleMesh can hold thousands without duplicating vertex data.
type Triangle struct {
	Positions          *[3]core.Point3
	Normals            *[3]core.Normal3
	ReverseOrientation bool
}

// NewTriangle builds a triangle from three explicit vertex positions and
// normals (no shared storage); convenient for tests and small hand-built
// scenes that don't go through a TriangleMesh.
func NewTriangle(pa, pb, pc core.Point3, na, nb, nc core.Normal3) *Triangle {
	p := [3]core.Point3{pa, pb, pc}
	n := [3]core.Normal3{na, nb, nc}
	return &Triangle{Positions: &p, Normals: &n}
}

// Intersect implements Shape using the Möller-Trumbore parametric test.
func (t *Triangle) Intersect(ray *core.Ray) (core.SurfaceInteraction, bool) {
	pa, pb, pc := t.Positions[0], t.Positions[1], t.Positions[2]
	e0 := pb.Sub(pa)
	e1 := pc.Sub(pa)

	s0 := ray.Direction.Cross(e1)
	div := s0.Dot(e0)
	if div == 0 {
		return core.SurfaceInteraction{}, false
	}
	invDiv := 1 / div

	d0 := ray.Origin.Sub(pa)
	beta := d0.Dot(s0) * invDiv
	if beta < 0 || beta > 1 {
		return core.SurfaceInteraction{}, false
	}

	s1 := d0.Cross(e0)
	gamma := ray.Direction.Dot(s1) * invDiv
	if gamma < 0 || beta+gamma > 1 {
		return core.SurfaceInteraction{}, false
	}

	tHit := e1.Dot(s1) * invDiv
	if tHit < ray.TMin || tHit > ray.TMax {
		return core.SurfaceInteraction{}, false
	}
	ray.TMax = tHit

	alpha := 1 - beta - gamma
	na, nb, nc := t.Normals[0], t.Normals[1], t.Normals[2]
	n := na.Mul(alpha).Add(nb.Mul(beta)).Add(nc.Mul(gamma)).Normalize()
	if t.ReverseOrientation {
		n = n.Negate()
	}

	si := core.SurfaceInteraction{
		P:        ray.At(tHit),
		Wo:       ray.Direction.Negate(),
		N:        n,
		ShadingN: n,
		UV:       core.Vec2{},
		Time:     ray.Time,
		Dpdu:     e0,
		Dpdv:     e1,
	}
	return si, true
}

// IntersectP implements Shape as a cheaper any-hit test.
func (t *Triangle) IntersectP(ray core.Ray) bool {
	pa, pb, pc := t.Positions[0], t.Positions[1], t.Positions[2]
	e0 := pb.Sub(pa)
	e1 := pc.Sub(pa)

	s0 := ray.Direction.Cross(e1)
	div := s0.Dot(e0)
	if div == 0 {
		return false
	}
	invDiv := 1 / div

	d0 := ray.Origin.Sub(pa)
	beta := d0.Dot(s0) * invDiv
	if beta < 0 || beta > 1 {
		return false
	}

	s1 := d0.Cross(e0)
	gamma := ray.Direction.Dot(s1) * invDiv
	if gamma < 0 || beta+gamma > 1 {
		return false
	}

	tHit := e1.Dot(s1) * invDiv
	return tHit >= ray.TMin && tHit <= ray.TMax
}

// BoundingBox implements Shape.
func (t *Triangle) BoundingBox() core.AABB3 {
	return core.NewAABB(t.Positions[0], t.Positions[1]).Union(t.Positions[2])
}

// Area implements Shape.
func (t *Triangle) Area() core.Scalar {
	pa, pb, pc := t.Positions[0], t.Positions[1], t.Positions[2]
	return 0.5 * pb.Sub(pa).Cross(pc.Sub(pa)).Length()
}

// Sample implements Shape via the standard uniform-barycentric mapping.
func (t *Triangle) Sample(u core.Vec2) (core.SurfaceInteraction, core.Scalar) {
	b := core.UniformSampleTriangle(u)
	pa, pb, pc := t.Positions[0], t.Positions[1], t.Positions[2]
	p := pa.Mul(b.X).Add(pb.Mul(b.Y)).Add(pc.Mul(1 - b.X - b.Y))
	na, nb, nc := t.Normals[0], t.Normals[1], t.Normals[2]
	n := na.Mul(b.X).Add(nb.Mul(b.Y)).Add(nc.Mul(1 - b.X - b.Y)).Normalize()
	pdf := 1 / t.Area()
	return core.SurfaceInteraction{P: p, N: n, ShadingN: n}, pdf
}
