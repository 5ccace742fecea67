package shape

import "github.com/evhansen/lumentrace/pkg/core"

// TriangleIndices names the three vertices of one face by index into a
// TriangleMesh's shared Positions/Normals arrays.
type TriangleIndices [3]int

// TriangleMesh is a container of triangles sharing vertex/normal storage.
// Intersect linear-scans every triangle; per spec this is intentionally
// black-box so a future acceleration structure (deferred, see DESIGN.md)
// can replace the scan without changing the Shape contract.
type TriangleMesh struct {
	Positions []core.Point3
	Normals   []core.Normal3
	Faces     []TriangleIndices

	bounds core.AABB3
}

// NewTriangleMesh builds a mesh from shared vertex arrays and face indices.
// Per spec §7, per-vertex normals are mandatory; a mesh without them must
// be rejected by the loader before it ever reaches this constructor.
func NewTriangleMesh(positions []core.Point3, normals []core.Normal3, faces []TriangleIndices) *TriangleMesh {
	m := &TriangleMesh{Positions: positions, Normals: normals, Faces: faces}
	m.bounds = core.Infinite()
	if len(faces) > 0 {
		first := faces[0]
		m.bounds = core.AABBFromPoint(positions[first[0]])
	} else {
		m.bounds = core.AABB3{}
	}
	for _, f := range faces {
		m.bounds = m.bounds.Union(positions[f[0]]).Union(positions[f[1]]).Union(positions[f[2]])
	}
	return m
}

// triangle builds a lightweight Triangle view over face i's vertices.
func (m *TriangleMesh) triangle(i int) *Triangle {
	f := m.Faces[i]
	p := [3]core.Point3{m.Positions[f[0]], m.Positions[f[1]], m.Positions[f[2]]}
	n := [3]core.Normal3{m.Normals[f[0]], m.Normals[f[1]], m.Normals[f[2]]}
	return &Triangle{Positions: &p, Normals: &n}
}

// Intersect implements Shape by linear-scanning faces, keeping the closest.
func (m *TriangleMesh) Intersect(ray *core.Ray) (core.SurfaceInteraction, bool) {
	var best core.SurfaceInteraction
	hitAny := false
	for i := range m.Faces {
		if si, ok := m.triangle(i).Intersect(ray); ok {
			best = si
			hitAny = true
		}
	}
	return best, hitAny
}

// IntersectP implements Shape.
func (m *TriangleMesh) IntersectP(ray core.Ray) bool {
	for i := range m.Faces {
		if m.triangle(i).IntersectP(ray) {
			return true
		}
	}
	return false
}

// BoundingBox implements Shape.
func (m *TriangleMesh) BoundingBox() core.AABB3 { return m.bounds }

// Area implements Shape: sum of face areas.
func (m *TriangleMesh) Area() core.Scalar {
	var total core.Scalar
	for i := range m.Faces {
		total += m.triangle(i).Area()
	}
	return total
}

// Sample implements Shape by picking a uniform random face (weighted only
// by count, not area) and sampling uniformly within it.
func (m *TriangleMesh) Sample(u core.Vec2) (core.SurfaceInteraction, core.Scalar) {
	idx := int(u.X * core.Scalar(len(m.Faces)))
	if idx >= len(m.Faces) {
		idx = len(m.Faces) - 1
	}
	si, pdf := m.triangle(idx).Sample(u)
	return si, pdf / core.Scalar(len(m.Faces))
}
