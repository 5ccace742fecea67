package core

import "math"

// AABB3 is an axis-aligned bounding box. The zero value is a degenerate
// box at the origin, not an empty one (Infinite gives the box containing
// all of space); NewAABB always restores the p_min <= p_max invariant even
// when given unsorted corners.
type AABB3 struct {
	Min, Max Point3
}

// Infinite returns an AABB that contains all of space.
func Infinite() AABB3 {
	inf := math.Inf(1)
	return AABB3{
		Min: Point3{-inf, -inf, -inf},
		Max: Point3{inf, inf, inf},
	}
}

// NewAABB builds an AABB from two corners in any order.
func NewAABB(p1, p2 Point3) AABB3 {
	return AABB3{
		Min: Point3{math.Min(p1.X, p2.X), math.Min(p1.Y, p2.Y), math.Min(p1.Z, p2.Z)},
		Max: Point3{math.Max(p1.X, p2.X), math.Max(p1.Y, p2.Y), math.Max(p1.Z, p2.Z)},
	}
}

// AABBFromPoint builds a degenerate AABB containing a single point.
func AABBFromPoint(p Point3) AABB3 { return AABB3{Min: p, Max: p} }

// Union returns the smallest AABB containing the box and a point.
func (b AABB3) Union(p Point3) AABB3 {
	return AABB3{
		Min: Point3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Max: Point3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	}
}

// Combine returns the smallest AABB containing both boxes.
func (b AABB3) Combine(o AABB3) AABB3 {
	return AABB3{
		Min: Point3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Point3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Overlaps reports whether two AABBs intersect.
func (b AABB3) Overlaps(o AABB3) bool {
	x := b.Max.X >= o.Min.X && b.Min.X <= o.Max.X
	y := b.Max.Y >= o.Min.Y && b.Min.Y <= o.Max.Y
	z := b.Max.Z >= o.Min.Z && b.Min.Z <= o.Max.Z
	return x && y && z
}

// Inside reports whether p lies within the box (inclusive of the boundary).
func (b AABB3) Inside(p Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Diagonal returns the vector from Min to Max.
func (b AABB3) Diagonal() Vec3 { return b.Max.Sub(b.Min) }

// SurfaceArea returns the box's surface area.
func (b AABB3) SurfaceArea() Scalar {
	d := b.Diagonal()
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// BoundingSphere returns a center and radius for a sphere fully containing
// the box; infinite lights use this to pick a finite sampling radius.
func (b AABB3) BoundingSphere() (center Point3, radius Scalar) {
	center = b.Min.Add(b.Max).Mul(0.5)
	if b.Inside(center) {
		radius = center.Sub(b.Max).Length()
	}
	return center, radius
}

// Hit performs the slab test against [tMin, tMax], dilating the far
// intersection by a conservative gamma bound so grazing hits on thin boxes
// are not rejected by rounding error.
func (b AABB3) Hit(ray Ray, tMin, tMax Scalar) bool {
	mins := [3]Scalar{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]Scalar{b.Max.X, b.Max.Y, b.Max.Z}
	origins := [3]Scalar{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dirs := [3]Scalar{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		invDir := 1 / dirs[axis]
		tNear := (mins[axis] - origins[axis]) * invDir
		tFar := (maxs[axis] - origins[axis]) * invDir
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}
		tFar *= 1 + 2*Gamma(3)
		if tNear > tMin {
			tMin = tNear
		}
		if tFar < tMax {
			tMax = tFar
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}
