package core

import "math"

// RayDifferential carries the auxiliary rays pbrt-style renderers thread
// through the pipeline to estimate a texture filter footprint. The core
// algorithm never reads it; it exists so a future texture-filtering pass
// has somewhere to put its data without changing the Ray shape.
type RayDifferential struct {
	RxOrigin, RyOrigin       Point3
	RxDirection, RyDirection Vec3
}

// Ray is a half-line of travel. TMin/TMax bound the valid parametric range
// and TMax is mutated during traversal: every shape that reports a hit
// shrinks it to the hit distance so later, farther primitives are skipped.
type Ray struct {
	Origin    Point3
	Direction Vec3
	TMin      Scalar
	TMax      Scalar
	Time      Scalar

	Diff *RayDifferential // nil unless differentials were requested
}

// NewRay builds a ray with the conventional [0, +Inf) range.
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: 0, TMax: math.Inf(1)}
}

// NewRayBounded builds a ray with an explicit valid parametric range.
func NewRayBounded(origin Point3, direction Vec3, tMin, tMax Scalar) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin, TMax: tMax}
}

// At evaluates the ray's position at parameter t.
func (r Ray) At(t Scalar) Point3 { return r.Origin.Add(r.Direction.Mul(t)) }
