// Package scene owns the primitive and light lists and performs linear
// top-level ray traversal (no acceleration structure; see DESIGN.md).
package scene

import (
	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/light"
	"github.com/evhansen/lumentrace/pkg/primitive"
)

// Scene owns the primitives and lights that make up a renderable world.
type Scene struct {
	Primitives []*primitive.Primitive
	Lights     []light.Light
}

// NewScene builds a scene from its primitives and lights.
func NewScene(primitives []*primitive.Primitive, lights []light.Light) *Scene {
	return &Scene{Primitives: primitives, Lights: lights}
}

// Intersect finds the closest-hit primitive along ray, shrinking
// ray.TMax to the closest distance found across every primitive tested.
func (s *Scene) Intersect(ray *core.Ray) (primitive.HitRecord, bool) {
	var closest primitive.HitRecord
	hitAny := false
	for _, p := range s.Primitives {
		if hr, ok := p.Intersect(ray); ok {
			closest = hr
			hitAny = true
		}
	}
	return closest, hitAny
}

// IntersectP implements core.Occluder: stops at the first primitive that
// reports any-hit, without finding the closest one.
func (s *Scene) IntersectP(ray core.Ray) bool {
	for _, p := range s.Primitives {
		if p.IntersectP(ray) {
			return true
		}
	}
	return false
}

// WorldBounds aggregates every primitive's world-space bounding box.
func (s *Scene) WorldBounds() core.AABB3 {
	if len(s.Primitives) == 0 {
		return core.AABB3{}
	}
	bounds := s.Primitives[0].WorldBound()
	for _, p := range s.Primitives[1:] {
		bounds = bounds.Combine(p.WorldBound())
	}
	return bounds
}

// Preprocess must run once before any render call. It computes the
// scene's world bounds and distributes them to every light, satisfying
// the invariant that an infinite light's bounding sphere is always
// populated before it is sampled.
func (s *Scene) Preprocess() {
	bounds := s.WorldBounds()
	for _, l := range s.Lights {
		l.Preprocess(bounds)
	}
}
