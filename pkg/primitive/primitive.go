// Package primitive binds a shape to a material (and optionally an area
// light) under an object-to-world transform, and lifts intersections
// between object and world space.
package primitive

import (
	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/light"
	"github.com/evhansen/lumentrace/pkg/material"
	"github.com/evhansen/lumentrace/pkg/shape"
)

// HitRecord is what a Primitive hands back on intersection: the
// world-space interaction plus the material and (optional) area light
// that the integrator needs to evaluate it. Area lights are a deferred
// Non-goal (see SPEC_FULL.md §12); the field exists so the wiring is in
// place the day one is added.
type HitRecord struct {
	core.SurfaceInteraction
	Material  material.Material
	AreaLight light.Light
}

// Primitive is a shape placed in the world under a transform, with a
// material and optional area light.
type Primitive struct {
	Shape         shape.Shape
	Material      material.Material
	AreaLight     light.Light // nil unless this primitive emits
	ObjectToWorld core.Transform

	transformSwaps bool
}

// NewPrimitive binds a shape, material, transform and optional area light.
func NewPrimitive(s shape.Shape, m material.Material, objectToWorld core.Transform, areaLight light.Light) *Primitive {
	return &Primitive{
		Shape:          s,
		Material:       m,
		AreaLight:      areaLight,
		ObjectToWorld:  objectToWorld,
		transformSwaps: objectToWorld.SwapsHandedness(),
	}
}

// Intersect transforms the ray into object space, delegates to the shape,
// propagates the shrunk t_max back to the world-space ray, and lifts the
// resulting interaction back to world space.
func (p *Primitive) Intersect(ray *core.Ray) (HitRecord, bool) {
	objRay := p.ObjectToWorld.InverseRay(*ray)
	objRay.TMax = ray.TMax

	si, ok := p.Shape.Intersect(&objRay)
	ray.TMax = objRay.TMax
	if !ok {
		return HitRecord{}, false
	}

	worldSI := core.SurfaceInteraction{
		P:        p.ObjectToWorld.Point(si.P),
		Wo:       p.ObjectToWorld.Vector(si.Wo),
		N:        p.ObjectToWorld.Normal(si.N).Normalize(),
		UV:       si.UV,
		Time:     si.Time,
		Dpdu:     p.ObjectToWorld.Vector(si.Dpdu),
		Dpdv:     p.ObjectToWorld.Vector(si.Dpdv),
		ShadingN: p.ObjectToWorld.Normal(si.ShadingN).Normalize(),
	}
	if p.transformSwaps {
		worldSI.N = worldSI.N.Negate()
		worldSI.ShadingN = worldSI.ShadingN.Negate()
	}

	return HitRecord{SurfaceInteraction: worldSI, Material: p.Material, AreaLight: p.AreaLight}, true
}

// IntersectP is a cheaper any-hit test for occlusion queries.
func (p *Primitive) IntersectP(ray core.Ray) bool {
	objRay := p.ObjectToWorld.InverseRay(ray)
	return p.Shape.IntersectP(objRay)
}

// WorldBound returns the primitive's bounds transformed into world space.
func (p *Primitive) WorldBound() core.AABB3 {
	return p.ObjectToWorld.AABB(p.Shape.BoundingBox())
}
