// Package shape implements object-space geometric primitives: their
// intersection math, bounds, surface area, and uniform sampling. Shapes
// know nothing about material or lighting — that binding happens one layer
// up, in pkg/primitive.
package shape

import "github.com/evhansen/lumentrace/pkg/core"

// Shape is an object-space geometric primitive.
type Shape interface {
	// Intersect tests ray (already in object space) against the shape,
	// shrinking ray.TMax on a hit like the rest of the traversal pipeline.
	// ok is false on a miss; the interaction is otherwise fully populated
	// except for anything a Primitive fills in (material, shading BSDF).
	Intersect(ray *core.Ray) (si core.SurfaceInteraction, ok bool)

	// IntersectP is a cheaper any-hit test for occlusion queries.
	IntersectP(ray core.Ray) bool

	// BoundingBox returns the shape's bounds in its own object space.
	BoundingBox() core.AABB3

	// Area returns the shape's surface area, used to weight light sampling
	// when a shape backs an area light (deferred; retained for parity).
	Area() core.Scalar

	// Sample draws a point uniformly over the shape's surface, returning
	// the sampled interaction and the pdf with respect to area.
	Sample(u core.Vec2) (si core.SurfaceInteraction, pdf core.Scalar)
}
