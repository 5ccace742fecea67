// Package light implements the delta point light and the constant
// environment light, their sampling/pdf contracts, and shadow-ray
// visibility testing.
package light

import "github.com/evhansen/lumentrace/pkg/core"

// Sample is the result of sampling incident radiance toward a point.
type Sample struct {
	L   core.Color
	Wi  core.Vec3
	PDF core.Scalar
	Vis VisibilityTester
}

// Light is a source of illumination.
type Light interface {
	// SampleLi samples an incident direction toward si.P, returning the
	// incident radiance, direction, pdf, and a visibility tester for the
	// shadow ray. ok is false if the light cannot illuminate this point.
	SampleLi(si core.SurfaceInteraction, u core.Vec2) (Sample, bool)

	// PdfLi returns the pdf of sampling direction wi toward si.P; zero for
	// delta lights (point lights have no continuous density).
	PdfLi(si core.SurfaceInteraction, wi core.Vec3) core.Scalar

	// Le returns the radiance an escaping ray picks up from this light;
	// zero for any light that isn't the environment.
	Le(ray core.Ray) core.Color

	// Power returns the light's total emitted power, used for some light
	// selection strategies (unused by uniform selection but kept for
	// parity with the source's Light::power).
	Power() core.Color

	// Preprocess is called once after the scene's world bounds are known,
	// letting an infinite light compute its bounding sphere. A no-op for
	// lights that don't need it.
	Preprocess(worldBounds core.AABB3)
}

// VisibilityTester checks whether a shadow ray between two points is
// unoccluded, nudging both ends inward by a small epsilon to avoid
// self-intersection at the endpoints.
type VisibilityTester struct {
	P0, P1 core.Point3
	Time   core.Scalar
}

const shadowEpsilon = 1e-3

// Unoccluded reports whether nothing blocks the segment from P0 to P1.
func (v VisibilityTester) Unoccluded(scene core.Occluder) bool {
	d := v.P1.Sub(v.P0)
	ray := core.Ray{
		Origin:    v.P0,
		Direction: d,
		TMin:      shadowEpsilon,
		TMax:      1 - shadowEpsilon,
		Time:      v.Time,
	}
	return !scene.IntersectP(ray)
}
