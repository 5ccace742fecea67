package light

import (
	"math"

	"github.com/evhansen/lumentrace/pkg/core"
)

// ConstantInfiniteLight is a radiometrically uniform environment: every
// escaping ray sees the same radiance regardless of direction. Per spec,
// importance sampling of a non-constant environment is a Non-goal; the
// environment distribution here is a trivial 1x1 table that reduces
// sampling to uniform-on-sphere.
type ConstantInfiniteLight struct {
	LightToWorld core.Transform
	Intensity    core.Color
	Brightness   core.Scalar

	distr *core.Distribution2D

	preprocessed bool
	worldCenter  core.Point3
	worldRadius  core.Scalar
}

// NewConstantInfiniteLight builds a constant environment light. Preprocess
// must be called before SampleLi/PdfLi/Power are used.
func NewConstantInfiniteLight(lightToWorld core.Transform, intensity core.Color, brightness core.Scalar) *ConstantInfiniteLight {
	return &ConstantInfiniteLight{
		LightToWorld: lightToWorld,
		Intensity:    intensity,
		Brightness:   brightness,
		distr:        core.NewDistribution2D([][]core.Scalar{{1}}),
	}
}

// Preprocess implements Light: records the scene's bounding sphere, which
// SampleLi/Power need to place the light's effective radius.
func (c *ConstantInfiniteLight) Preprocess(worldBounds core.AABB3) {
	c.worldCenter, c.worldRadius = worldBounds.BoundingSphere()
	c.preprocessed = true
}

func (c *ConstantInfiniteLight) mustBePreprocessed() {
	if !c.preprocessed {
		panic("lumentrace: ConstantInfiniteLight used before Preprocess")
	}
}

// Le implements Light: constant regardless of ray direction.
func (c *ConstantInfiniteLight) Le(ray core.Ray) core.Color {
	return c.Intensity.Mul(c.Brightness)
}

// Power implements Light.
func (c *ConstantInfiniteLight) Power() core.Color {
	c.mustBePreprocessed()
	pir2 := math.Pi * c.worldRadius * c.worldRadius
	return c.Intensity.Mul(pir2 * c.Brightness)
}

// SampleLi implements Light by mapping a 2D sample through the (trivial)
// environment distribution to a direction uniform over the sphere, then
// placing the shadow-ray endpoint just outside the scene's bounding sphere.
func (c *ConstantInfiniteLight) SampleLi(si core.SurfaceInteraction, u core.Vec2) (Sample, bool) {
	c.mustBePreprocessed()

	mapped, mapPdf := c.distr.SampleContinuous(u)
	if mapPdf == 0 {
		return Sample{}, false
	}

	theta := mapped.Y * math.Pi
	phi := mapped.X * 2 * math.Pi
	sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

	wi := c.LightToWorld.Vector(core.Vec3{
		X: sinTheta * cosPhi,
		Y: sinTheta * sinPhi,
		Z: cosTheta,
	})

	if sinTheta == 0 {
		return Sample{}, false
	}
	pdf := mapPdf / (2 * math.Pi * math.Pi * sinTheta)

	endpoint := si.P.Add(wi.Mul(2 * c.worldRadius))
	return Sample{
		L:   c.Intensity.Mul(c.Brightness),
		Wi:  wi,
		PDF: pdf,
		Vis: VisibilityTester{P0: si.P, P1: endpoint, Time: si.Time},
	}, true
}

// PdfLi implements Light, inverting SampleLi's direction mapping.
func (c *ConstantInfiniteLight) PdfLi(si core.SurfaceInteraction, wi core.Vec3) core.Scalar {
	c.mustBePreprocessed()

	local := c.LightToWorld.InverseVector(wi).Normalize()
	theta := math.Acos(core.Clamp(local.Z, -1, 1))
	phi := math.Atan2(local.Y, local.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	sinTheta := math.Sin(theta)
	if sinTheta == 0 {
		return 0
	}
	uv := core.Vec2{X: phi / (2 * math.Pi), Y: theta / math.Pi}
	return c.distr.PDF(uv) / (2 * math.Pi * math.Pi * sinTheta)
}
