package light

import (
	"math"

	"github.com/evhansen/lumentrace/pkg/core"
)

// PointLight is an idealized point source: a delta distribution in
// direction, intensity falling off with inverse-square distance.
type PointLight struct {
	LightToWorld core.Transform
	Intensity    core.Color
	Brightness   core.Scalar

	position core.Point3
}

// NewPointLight builds a point light at the origin of LightToWorld.
func NewPointLight(lightToWorld core.Transform, intensity core.Color, brightness core.Scalar) *PointLight {
	return &PointLight{
		LightToWorld: lightToWorld,
		Intensity:    intensity,
		Brightness:   brightness,
		position:     lightToWorld.Point(core.Point3{}),
	}
}

// SampleLi implements Light: the direction and distance to the light are
// fully determined, so pdf is 1 by convention rather than a continuous
// density (this is a delta light).
func (p *PointLight) SampleLi(si core.SurfaceInteraction, u core.Vec2) (Sample, bool) {
	d := p.position.Sub(si.P)
	distSq := d.LengthSquared()
	wi := d.Normalize()
	l := p.Intensity.Mul(p.Brightness / distSq)
	return Sample{
		L:   l,
		Wi:  wi,
		PDF: 1,
		Vis: VisibilityTester{P0: si.P, P1: p.position, Time: si.Time},
	}, true
}

// PdfLi implements Light: a delta light has zero continuous density.
func (p *PointLight) PdfLi(si core.SurfaceInteraction, wi core.Vec3) core.Scalar { return 0 }

// Le implements Light: a point light contributes nothing to escaping rays.
func (p *PointLight) Le(ray core.Ray) core.Color { return core.Black }

// Power implements Light.
func (p *PointLight) Power() core.Color { return p.Intensity.Mul(4 * math.Pi) }

// Preprocess implements Light as a no-op; point lights need no world bounds.
func (p *PointLight) Preprocess(worldBounds core.AABB3) {}
