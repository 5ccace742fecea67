// Package material implements the BSDF composition and sampling layer: a
// bag of elementary reflection/transmission lobes evaluated in a local
// shading frame, plus the materials that populate that bag on a hit.
package material

import (
	"math"

	"github.com/evhansen/lumentrace/pkg/core"
)

// BxDFFlags tags a lobe's reflection/transmission class and roughness
// category so a BSDF can filter lobes by capability.
type BxDFFlags uint8

const (
	Reflection BxDFFlags = 1 << iota
	Transmission
	Diffuse
	Glossy
	Specular

	All = Diffuse | Glossy | Specular | Reflection | Transmission
)

// Matches reports whether f shares any bit with other.
func (f BxDFFlags) Matches(other BxDFFlags) bool { return f&other != 0 }

func sameHemisphere(w, wp core.Vec3) bool { return w.Z*wp.Z > 0 }

func absCosTheta(w core.Vec3) core.Scalar { return math.Abs(w.Z) }

// BxDF is a single scattering lobe, evaluated in local shading space where
// the surface normal is +Z.
type BxDF interface {
	Type() BxDFFlags

	// F returns the lobe's attenuation for a fixed pair of directions.
	F(wo, wi core.Vec3) core.Color

	// PDF returns the lobe's sampling density for wi given wo.
	PDF(wo, wi core.Vec3) core.Scalar

	// SampleF draws wi from the lobe's default sampling strategy, returning
	// the attenuation, its pdf, the sampled direction, and ok=false if the
	// lobe has nothing to contribute (e.g. backfacing).
	SampleF(wo core.Vec3, u core.Vec2) (f core.Color, pdf core.Scalar, wi core.Vec3, ok bool)
}

// cosineSampledBxDF implements the default SampleF shared by every lobe
// that scatters according to a cosine-weighted hemisphere distribution
// (only Lambertian does today, but the shape mirrors the source's default
// trait method so a future glossy lobe can embed it).
func cosineSampledBxDF(self BxDF, wo core.Vec3, u core.Vec2) (core.Color, core.Scalar, core.Vec3, bool) {
	wi := core.CosineSampleHemisphere(u)
	if wo.Z < 0 {
		wi.Z *= -1
	}
	pdf := self.PDF(wo, wi)
	f := self.F(wo, wi)
	return f, pdf, wi, true
}

// LambertianReflection is a perfectly diffuse reflective lobe: constant
// albedo, f = r/pi, cosine-weighted hemisphere sampling.
type LambertianReflection struct {
	R core.Color
}

// NewLambertianReflection builds a Lambertian lobe with reflectance r.
func NewLambertianReflection(r core.Color) *LambertianReflection {
	return &LambertianReflection{R: r}
}

// Type implements BxDF.
func (l *LambertianReflection) Type() BxDFFlags { return Diffuse | Reflection }

// F implements BxDF.
func (l *LambertianReflection) F(wo, wi core.Vec3) core.Color { return l.R.Mul(1 / math.Pi) }

// PDF implements BxDF: cosine-weighted density when wi is on the same side
// as wo, zero otherwise.
func (l *LambertianReflection) PDF(wo, wi core.Vec3) core.Scalar {
	if sameHemisphere(wo, wi) {
		return absCosTheta(wi) / math.Pi
	}
	return 0
}

// SampleF implements BxDF using the shared cosine-hemisphere default.
func (l *LambertianReflection) SampleF(wo core.Vec3, u core.Vec2) (core.Color, core.Scalar, core.Vec3, bool) {
	return cosineSampledBxDF(l, wo, u)
}
