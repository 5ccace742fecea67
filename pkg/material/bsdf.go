package material

import "github.com/evhansen/lumentrace/pkg/core"

// BSDF composes the BxDF lobes attached to a hit into a single scattering
// function, carrying the local shading frame (s, t, ns) and the geometric
// normal ng used only to classify reflection vs. transmission.
type BSDF struct {
	Lobes []BxDF

	s, t, ns, ng core.Vec3
}

// NewBSDF builds an (initially empty) BSDF over a surface interaction's
// shading frame. dpdu is the shading tangent before normalization.
func NewBSDF(si core.SurfaceInteraction) *BSDF {
	ns := si.ShadingN
	s := si.Dpdu.Normalize()
	t := ns.Cross(s)
	return &BSDF{s: s, t: t, ns: ns, ng: si.N}
}

// Add appends a lobe to the bag.
func (b *BSDF) Add(bxdf BxDF) { b.Lobes = append(b.Lobes, bxdf) }

// WorldToLocal projects a world-space vector into the shading frame.
func (b *BSDF) WorldToLocal(v core.Vec3) core.Vec3 {
	return core.Vec3{X: b.s.Dot(v), Y: b.t.Dot(v), Z: b.ns.Dot(v)}
}

// LocalToWorld lifts a shading-frame vector back to world space.
func (b *BSDF) LocalToWorld(v core.Vec3) core.Vec3 {
	return core.Vec3{
		X: b.s.X*v.X + b.t.X*v.Y + b.ns.X*v.Z,
		Y: b.s.Y*v.X + b.t.Y*v.Y + b.ns.Y*v.Z,
		Z: b.s.Z*v.X + b.t.Z*v.Y + b.ns.Z*v.Z,
	}
}

func (b *BSDF) matching(flags BxDFFlags) []BxDF {
	var out []BxDF
	for _, l := range b.Lobes {
		if l.Type().Matches(flags) {
			out = append(out, l)
		}
	}
	return out
}

// F sums the attenuation of every lobe whose flags match and whose
// reflection/transmission class (classified by the geometric normal, not
// the shading normal) matches the pair of world-space directions.
func (b *BSDF) F(woW, wiW core.Vec3, flags BxDFFlags) core.Color {
	wo := b.WorldToLocal(woW)
	wi := b.WorldToLocal(wiW)
	reflect := wiW.Dot(b.ng)*woW.Dot(b.ng) > 0

	f := core.Black
	for _, bxdf := range b.Lobes {
		if !bxdf.Type().Matches(flags) {
			continue
		}
		isReflection := bxdf.Type().Matches(Reflection)
		if (reflect && isReflection) || (!reflect && bxdf.Type().Matches(Transmission)) {
			f = f.Add(bxdf.F(wo, wi))
		}
	}
	return f
}

// PDF averages the pdfs of every matching lobe. The source this is
// grounded on combines them with product() instead, which collapses to
// zero as soon as any lobe disagrees with another's direction; averaging
// is the correct combination for a lobe bag.
func (b *BSDF) PDF(woW, wiW core.Vec3, flags BxDFFlags) core.Scalar {
	matching := b.matching(flags)
	if len(matching) == 0 {
		return 0
	}
	wo := b.WorldToLocal(woW)
	wi := b.WorldToLocal(wiW)
	var sum core.Scalar
	for _, l := range matching {
		sum += l.PDF(wo, wi)
	}
	return sum / core.Scalar(len(matching))
}

// SampleF picks one matching lobe uniformly (by u.X), draws a direction
// from it, then — unless the chosen lobe is specular — combines that
// direction's pdf and attenuation across every other matching lobe, per
// spec's "general case" combination rule.
func (b *BSDF) SampleF(woW core.Vec3, u core.Vec2, flags BxDFFlags) (f core.Color, pdf core.Scalar, wiW core.Vec3, sampledFlags BxDFFlags, ok bool) {
	matching := b.matching(flags)
	if len(matching) == 0 {
		return core.Black, 0, core.Vec3{}, 0, false
	}
	comp := int(u.X * core.Scalar(len(matching)))
	if comp >= len(matching) {
		comp = len(matching) - 1
	}
	chosen := matching[comp]

	wo := b.WorldToLocal(woW)
	lf, lpdf, wi, sampleOk := chosen.SampleF(wo, u)
	if !sampleOk {
		return core.Black, 0, core.Vec3{}, 0, false
	}
	sampledFlags = chosen.Type()
	wiW = b.LocalToWorld(wi)

	if !sampledFlags.Matches(Specular) && len(matching) > 1 {
		reflect := wiW.Dot(b.ng)*woW.Dot(b.ng) > 0

		var pdfSum core.Scalar
		fSum := core.Black
		for _, l := range matching {
			pdfSum += l.PDF(wo, wi)
			isReflection := l.Type().Matches(Reflection)
			if (reflect && isReflection) || (!reflect && l.Type().Matches(Transmission)) {
				fSum = fSum.Add(l.F(wo, wi))
			}
		}
		return fSum, pdfSum / core.Scalar(len(matching)), wiW, sampledFlags, true
	}

	return lf, lpdf, wiW, sampledFlags, true
}
