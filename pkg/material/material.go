package material

import (
	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/texture"
)

// Material populates a surface interaction's BSDF on a hit. Emission isn't
// modeled here: the environment light carries its own radiance on a miss,
// and area lights (a primitive's material also emitting) are a Non-goal.
type Material interface {
	ComputeScatteringFunctions(si core.SurfaceInteraction) *BSDF
}

// Matte is a purely diffuse (optionally rough, currently unsupported) surface.
// Given sigma = 0 it attaches a single Lambertian lobe; a nonzero sigma is
// reserved for an Oren-Nayar lobe the source stubs out and this port does
// not implement either (no test or scene in scope exercises it).
type Matte struct {
	Kd    texture.ColorTexture
	Sigma texture.ScalarTexture
}

// NewMatte builds a Matte material from an albedo texture and an optional
// roughness texture (nil means perfectly smooth).
func NewMatte(kd texture.ColorTexture, sigma texture.ScalarTexture) *Matte {
	return &Matte{Kd: kd, Sigma: sigma}
}

// ComputeScatteringFunctions implements Material.
func (m *Matte) ComputeScatteringFunctions(si core.SurfaceInteraction) *BSDF {
	bsdf := NewBSDF(si)
	r := m.Kd.Eval(si)
	if r.IsZero() {
		return bsdf
	}
	sig := core.Scalar(0)
	if m.Sigma != nil {
		sig = core.Clamp(m.Sigma.Eval(si), 0, 90)
	}
	if sig == 0 {
		bsdf.Add(NewLambertianReflection(r))
	}
	return bsdf
}

// ScatteringPDF returns the material's own hemispherical pdf for a
// direction, used by integrators that need it independent of a built BSDF
// (the path integrator here always goes through BSDF.PDF instead, but this
// mirrors the source's Material::scattering_pdf for parity with a future
// glossy/Oren-Nayar lobe that may want a material-level shortcut).
func (m *Matte) ScatteringPDF(wi core.Vec3, si core.SurfaceInteraction) core.Scalar {
	cosTheta := si.N.Dot(wi)
	if cosTheta > 0 {
		return core.CosineHemispherePDF(cosTheta)
	}
	return 0
}
