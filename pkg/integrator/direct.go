// Package integrator implements the direct-lighting MIS estimator and the
// full path-traced integrator built on top of it.
package integrator

import (
	"math"

	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/light"
	"github.com/evhansen/lumentrace/pkg/material"
)

const nonSpecular = material.All &^ material.Specular

// EstimateDirect computes a single MIS-weighted direct-lighting sample at
// a hit, combining a light-sampling strategy and a BSDF-sampling strategy
// weighted by the power heuristic. A point light is a delta distribution,
// so its light sample takes weight 1 and the BSDF strategy adds nothing.
func EstimateDirect(si core.SurfaceInteraction, bsdf *material.BSDF, uScattering core.Vec2, l light.Light, uLight core.Vec2, occluder core.Occluder) core.Color {
	ld := core.Black

	if sample, ok := l.SampleLi(si, uLight); ok {
		if sample.PDF > 0 && !sample.L.IsZero() {
			f := bsdf.F(si.Wo, sample.Wi, nonSpecular).Mul(sample.Wi.AbsDot(si.ShadingN))
			scatteringPDF := bsdf.PDF(si.Wo, sample.Wi, nonSpecular)
			if !f.IsZero() {
				if !sample.Vis.Unoccluded(occluder) {
					sample.L = core.Black
				} else {
					weight := core.Scalar(1)
					if _, isDelta := l.(*light.PointLight); !isDelta {
						weight = core.PowerHeuristic(1, sample.PDF, 1, scatteringPDF)
					}
					ld = ld.Add(f.MulVec(sample.L).Mul(weight / sample.PDF))
				}
			}
		}
	}

	if f, scatteringPDF, wi, sampledFlags, ok := bsdf.SampleF(si.Wo, uScattering, nonSpecular); ok {
		f = f.Mul(wi.AbsDot(si.ShadingN))
		sampledSpecular := sampledFlags.Matches(material.Specular)
		if !f.IsZero() && scatteringPDF > 0 {
			weight := core.Scalar(1)
			if !sampledSpecular {
				lightPDF := l.PdfLi(si, wi)
				if lightPDF == 0 {
					return ld
				}
				weight = core.PowerHeuristic(1, scatteringPDF, 1, lightPDF)
			}
			escapeRay := core.NewRayBounded(si.P, wi, 1e-4, math.Inf(1))
			li := l.Le(escapeRay)
			if !li.IsZero() {
				ld = ld.Add(f.MulVec(li).Mul(weight / scatteringPDF))
			}
		}
	}

	return ld
}

// UniformSampleAllLights iterates every light once, per spec's
// "UniformSampleAll" strategy.
func UniformSampleAllLights(si core.SurfaceInteraction, bsdf *material.BSDF, lights []light.Light, occluder core.Occluder, sampler *core.Sampler) core.Color {
	out := core.Black
	for _, l := range lights {
		out = out.Add(EstimateDirect(si, bsdf, sampler.Get2D(), l, sampler.Get2D(), occluder))
	}
	return out
}

// UniformSampleOneLight picks one light uniformly and scales by the light
// count, per spec's "UniformSampleOne" strategy.
func UniformSampleOneLight(si core.SurfaceInteraction, bsdf *material.BSDF, lights []light.Light, occluder core.Occluder, sampler *core.Sampler) core.Color {
	if len(lights) == 0 {
		return core.Black
	}
	idx := int(sampler.Get1D() * core.Scalar(len(lights)))
	if idx >= len(lights) {
		idx = len(lights) - 1
	}
	chosen := lights[idx]
	direct := EstimateDirect(si, bsdf, sampler.Get2D(), chosen, sampler.Get2D(), occluder)
	return direct.Mul(core.Scalar(len(lights)))
}
