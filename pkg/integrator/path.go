package integrator

import (
	"math"
	"sync/atomic"

	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/material"
	"github.com/evhansen/lumentrace/pkg/scene"
)

// rouletteStartBounce is the bounce count after which Russian roulette may
// terminate a path early.
const rouletteStartBounce = 3

// rouletteMinQ floors the survival-termination probability so a path with
// near-unit throughput still has a small chance of being cut.
const rouletteMinQ = 0.05

// PathTracingIntegrator estimates the rendering equation along a camera
// ray by unidirectional path tracing with next-event estimation (via
// UniformSampleOneLight) at every diffuse bounce and Russian roulette
// termination once the path has run long enough to amortize the bias risk.
type PathTracingIntegrator struct {
	MaxDepth int

	// rouletteTrials/rouletteTerminations count every Russian-roulette
	// decision and how many of those killed a path, across every Li call
	// (Li runs concurrently across render workers, hence atomics). A host
	// can read RouletteTerminationRate after a render to report how much
	// of the sample budget roulette actually cut.
	rouletteTrials       int64
	rouletteTerminations int64
}

// NewPathTracingIntegrator builds an integrator that traces at most
// maxDepth bounces past the camera ray.
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RouletteTerminationRate reports the fraction of Russian-roulette decisions
// that terminated a path, across every Li call so far. Returns 0 if
// roulette was never reached.
func (p *PathTracingIntegrator) RouletteTerminationRate() float64 {
	trials := atomic.LoadInt64(&p.rouletteTrials)
	if trials == 0 {
		return 0
	}
	return float64(atomic.LoadInt64(&p.rouletteTerminations)) / float64(trials)
}

// Li estimates the radiance arriving at the camera along ray.
//
// Area-light emission is intentionally not added on a direct hit: the
// scene model built so far carries no emissive primitives, only the
// environment light's Le on a miss. A future area light would need a
// beta*Le(hit) term here, gated on bounces==0||specularBounce exactly as
// the environment term below is.
func (p *PathTracingIntegrator) Li(ray core.Ray, s *scene.Scene, sampler *core.Sampler) core.Color {
	outColor := core.Black
	beta := core.Vec3{X: 1, Y: 1, Z: 1}
	specularBounce := false
	bounces := 0

	for {
		hit, ok := s.Intersect(&ray)

		if bounces == 0 || specularBounce {
			if !ok {
				for _, l := range s.Lights {
					outColor = outColor.Add(beta.MulVec(l.Le(ray)))
				}
			}
		}

		if !ok {
			break
		}
		if bounces >= p.MaxDepth {
			break
		}

		if hit.Material == nil {
			ray = core.NewRayBounded(hit.P, ray.Direction, 1e-4, math.Inf(1))
			ray.Time = hit.Time
			continue
		}

		bsdf := hit.Material.ComputeScatteringFunctions(hit.SurfaceInteraction)
		if bsdf == nil || len(bsdf.Lobes) == 0 {
			ray = core.NewRayBounded(hit.P, ray.Direction, 1e-4, math.Inf(1))
			ray.Time = hit.Time
			continue
		}

		outColor = outColor.Add(beta.MulVec(UniformSampleOneLight(hit.SurfaceInteraction, bsdf, s.Lights, s, sampler)))

		f, pdf, wi, sampledFlags, sampleOk := bsdf.SampleF(hit.Wo, sampler.Get2D(), material.All)
		if !sampleOk || pdf == 0 || f.IsZero() {
			break
		}
		beta = beta.MulVec(f).Mul(wi.AbsDot(hit.ShadingN) / pdf)
		specularBounce = sampledFlags.Matches(material.Specular)

		ray = core.NewRayBounded(hit.P, wi, 1e-4, math.Inf(1))
		ray.Time = hit.Time

		if bounces > rouletteStartBounce {
			q := math.Max(rouletteMinQ, 1-beta.Y)
			atomic.AddInt64(&p.rouletteTrials, 1)
			if sampler.Get1D() < q {
				atomic.AddInt64(&p.rouletteTerminations, 1)
				break
			}
			beta = beta.Mul(1 / (1 - q))
		}

		bounces++
	}

	return outColor
}
