// Package render implements the pull-based pixel driver and the parallel
// tiled sweep that drives it over a full image.
package render

import (
	"github.com/evhansen/lumentrace/pkg/camera"
	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/scene"
)

// Integrator estimates incident radiance along a camera ray.
type Integrator interface {
	Li(ray core.Ray, scene *scene.Scene, sampler *core.Sampler) core.Color
}

// World is the pull interface a host (CLI, web server, anything) drives:
// construct it, call Preprocess once, then pull RenderPixel for any pixel
// in any order.
type World struct {
	Scene           *scene.Scene
	Camera          *camera.SimpleCamera
	Integrator      Integrator
	SamplesPerPixel int
	Seed            int64

	// Logger receives progress and diagnostic output (light preprocessing,
	// tile start/finish). A World with no Logger set discards it.
	Logger core.Logger

	preprocessed bool
}

// NewWorld builds a World ready for Preprocess.
func NewWorld(s *scene.Scene, cam *camera.SimpleCamera, integrator Integrator, samplesPerPixel int, seed int64) *World {
	return &World{
		Scene:           s,
		Camera:          cam,
		Integrator:      integrator,
		SamplesPerPixel: samplesPerPixel,
		Seed:            seed,
		Logger:          nopLogger{},
	}
}

// logger returns w.Logger, falling back to a no-op for a World built by hand
// (e.g. a zero-value World in a test) rather than through NewWorld.
func (w *World) logger() core.Logger {
	if w.Logger == nil {
		return nopLogger{}
	}
	return w.Logger
}

// Preprocess must run once before any RenderPixel call; it populates light
// bounds on the scene.
func (w *World) Preprocess() {
	w.Scene.Preprocess()
	w.preprocessed = true
	w.logger().Printf("lumentrace: preprocessed scene (%d primitives, %d lights, bounds %v)\n",
		len(w.Scene.Primitives), len(w.Scene.Lights), w.Scene.WorldBounds())
}

// RenderPixel implements the core's only pull interface: average
// SamplesPerPixel draws of the integrator over pixel (x, y), gamma-encode,
// and return RGBA8. Each pixel draws from its own deterministic sampler so
// a render is reproducible regardless of how pixels are partitioned across
// workers.
func (w *World) RenderPixel(x, y int) [4]byte {
	if !w.preprocessed {
		panic("lumentrace: World.RenderPixel called before Preprocess")
	}

	sampler := core.NewSampler(pixelSeed(w.Seed, x, y))

	accum := core.Black
	for i := 0; i < w.SamplesPerPixel; i++ {
		jitter := sampler.Get2D()
		jx, jy := jitter.X*2-1, jitter.Y*2-1
		ray := w.Camera.GenerateRay(x, y, jx, jy)
		accum = accum.Add(w.Integrator.Li(ray, w.Scene, sampler))
	}
	mean := accum.Mul(1 / core.Scalar(w.SamplesPerPixel))

	return core.ToRGBA8(mean)
}

// pixelSeed derives a deterministic per-pixel seed from a base seed and
// coordinates so samplers never collide across pixels or runs.
func pixelSeed(base int64, x, y int) int64 {
	return base ^ (int64(x) * 73856093) ^ (int64(y) * 19349663)
}
