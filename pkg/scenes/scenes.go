// Package scenes holds built-in scene constructors: small, self-contained
// worlds that exercise the renderer without a scene file, used by the CLI's
// default mode and by the package tests that check spec's end-to-end
// scenarios.
package scenes

import (
	"github.com/evhansen/lumentrace/pkg/camera"
	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/integrator"
	"github.com/evhansen/lumentrace/pkg/light"
	"github.com/evhansen/lumentrace/pkg/material"
	"github.com/evhansen/lumentrace/pkg/primitive"
	"github.com/evhansen/lumentrace/pkg/render"
	"github.com/evhansen/lumentrace/pkg/scene"
	"github.com/evhansen/lumentrace/pkg/shape"
	"github.com/evhansen/lumentrace/pkg/texture"
)

const (
	defaultWidth    = 64
	defaultHeight   = 40
	defaultSamples  = 16
	defaultMaxDepth = 8
	defaultSeed     = 1
)

// NewEmptySkyScene builds a scene with no geometry, only a constant
// environment light. Every pixel is the gamma-encoded sky color.
func NewEmptySkyScene(skyColor core.Color, brightness core.Scalar) *render.World {
	sky := light.NewConstantInfiniteLight(core.Identity(), skyColor, brightness)
	s := scene.NewScene(nil, []light.Light{sky})

	cam := camera.NewSimpleCamera(
		core.Point3{X: 10, Y: 10, Z: 10},
		core.Point3{},
		core.Vec3{X: 0, Y: 1, Z: 0},
		40,
		defaultWidth, defaultHeight,
	)

	w := render.NewWorld(s, cam, integrator.NewPathTracingIntegrator(defaultMaxDepth), defaultSamples, defaultSeed)
	w.Preprocess()
	return w
}

// NewSingleMatteSphereScene builds a scene with one matte sphere of the
// given radius and albedo, centered at the origin, under a constant sky,
// viewed from (10, 10, 10) looking at the origin with a 40 degree fov.
func NewSingleMatteSphereScene(radius core.Scalar, albedo core.Color, skyColor core.Color, skyBrightness core.Scalar) *render.World {
	mat := material.NewMatte(texture.NewSolidColor(albedo), nil)
	sph := shape.NewSphere(radius)
	prim := primitive.NewPrimitive(sph, mat, core.Identity(), nil)

	sky := light.NewConstantInfiniteLight(core.Identity(), skyColor, skyBrightness)
	s := scene.NewScene([]*primitive.Primitive{prim}, []light.Light{sky})

	cam := camera.NewSimpleCamera(
		core.Point3{X: 10, Y: 10, Z: 10},
		core.Point3{},
		core.Vec3{X: 0, Y: 1, Z: 0},
		40,
		defaultWidth, defaultHeight,
	)

	w := render.NewWorld(s, cam, integrator.NewPathTracingIntegrator(defaultMaxDepth), defaultSamples, defaultSeed)
	w.Preprocess()
	return w
}

// NewPointLitMatteScene builds a single matte plane-like sphere lit only by
// a point light, for exercising direct lighting away from the environment.
func NewPointLitMatteScene(albedo core.Color, lightPos core.Point3, intensity core.Color, brightness core.Scalar) *render.World {
	mat := material.NewMatte(texture.NewSolidColor(albedo), nil)
	sph := shape.NewSphere(3)
	prim := primitive.NewPrimitive(sph, mat, core.Identity(), nil)

	pl := light.NewPointLight(core.Translate(lightPos.Sub(core.Point3{})), intensity, brightness)
	s := scene.NewScene([]*primitive.Primitive{prim}, []light.Light{pl})

	cam := camera.NewSimpleCamera(
		core.Point3{X: 10, Y: 10, Z: 10},
		core.Point3{},
		core.Vec3{X: 0, Y: 1, Z: 0},
		40,
		defaultWidth, defaultHeight,
	)

	w := render.NewWorld(s, cam, integrator.NewPathTracingIntegrator(defaultMaxDepth), defaultSamples, defaultSeed)
	w.Preprocess()
	return w
}
