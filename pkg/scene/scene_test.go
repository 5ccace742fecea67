package scene

import (
	"math"
	"testing"

	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/light"
	"github.com/evhansen/lumentrace/pkg/material"
	"github.com/evhansen/lumentrace/pkg/primitive"
	"github.com/evhansen/lumentrace/pkg/shape"
	"github.com/evhansen/lumentrace/pkg/texture"
)

func matteSphereAt(center core.Point3, radius core.Scalar) *primitive.Primitive {
	mat := material.NewMatte(texture.NewSolidColor(core.NewColor(1, 1, 1)), nil)
	return primitive.NewPrimitive(shape.NewSphere(radius), mat, core.Translate(center.Sub(core.Point3{})), nil)
}

func TestSceneIntersectFindsClosest(t *testing.T) {
	near := matteSphereAt(core.Point3{X: 0, Y: 0, Z: -3}, 1)
	far := matteSphereAt(core.Point3{X: 0, Y: 0, Z: -10}, 1)
	s := NewScene([]*primitive.Primitive{far, near}, nil)

	ray := core.NewRay(core.Point3{}, core.NewVec3(0, 0, -1))
	hit, ok := s.Intersect(&ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	want := core.Point3{X: 0, Y: 0, Z: -2}
	if hit.P.Sub(want).Length() > 1e-9 {
		t.Errorf("closest hit should be on the near sphere: got %v, want %v", hit.P, want)
	}
}

func TestSceneIntersectPStopsAtOcclusion(t *testing.T) {
	// A unit sphere at the origin occludes a shadow segment crossing it,
	// matching the spec's occlusion scenario.
	prim := matteSphereAt(core.Point3{}, 1)
	s := NewScene([]*primitive.Primitive{prim}, nil)

	ray := core.NewRay(core.Point3{X: -2, Y: 0, Z: 0}, core.NewVec3(1, 0, 0))
	ray.TMax = 4 // endpoint at (2, 0, 0)
	if !s.IntersectP(ray) {
		t.Error("shadow ray crossing the sphere should report occluded")
	}
}

func TestSceneWorldBoundsCombinesPrimitives(t *testing.T) {
	a := matteSphereAt(core.Point3{X: -5, Y: 0, Z: 0}, 1)
	b := matteSphereAt(core.Point3{X: 5, Y: 0, Z: 0}, 1)
	s := NewScene([]*primitive.Primitive{a, b}, nil)

	bounds := s.WorldBounds()
	if !bounds.Inside(core.Point3{X: -5, Y: 0, Z: 0}) || !bounds.Inside(core.Point3{X: 5, Y: 0, Z: 0}) {
		t.Errorf("world bounds %+v should contain both sphere centers", bounds)
	}
}

func TestScenePreprocessDistributesBoundsToLights(t *testing.T) {
	prim := matteSphereAt(core.Point3{}, 1)
	sky := light.NewConstantInfiniteLight(core.Identity(), core.NewColor(1, 1, 1), 1)
	s := NewScene([]*primitive.Primitive{prim}, []light.Light{sky})

	s.Preprocess()

	// Preprocess should have unlocked the infinite light: PdfLi must no
	// longer panic on the "used before Preprocess" invariant.
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("light should be preprocessed by scene.Preprocess, but panicked: %v", r)
		}
	}()
	_ = sky.PdfLi(core.SurfaceInteraction{P: core.Point3{}}, core.NewVec3(0, 0, 1))
}

func TestSceneIntersectEmptyMiss(t *testing.T) {
	s := NewScene(nil, nil)
	ray := core.NewRay(core.Point3{}, core.NewVec3(0, 0, -1))
	if _, ok := s.Intersect(&ray); ok {
		t.Error("an empty scene should never report a hit")
	}
	if math.IsInf(ray.TMax, 1) == false {
		t.Errorf("ray.TMax should remain unbounded on a miss, got %v", ray.TMax)
	}
}
