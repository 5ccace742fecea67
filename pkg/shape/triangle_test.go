package shape

import (
	"math"
	"testing"

	"github.com/evhansen/lumentrace/pkg/core"
)

func unitUpTriangle() *Triangle {
	n := core.NewVec3(0, 0, 1)
	return NewTriangle(
		core.Point3{X: -1, Y: -1, Z: 0},
		core.Point3{X: 1, Y: -1, Z: 0},
		core.Point3{X: 0, Y: 1, Z: 0},
		n, n, n,
	)
}

func TestTriangleIntersectHitsFromAbove(t *testing.T) {
	tri := unitUpTriangle()
	ray := core.NewRay(core.Point3{X: 0, Y: 0, Z: 5}, core.NewVec3(0, 0, -1))

	si, ok := tri.Intersect(&ray)
	if !ok {
		t.Fatal("expected a hit through the triangle's interior")
	}
	if math.Abs(si.P.Z) > 1e-9 {
		t.Errorf("hit point should lie in the triangle's plane (z=0): got %v", si.P)
	}
	if si.N.Dot(core.NewVec3(0, 0, 1)) <= 0 {
		t.Errorf("normal should face the incoming ray's origin side: got %v", si.N)
	}
}

func TestTriangleIntersectMissesOutsideEdges(t *testing.T) {
	tri := unitUpTriangle()
	ray := core.NewRay(core.Point3{X: 5, Y: 5, Z: -5}, core.NewVec3(0, 0, 1))

	if _, ok := tri.Intersect(&ray); ok {
		t.Error("ray outside the triangle's footprint should miss")
	}
}

func TestTriangleSmoothNormalInterpolation(t *testing.T) {
	// Vary per-vertex normals so the smooth-shaded interpolated normal at
	// the centroid differs measurably from any single vertex's normal.
	tri := NewTriangle(
		core.Point3{X: -1, Y: -1, Z: 0},
		core.Point3{X: 1, Y: -1, Z: 0},
		core.Point3{X: 0, Y: 1, Z: 0},
		core.NewVec3(-0.3, 0, 1).Normalize(),
		core.NewVec3(0.3, 0, 1).Normalize(),
		core.NewVec3(0, 0.3, 1).Normalize(),
	)
	ray := core.NewRay(core.Point3{X: 0, Y: -0.33, Z: -5}, core.NewVec3(0, 0, 1))
	si, ok := tri.Intersect(&ray)
	if !ok {
		t.Fatal("expected a hit near the centroid")
	}
	if math.Abs(si.N.Length()-1) > 1e-9 {
		t.Errorf("interpolated normal should be renormalized to unit length, got length %v", si.N.Length())
	}
}

func TestTriangleAreaAndBounds(t *testing.T) {
	tri := unitUpTriangle()
	wantArea := 2.0 // base 2, height 2, area = 0.5*2*2 = 2
	if math.Abs(tri.Area()-wantArea) > 1e-9 {
		t.Errorf("Area = %v, want %v", tri.Area(), wantArea)
	}
	box := tri.BoundingBox()
	if box.Min.X != -1 || box.Max.X != 1 || box.Min.Y != -1 || box.Max.Y != 1 {
		t.Errorf("BoundingBox = %+v, want x,y in [-1,1]", box)
	}
}
