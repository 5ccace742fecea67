package shape

import (
	"math"
	"testing"

	"github.com/evhansen/lumentrace/pkg/core"
)

func twoTriangleQuad() *TriangleMesh {
	n := core.NewVec3(0, 0, 1)
	positions := []core.Point3{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: -1, Y: 1, Z: 0},
	}
	normals := []core.Normal3{n, n, n, n}
	faces := []TriangleIndices{{0, 1, 2}, {0, 2, 3}}
	return NewTriangleMesh(positions, normals, faces)
}

func TestTriangleMeshIntersectClosestFace(t *testing.T) {
	mesh := twoTriangleQuad()
	ray := core.NewRay(core.Point3{X: 0.5, Y: 0.5, Z: -5}, core.NewVec3(0, 0, 1))

	si, ok := mesh.Intersect(&ray)
	if !ok {
		t.Fatal("expected a hit inside the quad")
	}
	if math.Abs(si.P.Z) > 1e-9 {
		t.Errorf("hit should lie in the mesh plane, got %v", si.P)
	}
}

func TestTriangleMeshBoundsCoverAllVertices(t *testing.T) {
	mesh := twoTriangleQuad()
	box := mesh.BoundingBox()
	for _, p := range mesh.Positions {
		if !box.Inside(p) {
			t.Errorf("bounding box %+v should contain vertex %v", box, p)
		}
	}
}

func TestTriangleMeshAreaSumsFaces(t *testing.T) {
	mesh := twoTriangleQuad()
	want := 4.0 // a 2x2 quad split into two triangles
	if math.Abs(mesh.Area()-want) > 1e-9 {
		t.Errorf("Area = %v, want %v", mesh.Area(), want)
	}
}

func TestTriangleMeshIntersectPMatchesIntersect(t *testing.T) {
	mesh := twoTriangleQuad()
	hitRay := core.NewRay(core.Point3{X: 0, Y: 0, Z: -5}, core.NewVec3(0, 0, 1))
	missRay := core.NewRay(core.Point3{X: 5, Y: 5, Z: -5}, core.NewVec3(0, 0, 1))

	if !mesh.IntersectP(hitRay) {
		t.Error("IntersectP should report a hit matching Intersect")
	}
	if mesh.IntersectP(missRay) {
		t.Error("IntersectP should report a miss outside the quad")
	}
}
