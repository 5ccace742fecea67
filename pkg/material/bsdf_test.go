package material

import (
	"math"
	"testing"

	"github.com/evhansen/lumentrace/pkg/core"
)

func flatInteraction() core.SurfaceInteraction {
	return core.SurfaceInteraction{
		P:        core.Point3{},
		N:        core.NewVec3(0, 0, 1),
		ShadingN: core.NewVec3(0, 0, 1),
		Dpdu:     core.NewVec3(1, 0, 0),
	}
}

func TestBSDFWorldLocalRoundTrip(t *testing.T) {
	bsdf := NewBSDF(flatInteraction())
	vs := []core.Vec3{
		{0, 0, 1}, {1, 0, 0}, {0.3, -0.6, 0.9}, {-1, -1, -1},
	}
	for _, v := range vs {
		local := bsdf.WorldToLocal(v)
		got := bsdf.LocalToWorld(local)
		if math.Abs(got.X-v.X) > 1e-9 || math.Abs(got.Y-v.Y) > 1e-9 || math.Abs(got.Z-v.Z) > 1e-9 {
			t.Errorf("LocalToWorld(WorldToLocal(%v)) = %v, want %v", v, got, v)
		}
	}
}

func TestBSDFFSumsMatchingLobes(t *testing.T) {
	bsdf := NewBSDF(flatInteraction())
	bsdf.Add(NewLambertianReflection(core.NewColor(0.2, 0.2, 0.2)))
	bsdf.Add(NewLambertianReflection(core.NewColor(0.3, 0.3, 0.3)))

	wo := core.NewVec3(0, 0, 1)
	wi := core.NewVec3(0.1, 0, 0.9)
	got := bsdf.F(wo, wi, All)
	want := core.NewColor(0.5/math.Pi, 0.5/math.Pi, 0.5/math.Pi)
	if math.Abs(got.X-want.X) > 1e-9 {
		t.Errorf("F over two matching lobes should sum their contributions: got %v, want %v", got, want)
	}
}

func TestBSDFPDFAveragesNotProductsMatchingLobes(t *testing.T) {
	bsdf := NewBSDF(flatInteraction())
	single := NewBSDF(flatInteraction())

	bsdf.Add(NewLambertianReflection(core.NewColor(0.2, 0.2, 0.2)))
	bsdf.Add(NewLambertianReflection(core.NewColor(0.9, 0.9, 0.9)))
	single.Add(NewLambertianReflection(core.NewColor(0.5, 0.5, 0.5)))

	wo := core.NewVec3(0, 0, 1)
	wi := core.NewVec3(0.2, 0, 0.8)

	// Both Lambertian lobes share the same PDF formula regardless of
	// albedo, so averaging two identical PDFs must equal the PDF of one.
	got := bsdf.PDF(wo, wi, All)
	want := single.PDF(wo, wi, All)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PDF across matching lobes should average, not multiply: got %v, want %v", got, want)
	}
}

func TestBSDFFZeroWhenNoLobes(t *testing.T) {
	bsdf := NewBSDF(flatInteraction())
	if got := bsdf.F(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1), All); !got.IsZero() {
		t.Errorf("F with no lobes should be zero, got %v", got)
	}
	if got := bsdf.PDF(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1), All); got != 0 {
		t.Errorf("PDF with no lobes should be zero, got %v", got)
	}
}

func TestMatteZeroAlbedoHasNoLobes(t *testing.T) {
	m := NewMatte(constColor{}, nil)
	bsdf := m.ComputeScatteringFunctions(flatInteraction())
	if len(bsdf.Lobes) != 0 {
		t.Errorf("zero-albedo Matte should attach no lobes, got %d", len(bsdf.Lobes))
	}
}

// constColor is a minimal texture.ColorTexture stub returning black,
// avoiding a dependency on the texture package just for this one test.
type constColor struct{}

func (constColor) Eval(si core.SurfaceInteraction) core.Color { return core.Black }
