package light

import (
	"math"
	"testing"

	"github.com/evhansen/lumentrace/pkg/core"
)

// TestPointLightDirectContribution matches the spec's point-light direct
// lighting scenario: a matte surface at the origin with normal (0,1,0),
// lit by a point light at (0,1,0) with unit intensity and brightness, one
// unit away at normal incidence. The sample's L/pdf should reduce to the
// light's raw intensity term, (1/1^2) per channel.
func TestPointLightDirectContribution(t *testing.T) {
	pl := NewPointLight(core.Translate(core.NewVec3(0, 1, 0)), core.NewColor(1, 1, 1), 1)

	si := core.SurfaceInteraction{P: core.Point3{}, N: core.NewVec3(0, 1, 0), ShadingN: core.NewVec3(0, 1, 0)}
	sample, ok := pl.SampleLi(si, core.Vec2{})
	if !ok {
		t.Fatal("point light should always be able to sample")
	}
	if sample.PDF != 1 {
		t.Errorf("a delta light's sample pdf should be 1 by convention, got %v", sample.PDF)
	}
	want := core.NewColor(1, 1, 1)
	if math.Abs(sample.L.X-want.X) > 1e-9 {
		t.Errorf("sample.L = %v, want %v (unit intensity at unit distance)", sample.L, want)
	}
	wantWi := core.NewVec3(0, 1, 0)
	if sample.Wi.Sub(wantWi).Length() > 1e-9 {
		t.Errorf("sample.Wi = %v, want %v", sample.Wi, wantWi)
	}
}

func TestPointLightInverseSquareFalloff(t *testing.T) {
	pl := NewPointLight(core.Translate(core.NewVec3(0, 2, 0)), core.NewColor(1, 1, 1), 1)
	si := core.SurfaceInteraction{P: core.Point3{}}
	sample, _ := pl.SampleLi(si, core.Vec2{})
	want := 1.0 / 4.0 // distance 2, 1/d^2
	if math.Abs(sample.L.X-want) > 1e-9 {
		t.Errorf("intensity at distance 2 = %v, want %v", sample.L.X, want)
	}
}

func TestPointLightHasNoContinuousDensity(t *testing.T) {
	pl := NewPointLight(core.Identity(), core.NewColor(1, 1, 1), 1)
	if pdf := pl.PdfLi(core.SurfaceInteraction{}, core.NewVec3(0, 1, 0)); pdf != 0 {
		t.Errorf("a delta light's PdfLi should always be 0, got %v", pdf)
	}
}

func TestPointLightLeIsZero(t *testing.T) {
	pl := NewPointLight(core.Identity(), core.NewColor(1, 1, 1), 1)
	if le := pl.Le(core.NewRay(core.Point3{}, core.NewVec3(0, 0, 1))); !le.IsZero() {
		t.Errorf("a point light should not contribute to escaping rays, got %v", le)
	}
}
