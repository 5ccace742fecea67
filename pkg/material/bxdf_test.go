package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/evhansen/lumentrace/pkg/core"
)

func TestLambertianF(t *testing.T) {
	r := core.NewColor(0.5, 0.7, 0.9)
	l := NewLambertianReflection(r)
	want := r.Mul(1 / math.Pi)
	if got := l.F(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1)); got != want {
		t.Errorf("Lambertian.F = %v, want %v", got, want)
	}
}

func TestLambertianPDFZeroAcrossHemispheres(t *testing.T) {
	l := NewLambertianReflection(core.NewColor(1, 1, 1))
	wo := core.NewVec3(0, 0, 1)
	wiSame := core.NewVec3(0.3, 0, 0.9)
	wiOpposite := core.NewVec3(0.3, 0, -0.9)

	if pdf := l.PDF(wo, wiSame); pdf <= 0 {
		t.Errorf("PDF should be positive on the same hemisphere, got %v", pdf)
	}
	if pdf := l.PDF(wo, wiOpposite); pdf != 0 {
		t.Errorf("PDF should be zero across hemispheres, got %v", pdf)
	}
}

func TestLambertianEnergyConservation(t *testing.T) {
	albedo := core.NewColor(0.5, 0.7, 0.9)
	l := NewLambertianReflection(albedo)
	wo := core.NewVec3(0, 0, 1)
	f := l.F(wo, wo).Mul(math.Pi)
	if f.X > albedo.X+1e-12 || f.Y > albedo.Y+1e-12 || f.Z > albedo.Z+1e-12 {
		t.Errorf("Lambertian f*pi should never exceed albedo: f=%v albedo=%v", f, albedo)
	}
}

// TestLambertianHemisphericalIntegral Monte Carlo integrates f*cos(theta)
// over the hemisphere, which for a Lambertian lobe should recover r.
func TestLambertianHemisphericalIntegral(t *testing.T) {
	r := core.NewColor(0.8, 0.8, 0.8)
	l := NewLambertianReflection(r)
	wo := core.NewVec3(0, 0, 1)
	rnd := rand.New(rand.NewSource(7))

	const n = 20000
	sum := core.Black
	for i := 0; i < n; i++ {
		u := core.Vec2{X: rnd.Float64(), Y: rnd.Float64()}
		f, pdf, wi, ok := l.SampleF(wo, u)
		if !ok || pdf == 0 {
			continue
		}
		cosTheta := math.Abs(wi.Z)
		sum = sum.Add(f.Mul(cosTheta / pdf))
	}
	mean := sum.Mul(1 / core.Scalar(n))

	tolerance := 0.02
	if math.Abs(mean.X-r.X) > tolerance {
		t.Errorf("Monte Carlo hemispherical integral = %v, want ~%v (+/-%v)", mean, r, tolerance)
	}
}

func TestSameHemisphere(t *testing.T) {
	if !sameHemisphere(core.NewVec3(0, 0, 1), core.NewVec3(0.1, 0.1, 0.5)) {
		t.Error("vectors with matching Z sign should be in the same hemisphere")
	}
	if sameHemisphere(core.NewVec3(0, 0, 1), core.NewVec3(0.1, 0.1, -0.5)) {
		t.Error("vectors with opposing Z sign should not be in the same hemisphere")
	}
}
