package core

import (
	"math"
	"sort"
)

// PowerHeuristic implements the power heuristic (beta = 2) for multiple
// importance sampling, combining an nf-sample estimate at fPdf with an
// ng-sample estimate at gPdf.
func PowerHeuristic(nf int, fPdf Scalar, ng int, gPdf Scalar) Scalar {
	if fPdf == 0 && gPdf == 0 {
		return 0
	}
	f := Scalar(nf) * fPdf
	g := Scalar(ng) * gPdf
	return (f * f) / (f*f + g*g)
}

// BalanceHeuristic implements the balance heuristic for multiple
// importance sampling.
func BalanceHeuristic(nf int, fPdf Scalar, ng int, gPdf Scalar) Scalar {
	if fPdf == 0 && gPdf == 0 {
		return 0
	}
	f := Scalar(nf) * fPdf
	g := Scalar(ng) * gPdf
	return f / (f + g)
}

// Distribution1D is a piecewise-constant function over [0, 1) with a CDF
// built for O(log n) inverse-transform sampling.
type Distribution1D struct {
	Func    []Scalar
	CDF     []Scalar
	FuncInt Scalar
}

// NewDistribution1D builds the CDF of f and normalizes it. When f
// integrates to zero the distribution falls back to uniform.
func NewDistribution1D(f []Scalar) *Distribution1D {
	n := len(f)
	fn := make([]Scalar, n)
	copy(fn, f)

	cdf := make([]Scalar, n+1)
	for i := 1; i <= n; i++ {
		cdf[i] = cdf[i-1] + fn[i-1]/Scalar(n)
	}

	funcInt := cdf[n]
	if funcInt == 0 {
		for i := 1; i <= n; i++ {
			cdf[i] = Scalar(i) / Scalar(n)
		}
	} else {
		for i := 1; i <= n; i++ {
			cdf[i] /= funcInt
		}
	}
	return &Distribution1D{Func: fn, CDF: cdf, FuncInt: funcInt}
}

// Count returns the number of step function segments.
func (d *Distribution1D) Count() int { return len(d.Func) }

// findInterval returns the largest offset such that d.CDF[offset] <= u,
// clamped to [0, Count()-1]. A linear scan for the first entry satisfying
// that inequality always lands on offset 0 (CDF[0] is always 0), so this
// binary-searches for the upper bound instead.
func (d *Distribution1D) findInterval(u Scalar) int {
	n := len(d.CDF)
	i := sort.Search(n, func(i int) bool { return d.CDF[i] > u })
	offset := i - 1
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.Func)-1 {
		offset = len(d.Func) - 1
	}
	return offset
}

// SampleDiscrete maps a uniform sample to one of the n segments, weighted
// by Func, returning the probability of selecting that segment and a
// remapped uniform sample usable for further sampling within the segment.
func (d *Distribution1D) SampleDiscrete(u Scalar) (offset int, pdf, uRemapped Scalar) {
	offset = d.findInterval(u)
	pdf = d.DiscretePDF(offset)
	denom := d.CDF[offset+1] - d.CDF[offset]
	if denom > 0 {
		uRemapped = (u - d.CDF[offset]) / denom
	}
	return offset, pdf, uRemapped
}

// DiscretePDF returns the probability of SampleDiscrete selecting index.
func (d *Distribution1D) DiscretePDF(index int) Scalar {
	return d.Func[index] / (d.FuncInt * Scalar(d.Count()))
}

// SampleContinuous maps a uniform sample to a point in [0, 1), along with
// the pdf of that point and the segment it fell in.
func (d *Distribution1D) SampleContinuous(u Scalar) (x, pdf Scalar, offset int) {
	offset = d.findInterval(u)
	du := u - d.CDF[offset]
	if denom := d.CDF[offset+1] - d.CDF[offset]; denom > 0 {
		du /= denom
	}
	pdf = d.Func[offset] / d.FuncInt
	return (Scalar(offset) + du) / Scalar(d.Count()), pdf, offset
}

// Distribution2D samples a piecewise-constant 2D function by sampling a
// marginal distribution over rows, then a conditional distribution within
// the chosen row.
type Distribution2D struct {
	conditionalV []*Distribution1D
	marginal     *Distribution1D
}

// NewDistribution2D builds a 2D distribution from a row-major function
// table with nv rows of nu samples each.
func NewDistribution2D(data [][]Scalar) *Distribution2D {
	conditionalV := make([]*Distribution1D, len(data))
	marginalFunc := make([]Scalar, len(data))
	for v, row := range data {
		conditionalV[v] = NewDistribution1D(row)
		marginalFunc[v] = conditionalV[v].FuncInt
	}
	return &Distribution2D{
		conditionalV: conditionalV,
		marginal:     NewDistribution1D(marginalFunc),
	}
}

// SampleContinuous maps a 2D uniform sample to a point in [0,1)^2 and its pdf.
func (d *Distribution2D) SampleContinuous(u Vec2) (p Vec2, pdf Scalar) {
	d1, pdf1, v := d.marginal.SampleContinuous(u.Y)
	d0, pdf0, _ := d.conditionalV[v].SampleContinuous(u.X)
	return Vec2{X: d0, Y: d1}, pdf0 * pdf1
}

// PDF returns the pdf of point p under the 2D distribution.
func (d *Distribution2D) PDF(p Vec2) Scalar {
	iu := int(Clamp(p.X*Scalar(d.conditionalV[0].Count()), 0, Scalar(d.conditionalV[0].Count())-1))
	iv := int(Clamp(p.Y*Scalar(d.marginal.Count()), 0, Scalar(d.marginal.Count())-1))
	return d.conditionalV[iv].Func[iu] / d.marginal.FuncInt
}

// UniformSampleHemisphere maps a 2D uniform sample to a direction uniform
// over the hemisphere around +Z.
func UniformSampleHemisphere(u Vec2) Vec3 {
	z := u.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	return Vec3{r * math.Cos(phi), r * math.Sin(phi), z}
}

// UniformHemispherePDF is the constant pdf of UniformSampleHemisphere.
func UniformHemispherePDF() Scalar { return 1 / (2 * math.Pi) }

// UniformSampleSphere maps a 2D uniform sample to a direction uniform over
// the full sphere.
func UniformSampleSphere(u Vec2) Vec3 {
	z := 1 - 2*u.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	return Vec3{r * math.Cos(phi), r * math.Sin(phi), z}
}

// UniformSpherePDF is the constant pdf of UniformSampleSphere.
func UniformSpherePDF() Scalar { return 1 / (4 * math.Pi) }

// UniformSampleDisk maps a 2D uniform sample to a point on the unit disk
// (not area-preserving near the origin; prefer ConcentricSampleDisk).
func UniformSampleDisk(u Vec2) Vec2 {
	r := math.Sqrt(u.X)
	theta := 2 * math.Pi * u.Y
	return Vec2{r * math.Cos(theta), r * math.Sin(theta)}
}

// ConcentricSampleDisk maps a 2D uniform sample to a point on the unit
// disk using Shirley's concentric mapping, which better preserves sample
// spacing than polar mapping.
func ConcentricSampleDisk(u Vec2) Vec2 {
	ox := 2*u.X - 1
	oy := 2*u.Y - 1
	if ox == 0 && oy == 0 {
		return Vec2{}
	}
	var theta, r Scalar
	if math.Abs(ox) > math.Abs(oy) {
		r = ox
		theta = (math.Pi / 4) * (oy / ox)
	} else {
		r = oy
		theta = (math.Pi / 2) - (math.Pi/4)*(ox/oy)
	}
	return Vec2{r * math.Cos(theta), r * math.Sin(theta)}
}

// CosineSampleHemisphere maps a 2D uniform sample to a direction distributed
// proportional to cosine of the angle from +Z, via Malley's method.
func CosineSampleHemisphere(u Vec2) Vec3 {
	d := ConcentricSampleDisk(u)
	z := math.Sqrt(math.Max(0, 1-d.X*d.X-d.Y*d.Y))
	return Vec3{d.X, d.Y, z}
}

// CosineHemispherePDF is the pdf of CosineSampleHemisphere at the given
// cosine of the angle from the hemisphere's pole.
func CosineHemispherePDF(cosTheta Scalar) Scalar { return cosTheta / math.Pi }

// UniformSampleTriangle maps a 2D uniform sample to barycentric
// coordinates (b0, b1) uniform over a triangle; b2 = 1 - b0 - b1.
func UniformSampleTriangle(u Vec2) Vec2 {
	su0 := math.Sqrt(u.X)
	return Vec2{1 - su0, u.Y * su0}
}
