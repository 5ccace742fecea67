// Package texture provides the scalar and color texture variants materials
// sample at a surface interaction. Per spec, only constant/solid-color
// textures are in scope; image-mapped textures are a Non-goal.
package texture

import "github.com/evhansen/lumentrace/pkg/core"

// ScalarTexture evaluates to a single Scalar at a surface interaction, used
// for roughness/sigma parameters.
type ScalarTexture interface {
	Eval(si core.SurfaceInteraction) core.Scalar
}

// ColorTexture evaluates to an RGB Color at a surface interaction, used for
// albedo/emission parameters.
type ColorTexture interface {
	Eval(si core.SurfaceInteraction) core.Color
}

// ConstantScalar is a ScalarTexture that ignores the interaction.
type ConstantScalar struct {
	Value core.Scalar
}

// NewConstantScalar builds a ConstantScalar texture.
func NewConstantScalar(v core.Scalar) *ConstantScalar { return &ConstantScalar{Value: v} }

// Eval implements ScalarTexture.
func (c *ConstantScalar) Eval(si core.SurfaceInteraction) core.Scalar { return c.Value }

// SolidColor is a ColorTexture that ignores the interaction.
type SolidColor struct {
	Value core.Color
}

// NewSolidColor builds a SolidColor texture.
func NewSolidColor(c core.Color) *SolidColor { return &SolidColor{Value: c} }

// Eval implements ColorTexture.
func (c *SolidColor) Eval(si core.SurfaceInteraction) core.Color { return c.Value }
