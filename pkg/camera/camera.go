// Package camera turns a pixel coordinate into a camera-space ray placed
// in the world by a lookat transform.
package camera

import (
	"math"

	"github.com/evhansen/lumentrace/pkg/core"
)

// SimpleCamera is a pinhole camera: a lookat transform plus a vertical
// field of view, generating rays for an image of a fixed width/height.
type SimpleCamera struct {
	CameraToWorld core.Transform
	FovDegrees    core.Scalar
	Width, Height int
}

// NewSimpleCamera builds a camera looking from origin toward lookAt, with
// world-up used to orient the horizontal axis.
func NewSimpleCamera(origin, lookAt core.Point3, up core.Vec3, fovDegrees core.Scalar, width, height int) *SimpleCamera {
	return &SimpleCamera{
		CameraToWorld: core.LookAt(origin, lookAt, up),
		FovDegrees:    fovDegrees,
		Width:         width,
		Height:        height,
	}
}

// GenerateRay produces a ray through pixel (x, y), optionally jittered by
// (jx, jy) in [-1, 1] for antialiasing.
func (c *SimpleCamera) GenerateRay(x, y int, jx, jy core.Scalar) core.Ray {
	aspect := core.Scalar(c.Width) / core.Scalar(c.Height)
	angle := math.Tan(deg2rad(c.FovDegrees / 2))

	xx := (2*((core.Scalar(x)+0.5+jx)/core.Scalar(c.Width)) - 1) * angle * aspect
	yy := (1 - 2*((core.Scalar(y)+0.5+jy)/core.Scalar(c.Height))) * angle

	direction := core.Vec3{X: xx, Y: yy, Z: -1}.Normalize()
	ray := core.NewRayBounded(core.Point3{}, direction, 1e-4, math.Inf(1))
	return c.CameraToWorld.Ray(ray)
}

func deg2rad(d core.Scalar) core.Scalar { return d * math.Pi / 180 }
