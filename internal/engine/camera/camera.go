// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects the projection matrix type.
type ProjectionMode int

// Projection modes.
const (
	Perspective ProjectionMode = iota
	Orthographic
)

// String returns the projection mode name.
func (p ProjectionMode) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParseProjectionMode returns the projection mode with the given name (case-insensitive).
func ParseProjectionMode(name string) (ProjectionMode, error) {
	switch strings.ToLower(name) {
	case "perspective":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	default:
		return 0, fmt.Errorf("unknown projection mode %q", name)
	}
}

// Isometric preset angles in radians.
var (
	IsometricAzimuth   = float32(gomath.Pi / 4)
	IsometricElevation = float32(gomath.Atan(1 / gomath.Sqrt2))
)

// OrbitCamera orbits around a target point.
//
// Azimuth 0 places the eye on +Z of the target; elevation is the angle out of
// the XZ plane. Callers driving the camera are responsible for clamping
// Distance and Elevation; the camera only requires Distance > 0 and
// 0 < Near < Far.
type OrbitCamera struct {
	// Spherical coordinates
	Distance  float32 // Distance from target
	Azimuth   float32 // Horizontal angle around Y (radians)
	Elevation float32 // Vertical angle from the XZ plane (radians)

	Target mgl32.Vec3 // Point to orbit around

	FOV  float32 // Vertical field of view (degrees)
	Near float32
	Far  float32

	Projection ProjectionMode
}

// NewOrbitCamera creates a new orbit camera with default settings.
// The default view is 45 degrees around and 30 degrees above the origin.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:   50.0,
		Azimuth:    gomath.Pi / 4,
		Elevation:  gomath.Pi / 6,
		FOV:        60.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: Perspective,
	}
}

// Reset restores the default settings.
func (c *OrbitCamera) Reset() {
	*c = *NewOrbitCamera()
}

// Position returns the eye position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.Elevation))*gomath.Sin(float64(c.Azimuth)))
	y := c.Distance * float32(gomath.Sin(float64(c.Elevation)))
	z := c.Distance * float32(gomath.Cos(float64(c.Elevation))*gomath.Cos(float64(c.Azimuth)))

	return c.Target.Add(mgl32.Vec3{x, y, z})
}

// ViewMatrix returns the right-handed view matrix with +Y up.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the projection matrix for the given viewport aspect
// ratio (width / height).
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if c.Projection == Orthographic {
		halfHeight := c.Distance * 0.5
		halfWidth := halfHeight * aspect
		return mgl32.Ortho(-halfWidth, halfWidth, -halfHeight, halfHeight, c.Near, c.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ViewProjectionMatrix returns projection * view.
func (c *OrbitCamera) ViewProjectionMatrix(aspect float32) mgl32.Mat4 {
	return c.ProjectionMatrix(aspect).Mul4(c.ViewMatrix())
}

// SetIsometric switches to an orthographic isometric view.
func (c *OrbitCamera) SetIsometric() {
	c.Projection = Orthographic
	c.Azimuth = IsometricAzimuth
	c.Elevation = IsometricElevation
}

// ToggleProjection switches between perspective and orthographic.
func (c *OrbitCamera) ToggleProjection() {
	if c.Projection == Orthographic {
		c.Projection = Perspective
	} else {
		c.Projection = Orthographic
	}
}

// FitToBounds centers the camera on a bounding box and backs off far enough
// to see its horizontal extent.
func (c *OrbitCamera) FitToBounds(min, max mgl32.Vec3) {
	c.Target = min.Add(max).Mul(0.5)

	size := max.Sub(min)
	maxSize := size.X()
	if size.Z() > maxSize {
		maxSize = size.Z()
	}

	c.Distance = maxSize * 1.5
	if c.Distance < 1 {
		c.Distance = 1
	}
}
