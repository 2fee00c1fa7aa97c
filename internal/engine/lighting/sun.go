// Package lighting provides lighting utilities for terrain shading.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light given by compass angles in degrees.
type Sun struct {
	Azimuth   float32 // Rotation around Y, 0 = +Z
	Elevation float32 // Angle above the horizon
	Ambient   float32 // Minimum brightness in [0, 1]
}

// DefaultSun returns a light from the north-west, 45 degrees up.
func DefaultSun() Sun {
	return Sun{
		Azimuth:   315,
		Elevation: 45,
		Ambient:   0.3,
	}
}

// SunDirection converts azimuth/elevation angles (degrees) to a unit vector
// pointing towards the sun. Uses the same convention as the orbit camera.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	azRad := float64(azimuth) * math.Pi / 180.0
	elRad := float64(elevation) * math.Pi / 180.0

	x := float32(math.Cos(elRad) * math.Sin(azRad))
	y := float32(math.Sin(elRad))
	z := float32(math.Cos(elRad) * math.Cos(azRad))

	return mgl32.Vec3{x, y, z}
}

// Direction returns the unit vector towards the sun.
func (s Sun) Direction() mgl32.Vec3 {
	return SunDirection(s.Azimuth, s.Elevation)
}

// Intensity returns the Lambert brightness for a unit surface normal,
// lifted by the ambient term. The result is in [Ambient, 1].
func (s Sun) Intensity(normal mgl32.Vec3) float32 {
	diffuse := normal.Dot(s.Direction())
	if diffuse < 0 {
		diffuse = 0
	}
	ambient := s.Ambient
	if ambient < 0 {
		ambient = 0
	}
	if ambient > 1 {
		ambient = 1
	}
	return ambient + (1-ambient)*diffuse
}
