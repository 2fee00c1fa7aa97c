package config

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lrle/internal/engine/camera"
	"github.com/Faultbox/lrle/internal/engine/input"
	"github.com/Faultbox/lrle/internal/engine/lighting"
	"github.com/Faultbox/lrle/internal/engine/preview"
	"github.com/Faultbox/lrle/internal/engine/terrain"
)

// ColorScheme returns the configured scheme. Unknown names fall back to terrain.
func (c *Config) ColorScheme() terrain.ColorScheme {
	if c.Terrain.ColorScheme == "custom" && c.Terrain.CustomGradient != nil {
		g := c.Terrain.CustomGradient
		return terrain.CustomGradient{Low: g.Low, Mid: g.Mid, High: g.High}
	}
	scheme, err := terrain.ParseColorScheme(c.Terrain.ColorScheme)
	if err != nil {
		return terrain.SchemeTerrain
	}
	return scheme
}

// MeshOptions returns mesh generation options from the terrain section.
func (c *Config) MeshOptions() terrain.MeshOptions {
	opts := terrain.DefaultMeshOptions()
	opts.HeightScale = c.Terrain.HeightScale
	if shading, err := terrain.ParseShadingMode(c.Terrain.Shading); err == nil {
		opts.Shading = shading
	}
	opts.Scheme = c.ColorScheme()
	opts.UseFileColors = c.Terrain.UseFileColors
	return opts
}

// OrbitCamera returns an orbit camera in the configured initial state.
func (c *Config) OrbitCamera() *camera.OrbitCamera {
	cam := camera.NewOrbitCamera()
	cam.Distance = c.Camera.Distance
	cam.Azimuth = mgl32.DegToRad(c.Camera.AzimuthDeg)
	cam.Elevation = mgl32.DegToRad(c.Camera.ElevationDeg)
	cam.FOV = c.Camera.FOV
	cam.Near = c.Camera.Near
	cam.Far = c.Camera.Far
	if mode, err := camera.ParseProjectionMode(c.Camera.Projection); err == nil {
		cam.Projection = mode
	}
	return cam
}

// InputConfig returns controller settings from the input section.
func (c *Config) InputConfig() input.Config {
	return input.Config{
		RotateSensitivity: c.Input.RotateSensitivity,
		PanSensitivity:    c.Input.PanSensitivity,
		ZoomSensitivity:   c.Input.ZoomSensitivity,
		MinDistance:       c.Input.MinDistance,
		MaxDistance:       c.Input.MaxDistance,
		MinElevation:      mgl32.DegToRad(c.Input.MinElevationDeg),
		MaxElevation:      mgl32.DegToRad(c.Input.MaxElevationDeg),
	}
}

// Sun returns the preview light.
func (c *Config) Sun() lighting.Sun {
	return lighting.Sun{
		Azimuth:   c.Lighting.SunAzimuth,
		Elevation: c.Lighting.SunElevation,
		Ambient:   c.Lighting.Ambient,
	}
}

// PreviewOptions returns image export options.
func (c *Config) PreviewOptions() preview.Options {
	return preview.Options{
		Scale:  c.Preview.Scale,
		Shaded: c.Preview.Shaded,
		Smooth: c.Preview.Smooth,
		Sun:    c.Sun(),
	}
}
