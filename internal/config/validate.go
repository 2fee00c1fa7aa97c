package config

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/Faultbox/lrle/internal/engine/camera"
	"github.com/Faultbox/lrle/internal/engine/terrain"
)

// Validate checks every section and returns all problems found.
func (c *Config) Validate() error {
	var err error

	if hs := float64(c.Terrain.HeightScale); math.IsNaN(hs) || math.IsInf(hs, 0) {
		err = multierr.Append(err, fmt.Errorf("terrain.height_scale: must be finite, got %g", hs))
	}
	if _, e := terrain.ParseShadingMode(c.Terrain.Shading); e != nil {
		err = multierr.Append(err, fmt.Errorf("terrain.shading: %w", e))
	}
	if c.Terrain.ColorScheme == "custom" {
		if c.Terrain.CustomGradient == nil {
			err = multierr.Append(err, fmt.Errorf("terrain.custom_gradient: required for the custom color scheme"))
		} else {
			err = multierr.Append(err, c.Terrain.CustomGradient.validate())
		}
	} else if _, e := terrain.ParseColorScheme(c.Terrain.ColorScheme); e != nil {
		err = multierr.Append(err, fmt.Errorf("terrain.color_scheme: %w", e))
	}

	if c.Camera.Distance <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera.distance: must be positive, got %g", c.Camera.Distance))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera.fov: must be in (0, 180), got %g", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		err = multierr.Append(err, fmt.Errorf("camera: need 0 < near < far, got near %g far %g", c.Camera.Near, c.Camera.Far))
	}
	if _, e := camera.ParseProjectionMode(c.Camera.Projection); e != nil {
		err = multierr.Append(err, fmt.Errorf("camera.projection: %w", e))
	}

	if c.Input.MinDistance <= 0 || c.Input.MinDistance > c.Input.MaxDistance {
		err = multierr.Append(err, fmt.Errorf("input: need 0 < min_distance <= max_distance, got %g and %g",
			c.Input.MinDistance, c.Input.MaxDistance))
	}
	if c.Input.MinElevationDeg < -90 || c.Input.MaxElevationDeg > 90 || c.Input.MinElevationDeg > c.Input.MaxElevationDeg {
		err = multierr.Append(err, fmt.Errorf("input: elevation limits must satisfy -90 <= min <= max <= 90, got %g and %g",
			c.Input.MinElevationDeg, c.Input.MaxElevationDeg))
	}

	if c.Lighting.Ambient < 0 || c.Lighting.Ambient > 1 {
		err = multierr.Append(err, fmt.Errorf("lighting.ambient: must be in [0, 1], got %g", c.Lighting.Ambient))
	}

	if c.Preview.Scale < 1 {
		err = multierr.Append(err, fmt.Errorf("preview.scale: must be at least 1, got %d", c.Preview.Scale))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	return err
}

func (g *GradientConfig) validate() error {
	var err error
	for name, stop := range map[string][3]float32{"low": g.Low, "mid": g.Mid, "high": g.High} {
		for _, v := range stop {
			if v < 0 || v > 1 {
				err = multierr.Append(err, fmt.Errorf("terrain.custom_gradient.%s: channels must be in [0, 1]", name))
				break
			}
		}
	}
	return err
}
