package terrain

import (
	"fmt"
	"strings"
)

// RGB is a color with channels in [0, 1].
type RGB [3]float32

// RGBFromPacked converts a packed 0xRRGGBB value to RGB.
func RGBFromPacked(c uint32) RGB {
	return RGB{
		float32((c>>16)&0xFF) / 255.0,
		float32((c>>8)&0xFF) / 255.0,
		float32(c&0xFF) / 255.0,
	}
}

// ColorScheme maps normalized height to color.
// The set of schemes is closed: TerrainScheme, HeatmapScheme,
// MonochromeScheme and CustomGradient.
type ColorScheme interface {
	String() string
	colorScheme()
}

// TerrainScheme is the natural gradient: blue, cyan, green, brown, white.
type TerrainScheme struct{}

// HeatmapScheme is the scientific gradient: blue, cyan, green, yellow, red.
type HeatmapScheme struct{}

// MonochromeScheme is grayscale from 0.1 to 1.0.
type MonochromeScheme struct{}

// CustomGradient interpolates Low to Mid over [0, 0.5] and Mid to High over [0.5, 1].
type CustomGradient struct {
	Low, Mid, High RGB
}

func (TerrainScheme) colorScheme()    {}
func (HeatmapScheme) colorScheme()    {}
func (MonochromeScheme) colorScheme() {}
func (CustomGradient) colorScheme()   {}

func (TerrainScheme) String() string    { return "terrain" }
func (HeatmapScheme) String() string    { return "heatmap" }
func (MonochromeScheme) String() string { return "monochrome" }
func (CustomGradient) String() string   { return "custom" }

// Built-in schemes.
var (
	SchemeTerrain    ColorScheme = TerrainScheme{}
	SchemeHeatmap    ColorScheme = HeatmapScheme{}
	SchemeMonochrome ColorScheme = MonochromeScheme{}
)

// SchemeNames lists the names accepted by ParseColorScheme.
var SchemeNames = []string{"terrain", "heatmap", "monochrome"}

// ParseColorScheme returns the built-in scheme with the given name (case-insensitive).
// Custom gradients carry their own stops and are built directly.
func ParseColorScheme(name string) (ColorScheme, error) {
	switch strings.ToLower(name) {
	case "terrain":
		return SchemeTerrain, nil
	case "heatmap":
		return SchemeHeatmap, nil
	case "monochrome":
		return SchemeMonochrome, nil
	default:
		return nil, fmt.Errorf("unknown color scheme %q", name)
	}
}

// HeightToColor converts normalized height to a color using scheme.
// t is clamped to [0, 1]. A nil scheme, including a nil *CustomGradient,
// uses the terrain gradient.
func HeightToColor(t float32, scheme ColorScheme) RGB {
	t = clampf(t, 0, 1)

	switch s := scheme.(type) {
	case HeatmapScheme:
		return heatmapColor(t)
	case MonochromeScheme:
		return monochromeColor(t)
	case CustomGradient:
		return s.at(t)
	case *CustomGradient:
		if s == nil {
			return terrainColor(t)
		}
		return s.at(t)
	default:
		return terrainColor(t)
	}
}

func terrainColor(t float32) RGB {
	switch {
	case t < 0.3:
		// Water
		s := t / 0.3
		return RGB{0, s * 0.5, 0.8 + s*0.2}
	case t < 0.5:
		s := (t - 0.3) / 0.2
		return RGB{s * 0.2, 0.5 + s*0.3, 1.0 - s*0.6}
	case t < 0.8:
		s := (t - 0.5) / 0.3
		return RGB{0.2 + s*0.4, 0.8 - s*0.4, 0.4 - s*0.3}
	default:
		// Snow
		s := (t - 0.8) / 0.2
		return RGB{0.6 + s*0.4, 0.4 + s*0.6, 0.1 + s*0.9}
	}
}

func heatmapColor(t float32) RGB {
	switch {
	case t < 0.25:
		s := t / 0.25
		return RGB{0, s, 1}
	case t < 0.5:
		s := (t - 0.25) / 0.25
		return RGB{0, 1, 1 - s}
	case t < 0.75:
		s := (t - 0.5) / 0.25
		return RGB{s, 1, 0}
	default:
		s := (t - 0.75) / 0.25
		return RGB{1, 1 - s, 0}
	}
}

func monochromeColor(t float32) RGB {
	v := 0.1 + t*0.9
	return RGB{v, v, v}
}

func (g CustomGradient) at(t float32) RGB {
	if t < 0.5 {
		return lerpRGB(g.Low, g.Mid, t/0.5)
	}
	return lerpRGB(g.Mid, g.High, (t-0.5)/0.5)
}

func lerpRGB(a, b RGB, s float32) RGB {
	return RGB{
		a[0] + (b[0]-a[0])*s,
		a[1] + (b[1]-a[1])*s,
		a[2] + (b[2]-a[2])*s,
	}
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
