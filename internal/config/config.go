// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Terrain  TerrainConfig  `yaml:"terrain"`
	Camera   CameraConfig   `yaml:"camera"`
	Input    InputConfig    `yaml:"input"`
	Lighting LightingConfig `yaml:"lighting"`
	Preview  PreviewConfig  `yaml:"preview"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TerrainConfig holds mesh generation settings.
type TerrainConfig struct {
	HeightScale    float32         `yaml:"height_scale"`
	Shading        string          `yaml:"shading"`      // smooth, flat
	ColorScheme    string          `yaml:"color_scheme"` // terrain, heatmap, monochrome, custom
	CustomGradient *GradientConfig `yaml:"custom_gradient,omitempty"`
	UseFileColors  bool            `yaml:"use_file_colors"`
}

// GradientConfig holds the three stops of a custom color gradient.
// Each stop is an RGB triple in [0, 1].
type GradientConfig struct {
	Low  [3]float32 `yaml:"low"`
	Mid  [3]float32 `yaml:"mid"`
	High [3]float32 `yaml:"high"`
}

// CameraConfig holds the initial orbit camera state.
type CameraConfig struct {
	Distance     float32 `yaml:"distance"`
	AzimuthDeg   float32 `yaml:"azimuth_deg"`
	ElevationDeg float32 `yaml:"elevation_deg"`
	FOV          float32 `yaml:"fov"` // Vertical, degrees
	Near         float32 `yaml:"near"`
	Far          float32 `yaml:"far"`
	Projection   string  `yaml:"projection"` // perspective, orthographic
	FitToTerrain bool    `yaml:"fit_to_terrain"`
}

// InputConfig holds camera control sensitivities and limits.
type InputConfig struct {
	RotateSensitivity float32 `yaml:"rotate_sensitivity"`
	PanSensitivity    float32 `yaml:"pan_sensitivity"`
	ZoomSensitivity   float32 `yaml:"zoom_sensitivity"`
	MinDistance       float32 `yaml:"min_distance"`
	MaxDistance       float32 `yaml:"max_distance"`
	MinElevationDeg   float32 `yaml:"min_elevation_deg"`
	MaxElevationDeg   float32 `yaml:"max_elevation_deg"`
}

// LightingConfig holds the preview sun.
type LightingConfig struct {
	SunAzimuth   float32 `yaml:"sun_azimuth"`
	SunElevation float32 `yaml:"sun_elevation"`
	Ambient      float32 `yaml:"ambient"`
}

// PreviewConfig holds image export settings.
type PreviewConfig struct {
	Scale  int  `yaml:"scale"`
	Shaded bool `yaml:"shaded"`
	Smooth bool `yaml:"smooth"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			HeightScale: 1.0,
			Shading:     "smooth",
			ColorScheme: "terrain",
		},
		Camera: CameraConfig{
			Distance:     50.0,
			AzimuthDeg:   45.0,
			ElevationDeg: 30.0,
			FOV:          60.0,
			Near:         0.1,
			Far:          1000.0,
			Projection:   "perspective",
			FitToTerrain: true,
		},
		Input: InputConfig{
			RotateSensitivity: 0.005,
			PanSensitivity:    0.1,
			ZoomSensitivity:   0.1,
			MinDistance:       1.0,
			MaxDistance:       500.0,
			MinElevationDeg:   -84.0,
			MaxElevationDeg:   84.0,
		},
		Lighting: LightingConfig{
			SunAzimuth:   315.0,
			SunElevation: 45.0,
			Ambient:      0.3,
		},
		Preview: PreviewConfig{
			Scale:  4,
			Shaded: true,
			Smooth: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
