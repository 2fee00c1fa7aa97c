package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile     = flag.String("log-file", "", "Write logs to this file")
	flagHeightScale = flag.Float64("height-scale", 0, "Height scale multiplier")
	flagShading     = flag.String("shading", "", "Normal shading: smooth or flat")
	flagScheme      = flag.String("scheme", "", "Color scheme: terrain, heatmap, monochrome")
	flagFileColors  = flag.Bool("file-colors", false, "Use colors from the input file")
	flagIsometric   = flag.Bool("iso", false, "Start with the isometric camera preset")
	flagOrtho       = flag.Bool("ortho", false, "Use orthographic projection")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// Isometric reports whether the --iso flag was given.
func Isometric() bool {
	return *flagIsometric
}

// givenFlags returns the names of flags set on the command line.
func givenFlags() map[string]bool {
	given := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		given[f.Name] = true
	})
	return given
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	applyFlagSet(cfg, givenFlags())
}

// applyFlagSet applies overrides. Numeric flags are applied only when named
// in given, so an explicit zero is honored.
func applyFlagSet(cfg *Config, given map[string]bool) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if given["height-scale"] {
		cfg.Terrain.HeightScale = float32(*flagHeightScale)
	}
	if *flagShading != "" {
		cfg.Terrain.Shading = *flagShading
	}
	if *flagScheme != "" {
		cfg.Terrain.ColorScheme = *flagScheme
	}
	if *flagFileColors {
		cfg.Terrain.UseFileColors = true
	}
	if *flagOrtho {
		cfg.Camera.Projection = "orthographic"
	}
}
