package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagThickness = flag.Float64("thickness", 0, "Slab thickness in meters")
	flagUVScale   = flag.Float64("uv-scale", 0, "Uniform UV scale for caps and walls")
	flagOut       = flag.String("out", "", "Output directory for generated meshes")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagThickness > 0 {
		cfg.Extrude.Thickness = *flagThickness
	}
	if *flagUVScale > 0 {
		cfg.Extrude.UVScaleU = *flagUVScale
		cfg.Extrude.UVScaleV = *flagUVScale
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
}
