// Package config handles configuration loading for the footprint3d tools.
package config

// Config holds all tool settings.
type Config struct {
	Extrude ExtrudeConfig `yaml:"extrude"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExtrudeConfig holds mesh extrusion parameters.
type ExtrudeConfig struct {
	// Thickness is the slab thickness in meters, split evenly above and
	// below the footprint plane.
	Thickness float64 `yaml:"thickness"`

	// UVScaleU and UVScaleV scale texture coordinates on caps and walls.
	UVScaleU float64 `yaml:"uv_scale_u"`
	UVScaleV float64 `yaml:"uv_scale_v"`
}

// OutputConfig holds mesh dump settings.
type OutputConfig struct {
	// Dir is where generated OBJ files are written when no explicit
	// output path is given on the command line.
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Extrude: ExtrudeConfig{
			Thickness: 3.0,
			UVScaleU:  1.0,
			UVScaleV:  1.0,
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
