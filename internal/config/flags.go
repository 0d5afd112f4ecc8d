package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagSource = flag.String("source", "", "Heightmap source: raw, image or noise")
	flagPath   = flag.String("heightmap", "", "Heightmap file path")
	flagSeed   = flag.Int64("seed", 0, "Noise seed (0 = from clock)")
	flagFrames = flag.Int("frames", 0, "Number of camera flight frames")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSource != "" {
		cfg.Heightmap.Source = *flagSource
	}
	if *flagPath != "" {
		cfg.Heightmap.Path = *flagPath
	}
	if *flagSeed != 0 {
		cfg.Heightmap.Seed = *flagSeed
	}
	if *flagFrames > 0 {
		cfg.Viewer.Frames = *flagFrames
	}
}
