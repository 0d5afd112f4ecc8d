// Package config handles terrain viewer configuration loading and
// management.
package config

// Config holds all terrain and viewer settings.
type Config struct {
	Terrain   TerrainConfig   `yaml:"terrain"`
	Heightmap HeightmapConfig `yaml:"heightmap"`
	LOD       LODConfig       `yaml:"lod"`
	Viewer    ViewerConfig    `yaml:"viewer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TerrainConfig holds the world-space terrain footprint and height range.
type TerrainConfig struct {
	Size      float32 `yaml:"size"`       // Footprint edge length in world units
	MinHeight float32 `yaml:"min_height"` // World height of a zero sample
	MaxHeight float32 `yaml:"max_height"` // World height of a full sample
}

// HeightmapConfig holds the elevation data source settings.
type HeightmapConfig struct {
	Source    string  `yaml:"source"` // "raw", "image" or "noise"
	Path      string  `yaml:"path"`   // Source file for raw and image sources
	Width     int     `yaml:"width"`  // Sample grid width (raw and noise)
	Height    int     `yaml:"height"` // Sample grid height (raw and noise)
	Bits      int     `yaml:"bits"`   // Raw sample width: 8 or 16
	Frequency float32 `yaml:"frequency"`
	Octaves   int     `yaml:"octaves"`
	Seed      int64   `yaml:"seed"` // 0 seeds the noise from the clock
}

// LODConfig holds quadtree build parameters.
type LODConfig struct {
	MinNodeSize float32   `yaml:"min_node_size"` // Subdivision size floor
	MaxLevels   int       `yaml:"max_levels"`    // Tree depth bound
	Distances   []float32 `yaml:"distances"`     // Optional band override, one per level
}

// ViewerConfig holds the headless camera flight settings.
type ViewerConfig struct {
	Frames         int     `yaml:"frames"`
	CameraDistance float32 `yaml:"camera_distance"`
	CameraPitch    float32 `yaml:"camera_pitch"` // Radians
	FOV            float32 `yaml:"fov"`          // Degrees
	Aspect         float32 `yaml:"aspect"`
	Near           float32 `yaml:"near"`
	Far            float32 `yaml:"far"`
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
			Size:      512,
			MinHeight: 0,
			MaxHeight: 100,
		},
		Heightmap: HeightmapConfig{
			Source:    "noise",
			Width:     256,
			Height:    256,
			Bits:      16,
			Frequency: 4.0,
			Octaves:   6,
			Seed:      0,
		},
		LOD: LODConfig{
			MinNodeSize: 64,
			MaxLevels:   5,
		},
		Viewer: ViewerConfig{
			Frames:         120,
			CameraDistance: 600,
			CameraPitch:    0.6,
			FOV:            60,
			Aspect:         16.0 / 9.0,
			Near:           1,
			Far:            5000,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
