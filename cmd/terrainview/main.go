// terrainview drives the terrain core headless: it builds a heightfield
// and LOD quadtree from configuration, flies an orbit camera around the
// terrain, and logs which nodes would be drawn at which detail tier each
// frame.
package main

import (
	"fmt"
	gomath "math"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/terralod/internal/config"
	"github.com/Faultbox/terralod/internal/engine/camera"
	"github.com/Faultbox/terralod/internal/engine/quadtree"
	"github.com/Faultbox/terralod/internal/engine/terrain"
	"github.com/Faultbox/terralod/internal/logger"
	"github.com/Faultbox/terralod/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== TerraLOD viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	hf := buildHeightfield(cfg)

	qt := quadtree.New()
	if len(cfg.LOD.Distances) > 0 {
		qt.SetLODDistances(cfg.LOD.Distances)
	}
	qt.Initialize(cfg.Terrain.Size, cfg.LOD.MinNodeSize, cfg.LOD.MaxLevels)
	qt.SetHeightRange(hf.MinHeight(), hf.MaxHeight())

	logger.Info("quadtree built",
		zap.Int("nodes", qt.TotalNodeCount()),
		zap.Float32("terrain_size", cfg.Terrain.Size),
		zap.Int("lod_levels", cfg.LOD.MaxLevels))

	runFlight(cfg, hf, qt)
}

// buildHeightfield populates the heightfield from the configured source,
// falling back to procedural generation when a file source fails.
func buildHeightfield(cfg *config.Config) *terrain.Heightfield {
	var rng *rand.Rand
	if cfg.Heightmap.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Heightmap.Seed))
	}

	hf := terrain.New(cfg.Terrain.Size, cfg.Terrain.MinHeight, cfg.Terrain.MaxHeight, rng)
	hm := cfg.Heightmap

	var err error
	switch hm.Source {
	case "raw":
		err = hf.LoadRaw(hm.Path, hm.Width, hm.Height, hm.Bits == 16)
	case "image":
		err = hf.LoadImage(hm.Path)
	default:
		hf.Generate(hm.Width, hm.Height, hm.Frequency, hm.Octaves)
	}

	if err != nil {
		logger.Warn("heightmap load failed, falling back to procedural generation",
			zap.Error(err))
		hf.Generate(hm.Width, hm.Height, hm.Frequency, hm.Octaves)
	}

	logger.Info("heightfield ready",
		zap.String("source", hm.Source),
		zap.Int("width", hf.Width()),
		zap.Int("height", hf.Height()))
	return hf
}

// runFlight orbits the camera around the terrain center, culling and
// logging statistics every frame.
func runFlight(cfg *config.Config, hf *terrain.Heightfield, qt *quadtree.Quadtree) {
	cam := camera.NewOrbit(math.Vec3{}, cfg.Viewer.CameraDistance, cfg.Viewer.CameraPitch)
	proj := math.Perspective(
		cfg.Viewer.FOV*gomath.Pi/180,
		cfg.Viewer.Aspect,
		cfg.Viewer.Near,
		cfg.Viewer.Far,
	)

	frames := cfg.Viewer.Frames
	deltaYaw := 2 * gomath.Pi / float64(frames)

	for frame := 0; frame < frames; frame++ {
		pos := cam.Position()
		planes := camera.ExtractFrustumPlanes(proj.Mul(cam.ViewMatrix()))

		qt.Update(pos, planes)
		nodes := qt.VisibleNodes()

		var tiers [terrain.LODTierCount]int
		for _, n := range nodes {
			lod := n.Frame.LOD
			if lod >= terrain.LODTierCount {
				lod = terrain.LODTierCount - 1
			}
			tiers[lod]++
		}

		ground := hf.HeightAt(pos.X, pos.Z)
		normal := hf.NormalAt(pos.X, pos.Z)

		logger.Debug("frame",
			zap.Int("n", frame),
			zap.Int("visible", qt.VisibleNodeCount()),
			zap.Float32("ground_below", ground),
			zap.Float32("slope_y", normal.Y))

		if frame%30 == 0 {
			logger.Info("culling stats",
				zap.Int("frame", frame),
				zap.Int("visible", qt.VisibleNodeCount()),
				zap.Int("total", qt.TotalNodeCount()),
				zap.Ints("per_tier", tiers[:]))
		}

		cam.Advance(float32(deltaYaw))
	}

	logger.Info("flight complete", zap.Int("frames", frames))
}
