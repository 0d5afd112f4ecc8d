// Package terrain implements the heightfield engine: a grid of normalized
// elevation samples loaded from raw files or images, or synthesized with
// fractal noise, with continuous height and normal queries over the
// terrain footprint.
package terrain

import (
	"encoding/binary"
	"fmt"
	"image"
	gomath "math"
	"math/rand"
	"os"
	"time"

	// Register the decoders accepted by LoadImage.
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/Faultbox/terralod/pkg/math"
)

// imageNoiseFrequency is the gradient noise frequency used when an image
// supplies the grid dimensions.
const imageNoiseFrequency = 4.0

// Heightfield owns a row-major grid of elevation samples normalized to
// [0,1] over a square footprint centered at the world origin. It is
// populated once by LoadRaw, LoadImage or Generate and read-only
// afterwards.
type Heightfield struct {
	terrainSize float32
	minHeight   float32
	maxHeight   float32

	width   int
	height  int
	samples []float32

	// Doubled permutation table backing the gradient noise.
	perm [512]int
}

// New creates an empty heightfield mapping normalized samples onto
// [minHeight, maxHeight] across a terrainSize-wide footprint. The noise
// permutation table is shuffled with rng; pass a fixed-seed source for
// reproducible terrain, or nil to seed from the clock.
func New(terrainSize, minHeight, maxHeight float32, rng *rand.Rand) *Heightfield {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Heightfield{
		terrainSize: terrainSize,
		minHeight:   minHeight,
		maxHeight:   maxHeight,
		perm:        newPermutation(rng),
	}
}

// LoadRaw reads a headerless row-major heightmap: width*height unsigned
// samples, 8-bit or 16-bit little-endian, each normalized by the format's
// maximum value. The byte count implied by the dimensions is a caller
// convention, not validated: a short file leaves the trailing samples at
// zero.
func (h *Heightfield) LoadRaw(path string, width, height int, bits16 bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading heightmap %s: %w", path, err)
	}

	h.width = width
	h.height = height
	h.samples = make([]float32, width*height)

	count := width * height
	if bits16 {
		if avail := len(data) / 2; avail < count {
			count = avail
		}
		for i := 0; i < count; i++ {
			h.samples[i] = float32(binary.LittleEndian.Uint16(data[i*2:])) / 65535.0
		}
	} else {
		if len(data) < count {
			count = len(data)
		}
		for i := 0; i < count; i++ {
			h.samples[i] = float32(data[i]) / 255.0
		}
	}

	return nil
}

// LoadImage decodes a PNG or BMP heightmap source. The image supplies only
// the grid dimensions; the samples themselves are synthesized with
// gradient noise at a fixed frequency, mirroring the texture-plus-noise
// pipeline where the image is sampled on the GPU side.
func (h *Heightfield) LoadImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening heightmap image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding heightmap image %s: %w", path, err)
	}

	bounds := img.Bounds()
	h.width = bounds.Dx()
	h.height = bounds.Dy()
	h.samples = make([]float32, h.width*h.height)

	for z := 0; z < h.height; z++ {
		for x := 0; x < h.width; x++ {
			fx := float32(x) / float32(h.width)
			fz := float32(z) / float32(h.height)

			n := h.PerlinNoise(fx*imageNoiseFrequency, fz*imageNoiseFrequency)
			h.samples[z*h.width+x] = n*0.5 + 0.5
		}
	}

	return nil
}

// Generate fills a width x height grid with fractal Brownian motion: per
// octave the amplitude halves and the frequency doubles, the octave sum is
// divided by the total amplitude and remapped from [-1,1] to [0,1]. The
// finished grid is then stretched by its observed extremes to span exactly
// [0,1], unless the field is nearly flat.
func (h *Heightfield) Generate(width, height int, frequency float32, octaves int) {
	h.width = width
	h.height = height
	h.samples = make([]float32, width*height)

	hi := float32(0)
	lo := float32(1)

	for z := 0; z < height; z++ {
		for x := 0; x < width; x++ {
			nx := float32(x) / float32(width)
			nz := float32(z) / float32(height)

			sum := float32(0)
			amp := float32(1)
			freq := frequency
			ampSum := float32(0)

			for o := 0; o < octaves; o++ {
				sum += h.PerlinNoise(nx*freq, nz*freq) * amp
				ampSum += amp

				amp *= 0.5
				freq *= 2.0
			}

			v := (sum/ampSum + 1.0) * 0.5
			h.samples[z*width+x] = v

			if v > hi {
				hi = v
			}
			if v < lo {
				lo = v
			}
		}
	}

	if r := hi - lo; r > 0.001 {
		for i := range h.samples {
			h.samples[i] = (h.samples[i] - lo) / r
		}
	}
}

// HeightAt returns the world-space height at (x, z): the world coordinate
// is mapped into continuous sample coordinates, the four surrounding
// samples are bilinearly blended, and the normalized result is remapped to
// [minHeight, maxHeight]. Returns 0 before the grid is populated.
func (h *Heightfield) HeightAt(x, z float32) float32 {
	if len(h.samples) == 0 {
		return 0
	}

	u := (x/h.terrainSize + 0.5) * float32(h.width)
	v := (z/h.terrainSize + 0.5) * float32(h.height)

	x0 := int(gomath.Floor(float64(u)))
	z0 := int(gomath.Floor(float64(v)))

	fx := u - float32(x0)
	fz := v - float32(z0)

	h00 := h.sample(x0, z0)
	h10 := h.sample(x0+1, z0)
	h01 := h.sample(x0, z0+1)
	h11 := h.sample(x0+1, z0+1)

	hx0 := h00 + (h10-h00)*fx
	hx1 := h01 + (h11-h01)*fx
	hn := hx0 + (hx1-hx0)*fz

	return h.minHeight + hn*(h.maxHeight-h.minHeight)
}

// NormalAt returns the unit surface normal at (x, z) from central height
// differences one sample step apart. Edge queries degrade gracefully
// because height sampling clamps at the grid border.
func (h *Heightfield) NormalAt(x, z float32) math.Vec3 {
	if len(h.samples) == 0 {
		return math.Vec3{Y: 1}
	}

	step := h.terrainSize / float32(h.width)

	hl := h.HeightAt(x-step, z)
	hr := h.HeightAt(x+step, z)
	hd := h.HeightAt(x, z-step)
	hu := h.HeightAt(x, z+step)

	return math.Vec3{X: hl - hr, Y: 2.0 * step, Z: hd - hu}.Normalize()
}

// sample clamps to the grid border so edge and corner queries neither wrap
// nor extrapolate.
func (h *Heightfield) sample(x, z int) float32 {
	x = min(max(x, 0), h.width-1)
	z = min(max(z, 0), h.height-1)
	return h.samples[z*h.width+x]
}

// Width returns the sample grid width.
func (h *Heightfield) Width() int { return h.width }

// Height returns the sample grid height.
func (h *Heightfield) Height() int { return h.height }

// TerrainSize returns the footprint edge length in world units.
func (h *Heightfield) TerrainSize() float32 { return h.terrainSize }

// MinHeight returns the world height a zero sample maps to.
func (h *Heightfield) MinHeight() float32 { return h.minHeight }

// MaxHeight returns the world height a full sample maps to.
func (h *Heightfield) MaxHeight() float32 { return h.maxHeight }
