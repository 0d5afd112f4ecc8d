// heightgen generates a procedural heightmap and writes it as a headerless
// raw file (8-bit or 16-bit little-endian, row-major), with an optional
// grayscale PNG preview. Its raw output round-trips through the terrain
// loader.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"

	"github.com/Faultbox/terralod/internal/engine/terrain"
)

func main() {
	var (
		out     = flag.String("out", "heightmap.raw", "Output raw file path")
		width   = flag.Int("width", 256, "Sample grid width")
		height  = flag.Int("height", 256, "Sample grid height")
		freq    = flag.Float64("freq", 4.0, "Base noise frequency")
		octaves = flag.Int("octaves", 6, "Noise octaves")
		seed    = flag.Int64("seed", 0, "Noise seed (0 = from clock)")
		bits    = flag.Int("bits", 16, "Sample width: 8 or 16")
		preview = flag.String("preview", "", "Optional PNG preview path")
	)
	flag.Parse()

	if *bits != 8 && *bits != 16 {
		fmt.Fprintf(os.Stderr, "Unsupported sample width: %d (want 8 or 16)\n", *bits)
		os.Exit(1)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	// Footprint and height range are irrelevant for export; only the
	// normalized sample grid is written.
	hf := terrain.New(float32(*width), 0, 1, rng)
	hf.Generate(*width, *height, float32(*freq), *octaves)

	if err := writeRaw(hf, *out, *bits); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %dx%d %d-bit heightmap to %s\n", *width, *height, *bits, *out)

	if *preview != "" {
		if err := writePreview(hf, *preview); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote preview to %s\n", *preview)
	}
}

// writeRaw exports the normalized grid by sampling the heightfield at each
// grid cell center.
func writeRaw(hf *terrain.Heightfield, path string, bits int) error {
	w := hf.Width()
	h := hf.Height()

	var data []byte
	if bits == 16 {
		data = make([]byte, w*h*2)
		for i, s := range gridSamples(hf) {
			binary.LittleEndian.PutUint16(data[i*2:], uint16(s*65535+0.5))
		}
	} else {
		data = make([]byte, w*h)
		for i, s := range gridSamples(hf) {
			data[i] = uint8(s*255 + 0.5)
		}
	}

	return os.WriteFile(path, data, 0644)
}

// gridSamples reads the normalized sample at every grid cell via the
// public height query. The heightfield maps [0,1] onto its height range,
// so with a [0,1] range the query returns the raw sample.
func gridSamples(hf *terrain.Heightfield) []float32 {
	w := hf.Width()
	h := hf.Height()
	size := hf.TerrainSize()

	out := make([]float32, 0, w*h)
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			wx := (float32(x)/float32(w) - 0.5) * size
			wz := (float32(z)/float32(h) - 0.5) * size
			out = append(out, hf.HeightAt(wx, wz))
		}
	}
	return out
}

func writePreview(hf *terrain.Heightfield, path string) error {
	w := hf.Width()
	h := hf.Height()

	img := image.NewGray(image.Rect(0, 0, w, h))
	for i, s := range gridSamples(hf) {
		img.SetGray(i%w, i/w, color.Gray{Y: uint8(s*255 + 0.5)})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
