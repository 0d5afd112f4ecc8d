package terrain

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// worldCoord maps grid index i to the world coordinate whose continuous
// sample coordinate lands exactly on i.
func worldCoord(i, dim int, terrainSize float32) float32 {
	return (float32(i)/float32(dim) - 0.5) * terrainSize
}

func TestLoadRaw8BitRoundTrip(t *testing.T) {
	h := newTestField(1)

	raw := []byte{
		0, 64, 128, 255,
		10, 20, 30, 40,
		50, 60, 70, 80,
		90, 100, 110, 120,
	}
	path := filepath.Join(t.TempDir(), "height.raw")
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatalf("writing raw file: %v", err)
	}

	if err := h.LoadRaw(path, 4, 4, false); err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	if h.Width() != 4 || h.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 4x4", h.Width(), h.Height())
	}

	for z := 0; z < 4; z++ {
		for x := 0; x < 4; x++ {
			want := h.MinHeight() + float32(raw[z*4+x])/255.0*(h.MaxHeight()-h.MinHeight())
			got := h.HeightAt(worldCoord(x, 4, h.TerrainSize()), worldCoord(z, 4, h.TerrainSize()))
			if diff := got - want; diff < -0.001 || diff > 0.001 {
				t.Errorf("HeightAt grid (%d,%d) = %v, want %v", x, z, got, want)
			}
		}
	}
}

func TestLoadRaw16BitLittleEndian(t *testing.T) {
	h := newTestField(1)

	// One full-range and one half-range sample, little-endian.
	raw := []byte{0xFF, 0xFF, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00}
	path := filepath.Join(t.TempDir(), "height16.raw")
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatalf("writing raw file: %v", err)
	}

	if err := h.LoadRaw(path, 2, 2, true); err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}

	if got := h.samples[0]; got != 1.0 {
		t.Errorf("samples[0] = %v, want 1", got)
	}
	want := float32(0x8000) / 65535.0
	if got := h.samples[1]; got != want {
		t.Errorf("samples[1] = %v, want %v", got, want)
	}
}

func TestLoadRawMissingFile(t *testing.T) {
	h := newTestField(1)

	if err := h.LoadRaw(filepath.Join(t.TempDir(), "absent.raw"), 4, 4, false); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadRawTruncatedFillsZero(t *testing.T) {
	h := newTestField(1)

	// Two bytes for a 2x2 8-bit grid: the last two samples stay zero.
	path := filepath.Join(t.TempDir(), "short.raw")
	if err := os.WriteFile(path, []byte{200, 200}, 0644); err != nil {
		t.Fatalf("writing raw file: %v", err)
	}

	if err := h.LoadRaw(path, 2, 2, false); err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}

	if h.samples[2] != 0 || h.samples[3] != 0 {
		t.Errorf("trailing samples = %v, %v, want 0, 0", h.samples[2], h.samples[3])
	}
}

func TestLoadImage(t *testing.T) {
	h := newTestField(5)

	path := filepath.Join(t.TempDir(), "height.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating png: %v", err)
	}
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, 16, 8))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	f.Close()

	if err := h.LoadImage(path); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if h.Width() != 16 || h.Height() != 8 {
		t.Fatalf("dimensions = %dx%d, want 16x8", h.Width(), h.Height())
	}
	for i, s := range h.samples {
		if s < 0 || s > 1 {
			t.Fatalf("sample %d = %v outside [0,1]", i, s)
		}
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	h := newTestField(5)

	if err := h.LoadImage(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("expected error for missing image, got nil")
	}
}

func TestGenerateSpansFullRange(t *testing.T) {
	h := newTestField(9)
	h.Generate(64, 64, 4.0, 6)

	if h.Width() != 64 || h.Height() != 64 {
		t.Fatalf("dimensions = %dx%d, want 64x64", h.Width(), h.Height())
	}

	lo, hi := float32(1), float32(0)
	for _, s := range h.samples {
		if s < 0 || s > 1 {
			t.Fatalf("sample %v outside [0,1]", s)
		}
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}

	// Renormalization stretches the observed extremes to 0 and 1.
	if lo > 0.001 {
		t.Errorf("min sample = %v, want ~0", lo)
	}
	if hi < 0.999 {
		t.Errorf("max sample = %v, want ~1", hi)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := newTestField(21)
	b := newTestField(21)
	a.Generate(32, 32, 2.0, 4)
	b.Generate(32, 32, 2.0, 4)

	for i := range a.samples {
		if a.samples[i] != b.samples[i] {
			t.Fatalf("sample %d differs between identical seeds: %v != %v", i, a.samples[i], b.samples[i])
		}
	}
}

func TestHeightAtClampsAtEdges(t *testing.T) {
	h := newTestField(1)

	raw := []byte{
		10, 20,
		30, 40,
	}
	path := filepath.Join(t.TempDir(), "edge.raw")
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatalf("writing raw file: %v", err)
	}
	if err := h.LoadRaw(path, 2, 2, false); err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}

	// Far outside the footprint the clamped border sample answers.
	span := h.MaxHeight() - h.MinHeight()
	wantCorner := h.MinHeight() + float32(40)/255.0*span
	got := h.HeightAt(h.TerrainSize()*10, h.TerrainSize()*10)
	if diff := got - wantCorner; diff < -0.001 || diff > 0.001 {
		t.Errorf("far corner query = %v, want %v", got, wantCorner)
	}
}

func TestHeightAtEmptyGrid(t *testing.T) {
	h := newTestField(1)

	if got := h.HeightAt(0, 0); got != 0 {
		t.Errorf("HeightAt on empty grid = %v, want 0", got)
	}
}

func TestNormalAtFlatField(t *testing.T) {
	h := newTestField(1)
	h.width = 4
	h.height = 4
	h.samples = make([]float32, 16)
	for i := range h.samples {
		h.samples[i] = 0.5
	}

	n := h.NormalAt(10, -20)
	if absf(n.X) > 0.001 || absf(n.Y-1) > 0.001 || absf(n.Z) > 0.001 {
		t.Errorf("flat field normal = %v, want (0, 1, 0)", n)
	}
}

func TestNormalAtUnitLength(t *testing.T) {
	h := newTestField(13)
	h.Generate(32, 32, 3.0, 5)

	for _, p := range [][2]float32{{0, 0}, {100, -80}, {-256, 256}, {255.9, 255.9}} {
		n := h.NormalAt(p[0], p[1])
		l := n.Length()
		if l < 0.999 || l > 1.001 {
			t.Errorf("NormalAt(%v, %v) length = %v, want ~1", p[0], p[1], l)
		}
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
