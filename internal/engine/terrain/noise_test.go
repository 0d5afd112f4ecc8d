package terrain

import (
	"math/rand"
	"testing"
)

func newTestField(seed int64) *Heightfield {
	return New(512, 0, 100, rand.New(rand.NewSource(seed)))
}

func TestPerlinNoiseDeterministic(t *testing.T) {
	a := newTestField(7)
	b := newTestField(7)

	points := [][2]float32{
		{0, 0}, {0.5, 0.5}, {3.7, 1.2}, {-2.4, 9.9}, {255.5, 255.5},
	}

	for _, p := range points {
		va := a.PerlinNoise(p[0], p[1])
		vb := b.PerlinNoise(p[0], p[1])
		if va != vb {
			t.Errorf("PerlinNoise(%v, %v): %v != %v for identical seeds", p[0], p[1], va, vb)
		}
		if va != a.PerlinNoise(p[0], p[1]) {
			t.Errorf("PerlinNoise(%v, %v) not reproducible on the same instance", p[0], p[1])
		}
	}
}

func TestPerlinNoiseSeedsDiffer(t *testing.T) {
	a := newTestField(1)
	b := newTestField(2)

	same := true
	for i := 0; i < 32; i++ {
		p := float32(i) * 0.37
		if a.PerlinNoise(p, p*1.3) != b.PerlinNoise(p, p*1.3) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical noise at 32 sample points")
	}
}

func TestPerlinNoiseZeroAtLatticePoints(t *testing.T) {
	// Gradient noise vanishes at integer lattice points: the fractional
	// offsets are zero, so every corner dot product is zero.
	h := newTestField(3)

	for _, p := range [][2]float32{{0, 0}, {1, 0}, {5, 7}, {-3, 2}} {
		if v := h.PerlinNoise(p[0], p[1]); v != 0 {
			t.Errorf("PerlinNoise(%v, %v) = %v, want 0 at lattice point", p[0], p[1], v)
		}
	}
}

func TestFadeEndpoints(t *testing.T) {
	if fade(0) != 0 {
		t.Errorf("fade(0) = %v, want 0", fade(0))
	}
	if fade(1) != 1 {
		t.Errorf("fade(1) = %v, want 1", fade(1))
	}
	if v := fade(0.5); v != 0.5 {
		t.Errorf("fade(0.5) = %v, want 0.5", v)
	}
}

func TestPermutationTableShape(t *testing.T) {
	perm := newPermutation(rand.New(rand.NewSource(11)))

	var seen [256]bool
	for i := 0; i < 256; i++ {
		if perm[i] != perm[i+256] {
			t.Fatalf("perm[%d] = %d not duplicated at %d (= %d)", i, perm[i], i+256, perm[i+256])
		}
		if perm[i] < 0 || perm[i] > 255 {
			t.Fatalf("perm[%d] = %d out of range", i, perm[i])
		}
		if seen[perm[i]] {
			t.Fatalf("perm value %d repeated", perm[i])
		}
		seen[perm[i]] = true
	}
}
