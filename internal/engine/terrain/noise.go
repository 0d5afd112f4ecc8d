package terrain

import (
	gomath "math"
	"math/rand"
)

// newPermutation shuffles 0..255 and doubles the result to 512 entries so
// corner hashing never needs a wraparound check. The table is per-instance
// state: a fixed-seed source reproduces the same terrain.
func newPermutation(rng *rand.Rand) [512]int {
	var base [256]int
	for i := range base {
		base[i] = i
	}
	rng.Shuffle(len(base), func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})

	var perm [512]int
	for i, v := range base {
		perm[i] = v
		perm[i+256] = v
	}
	return perm
}

// PerlinNoise evaluates classic 2D gradient noise at (x, z): the four cell
// corners are hashed through the permutation table to pick gradient
// directions, and their contributions are bilinearly blended with a
// smootherstep fade. Deterministic for a fixed permutation table.
func (h *Heightfield) PerlinNoise(x, z float32) float32 {
	xi := int(gomath.Floor(float64(x))) & 255
	zi := int(gomath.Floor(float64(z))) & 255

	x -= float32(gomath.Floor(float64(x)))
	z -= float32(gomath.Floor(float64(z)))

	u := fade(x)
	v := fade(z)

	a := h.perm[xi] + zi
	b := h.perm[xi+1] + zi

	g00 := grad(h.perm[a], x, z)
	g10 := grad(h.perm[b], x-1, z)
	g01 := grad(h.perm[a+1], x, z-1)
	g11 := grad(h.perm[b+1], x-1, z-1)

	return lerp(lerp(g00, g10, u), lerp(g01, g11, u), v)
}

// fade is the smootherstep curve 6t^5 - 15t^4 + 10t^3.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

func lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// grad selects one of four gradient directions from the low two hash bits:
// bit 1 swaps the axes, each bit flips one sign.
func grad(hash int, x, z float32) float32 {
	h := hash & 3

	u, v := x, z
	if h >= 2 {
		u, v = z, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
