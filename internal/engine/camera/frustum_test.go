package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/terralod/pkg/math"
)

// testFrustum is a 90 degree camera at the origin looking down -Z,
// near 1, far 100.
func testFrustum() [6]math.Vec4 {
	proj := math.Perspective(float32(gomath.Pi/2), 1.0, 1.0, 100.0)
	view := math.LookAt(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 0, Z: -1},
		math.Vec3{X: 0, Y: 1, Z: 0},
	)
	return ExtractFrustumPlanes(proj.Mul(view))
}

func pointInside(planes [6]math.Vec4, p math.Vec3) bool {
	for i := range planes {
		if planes[i].PlaneDistance(p) < 0 {
			return false
		}
	}
	return true
}

func TestExtractFrustumPlanes(t *testing.T) {
	planes := testFrustum()

	tests := []struct {
		name   string
		point  math.Vec3
		inside bool
	}{
		{"center of view", math.Vec3{X: 0, Y: 0, Z: -50}, true},
		{"near the eye", math.Vec3{X: 0, Y: 0, Z: -1.5}, true},
		{"behind the camera", math.Vec3{X: 0, Y: 0, Z: 5}, false},
		{"beyond the far plane", math.Vec3{X: 0, Y: 0, Z: -150}, false},
		{"far left", math.Vec3{X: -80, Y: 0, Z: -10}, false},
		{"far right", math.Vec3{X: 80, Y: 0, Z: -10}, false},
		{"above the top plane", math.Vec3{X: 0, Y: 80, Z: -10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pointInside(planes, tt.point); got != tt.inside {
				t.Errorf("pointInside(%v) = %v, want %v", tt.point, got, tt.inside)
			}
		})
	}
}

func TestExtractFrustumPlanesNormalized(t *testing.T) {
	planes := testFrustum()

	for i := range planes {
		l := gomath.Sqrt(float64(planes[i][0]*planes[i][0] +
			planes[i][1]*planes[i][1] +
			planes[i][2]*planes[i][2]))
		if l < 0.999 || l > 1.001 {
			t.Errorf("plane %d normal length = %v, want ~1", i, l)
		}
	}
}

func TestOrbitCameraPosition(t *testing.T) {
	// Zero pitch and yaw puts the camera on the +Z axis at Distance.
	c := NewOrbit(math.Vec3{}, 100, 0)
	pos := c.Position()

	if absf(pos.X) > 0.001 || absf(pos.Y) > 0.001 || absf(pos.Z-100) > 0.001 {
		t.Errorf("Position() = %v, want (0, 0, 100)", pos)
	}
}

func TestOrbitCameraAdvanceWraps(t *testing.T) {
	c := NewOrbit(math.Vec3{}, 100, 0.5)
	c.Yaw = float32(2*gomath.Pi - 0.1)
	c.Advance(0.2)

	if c.Yaw < 0 || c.Yaw > float32(2*gomath.Pi) {
		t.Errorf("Yaw = %v, want within [0, 2pi]", c.Yaw)
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
