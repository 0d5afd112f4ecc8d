// Package camera provides the orbit camera and frustum plane extraction
// used to drive terrain culling.
package camera

import (
	gomath "math"

	"github.com/Faultbox/terralod/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians
}

// NewOrbit creates an orbit camera looking down at the given center from
// the given distance and pitch.
func NewOrbit(center math.Vec3, distance, pitch float32) *OrbitCamera {
	return &OrbitCamera{
		Center:   center,
		Distance: distance,
		Pitch:    pitch,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Sin(float64(c.Yaw)))
	y := c.Distance * float32(gomath.Sin(float64(c.Pitch)))
	z := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Cos(float64(c.Yaw)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Center, up)
}

// Advance rotates the camera around its center by deltaYaw radians.
func (c *OrbitCamera) Advance(deltaYaw float32) {
	c.Yaw += deltaYaw
	if c.Yaw > 2*gomath.Pi {
		c.Yaw -= 2 * gomath.Pi
	}
}
