package camera

import "github.com/Faultbox/terralod/pkg/math"

// Frustum plane indices as returned by ExtractFrustumPlanes.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// ExtractFrustumPlanes pulls the six frustum planes out of a column-major
// view-projection matrix using the Gribb/Hartmann row method. Each plane is
// (a, b, c, d) with the frustum interior on the non-negative side, and is
// normalized so plane distances are in world units.
func ExtractFrustumPlanes(viewProj math.Mat4) [6]math.Vec4 {
	r0 := viewProj.Row(0)
	r1 := viewProj.Row(1)
	r2 := viewProj.Row(2)
	r3 := viewProj.Row(3)

	planes := [6]math.Vec4{
		PlaneLeft:   r3.Add(r0),
		PlaneRight:  r3.Sub(r0),
		PlaneBottom: r3.Add(r1),
		PlaneTop:    r3.Sub(r1),
		PlaneNear:   r3.Add(r2),
		PlaneFar:    r3.Sub(r2),
	}

	for i := range planes {
		planes[i] = planes[i].NormalizePlane()
	}
	return planes
}
