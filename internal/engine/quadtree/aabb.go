package quadtree

import "github.com/Faultbox/terralod/pkg/math"

// BoundingBox is an axis-aligned box stored as center and half extents.
type BoundingBox struct {
	Center  math.Vec3
	Extents math.Vec3
}

// Intersects reports whether the box touches the view frustum given as six
// planes, inside meaning a non-negative signed distance. Per plane it tests
// only the box vertex most likely to violate it (center + extent on axes
// where the plane coefficient is non-negative, center - extent otherwise).
// The test is conservative: a near-miss box may pass, but a box that truly
// intersects the frustum is never rejected.
func (b BoundingBox) Intersects(planes *[6]math.Vec4) bool {
	for i := range planes {
		pl := planes[i]

		v := b.Center
		if pl[0] >= 0 {
			v.X += b.Extents.X
		} else {
			v.X -= b.Extents.X
		}
		if pl[1] >= 0 {
			v.Y += b.Extents.Y
		} else {
			v.Y -= b.Extents.Y
		}
		if pl[2] >= 0 {
			v.Z += b.Extents.Z
		} else {
			v.Z -= b.Extents.Z
		}

		if pl.PlaneDistance(v) < 0 {
			return false
		}
	}
	return true
}
