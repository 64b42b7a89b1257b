// pkg/geom/collision.go
package geom

// SegmentsIntersect reports whether segment p0-p1 crosses segment q0-q1.
// Parallel and collinear segments never intersect.
func SegmentsIntersect(p0, p1, q0, q1 Vec) bool {
	d := (p1.X-p0.X)*(q1.Y-q0.Y) + (p1.Y-p0.Y)*(q0.X-q1.X)
	if d == 0 {
		return false
	}
	t := ((q0.X-p0.X)*(q1.Y-q0.Y) + (q0.Y-p0.Y)*(q0.X-q1.X)) / d
	u := ((q0.X-p0.X)*(p1.Y-p0.Y) + (q0.Y-p0.Y)*(p0.X-p1.X)) / d
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// RectIntersectsSegment reports whether segment a-b touches r: it either crosses one
// of the four edges or has an endpoint inside r.
func RectIntersectsSegment(r Rect, a, b Vec) bool {
	if r.ContainsPoint(a) || r.ContainsPoint(b) {
		return true
	}
	c := r.Corners()
	for i := 0; i < 4; i++ {
		if SegmentsIntersect(a, b, c[i], c[(i+1)%4]) {
			return true
		}
	}
	return false
}

// BeamSegment returns the segment of the given length starting at origin and pointing
// along angleDeg (see DirectionDeg).
func BeamSegment(origin Vec, angleDeg, length float64) (Vec, Vec) {
	return origin, origin.Add(DirectionDeg(angleDeg).Scale(length))
}
