package optics

// ApplyDistortion maps a point through the two-coefficient radial
// distortion model: offsets from the centre (cx, cy) are scaled by
// 1 + k1*r^2 + k2*r^4.
func ApplyDistortion(x, y, cx, cy, k1, k2 float64) (float64, float64) {
	dx := x - cx
	dy := y - cy
	r2 := dx*dx + dy*dy
	factor := 1 + k1*r2 + k2*r2*r2
	return cx + dx*factor, cy + dy*factor
}
