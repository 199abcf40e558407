package input

// PointerNDC converts pixel coordinates to normalized device coordinates in
// [-1, 1], with +Y up. Positions outside the viewport are clamped.
func PointerNDC(x, y, width, height int) (ndcX, ndcY float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}

	ndcX = 2.0*float32(x)/float32(width) - 1.0
	ndcY = 1.0 - 2.0*float32(y)/float32(height) // Flip Y

	return clamp(ndcX), clamp(ndcY)
}

func clamp(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
