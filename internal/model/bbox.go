package model

import "math"

// ToPixelBox converts a normalized center-and-size box into clamped
// integer pixel edges for an image of the given dimensions.
//
// Each edge is scaled, clamped to [0,width] or [0,height], then rounded
// half away from zero. Out-of-range normalized inputs are clamped, not
// rejected, so the pixel-box invariant holds for any input.
func ToPixelBox(norm BBoxNorm, width, height int) BBoxPixel {
	xCenter := norm.CX * float64(width)
	yCenter := norm.CY * float64(height)
	// A negative size would swap the edges, so take its magnitude
	// before deriving them.
	boxW := math.Abs(norm.W) * float64(width)
	boxH := math.Abs(norm.H) * float64(height)

	x1 := clamp(xCenter-boxW/2, 0, float64(width))
	y1 := clamp(yCenter-boxH/2, 0, float64(height))
	x2 := clamp(xCenter+boxW/2, 0, float64(width))
	y2 := clamp(yCenter+boxH/2, 0, float64(height))

	return BBoxPixel{
		X1: int(math.Round(x1)),
		Y1: int(math.Round(y1)),
		X2: int(math.Round(x2)),
		Y2: int(math.Round(y2)),
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
