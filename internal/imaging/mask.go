package imaging

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/visionkit/yolotools/internal/errs"
)

// HSVBound is one end of an HSV range in OpenCV byte convention:
// hue 0-179 (degrees halved), saturation and value 0-255. The byte
// convention is kept so thresholds written for the original tooling
// carry over unchanged.
type HSVBound struct {
	H uint8
	S uint8
	V uint8
}

// MaskResult holds the binary mask, the masked source image, and the
// fraction of pixels the mask kept.
type MaskResult struct {
	Mask     *image.Gray
	Masked   *image.NRGBA
	Coverage float64
}

// MaskHSV keeps every pixel whose HSV representation falls inside
// [lower, upper] per channel and blacks out the rest. Hue does not
// wrap: lower.H must be <= upper.H, as with a plain per-channel range
// check.
func MaskHSV(img image.Image, lower, upper HSVBound) (*MaskResult, error) {
	if lower.H > 179 || upper.H > 179 {
		return nil, errs.New(errs.KindConfiguration, "hue bound must be in 0..179")
	}
	if lower.H > upper.H || lower.S > upper.S || lower.V > upper.V {
		return nil, errs.New(errs.KindConfiguration, "lower HSV bound exceeds upper bound")
	}

	bounds := img.Bounds()
	mask := image.NewGray(bounds)
	masked := image.NewNRGBA(bounds)

	kept := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := rgb8(img, x, y)
			c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
			h, s, v := c.Hsv()

			if inHSVRange(h, s, v, lower, upper) {
				mask.SetGray(x, y, color.Gray{Y: 255})
				masked.Set(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
				kept++
			} else {
				masked.Set(x, y, color.NRGBA{A: 255})
			}
		}
	}

	total := bounds.Dx() * bounds.Dy()
	coverage := 0.0
	if total > 0 {
		coverage = float64(kept) / float64(total)
	}

	return &MaskResult{Mask: mask, Masked: masked, Coverage: coverage}, nil
}

// inHSVRange compares a colorful HSV triple (h in degrees, s and v in
// [0,1]) against byte-convention bounds.
func inHSVRange(h, s, v float64, lower, upper HSVBound) bool {
	hueLow := float64(lower.H) * 2
	hueHigh := float64(upper.H) * 2
	satLow := float64(lower.S) / 255
	satHigh := float64(upper.S) / 255
	valLow := float64(lower.V) / 255
	valHigh := float64(upper.V) / 255

	return h >= hueLow && h <= hueHigh &&
		s >= satLow && s <= satHigh &&
		v >= valLow && v <= valHigh
}
