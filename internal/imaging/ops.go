package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/visionkit/yolotools/internal/errs"
)

// PreprocessOptions configures the resize -> grayscale -> blur -> edges
// chain. Zero values are not defaulted here; the CLI passes explicit
// settings.
type PreprocessOptions struct {
	// Scale resizes both axes; must satisfy 0 < Scale <= 1.5.
	Scale float64

	// BlurKernel is the Gaussian kernel size; must be an odd positive
	// integer.
	BlurKernel int

	// CannyLow and CannyHigh are the edge thresholds (0-255) with
	// CannyLow < CannyHigh. Gradient responses above CannyHigh become
	// strong edges (255), responses between the thresholds weak edges
	// (128), the rest black.
	CannyLow  int
	CannyHigh int
}

// Validate rejects option combinations the chain cannot run with.
func (o PreprocessOptions) Validate() error {
	if o.Scale <= 0 || o.Scale > 1.5 {
		return errs.New(errs.KindConfiguration, "scale must be between 0 and 1.5 (exclusive of 0), got %g", o.Scale)
	}
	if o.BlurKernel <= 0 || o.BlurKernel%2 == 0 {
		return errs.New(errs.KindConfiguration, "blur kernel must be an odd positive integer, got %d", o.BlurKernel)
	}
	if o.CannyLow < 0 || o.CannyHigh < 0 || o.CannyLow >= o.CannyHigh {
		return errs.New(errs.KindConfiguration, "edge thresholds must be non-negative with low < high, got %d,%d", o.CannyLow, o.CannyHigh)
	}
	return nil
}

// PreprocessResult holds every intermediate stage of the chain so the
// caller can persist them individually.
type PreprocessResult struct {
	Resized   image.Image
	Gray      image.Image
	Blurred   image.Image
	Edges     image.Image
	EdgeRatio float64
}

// Preprocess runs the chain on one image and returns all intermediates.
func Preprocess(img image.Image, opts PreprocessOptions) (*PreprocessResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	newW := int(math.Round(float64(bounds.Dx()) * opts.Scale))
	newH := int(math.Round(float64(bounds.Dy()) * opts.Scale))
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	resized := imaging.Resize(img, newW, newH, imaging.Lanczos)
	gray := effect.Grayscale(resized)
	blurred := blur.Gaussian(gray, float64(opts.BlurKernel)/2)
	edges := thresholdEdges(effect.EdgeDetection(blurred, 1.0), opts.CannyLow, opts.CannyHigh)

	return &PreprocessResult{
		Resized:   resized,
		Gray:      gray,
		Blurred:   blurred,
		Edges:     edges,
		EdgeRatio: edgeRatio(edges),
	}, nil
}

// thresholdEdges maps an edge-response image onto strong/weak/none
// levels using the two thresholds.
func thresholdEdges(src image.Image, low, high int) *image.Gray {
	bounds := src.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := rgb8(src, x, y)
			// ITU-R BT.601 luminance
			lum := int(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
			var v uint8
			switch {
			case lum >= high:
				v = 255
			case lum >= low:
				v = 128
			}
			out.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return out
}

func edgeRatio(edges *image.Gray) float64 {
	bounds := edges.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}
	strong := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if edges.GrayAt(x, y).Y == 255 {
				strong++
			}
		}
	}
	return float64(strong) / float64(total)
}
