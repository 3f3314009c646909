package imaging

import (
	"image"
	"image/color"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/visionkit/yolotools/internal/errs"
)

// Box is an inclusive pixel-edge rectangle used for overlays.
type Box struct {
	X1, Y1, X2, Y2 int
}

// AnnotateOptions configures the overlay drawn by Annotate.
type AnnotateOptions struct {
	// Label is drawn just above the box.
	Label string

	// Box is the region to outline. When nil, a synthetic box is
	// computed from Margin.
	Box *Box

	// Margin is the fractional inset used for the synthetic box,
	// clamped to [0, 0.4].
	Margin float64

	// TimestampFormat is a Go reference-time layout for the footer.
	// Empty disables the footer.
	TimestampFormat string

	// Now supplies the footer time; zero means time.Now().
	Now time.Time
}

var (
	boxColor  = color.NRGBA{R: 0, G: 200, B: 0, A: 255}
	textColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Annotate draws a bounding box, its label and an optional timestamp
// footer onto a copy of img. The source image is never modified.
//
// An explicit box must satisfy X1 < X2 and Y1 < Y2
// (errs.KindConfiguration otherwise); it is then clamped to the image.
func Annotate(img image.Image, opts AnnotateOptions) (*image.NRGBA, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var box Box
	if opts.Box != nil {
		box = *opts.Box
		if box.X1 >= box.X2 || box.Y1 >= box.Y2 {
			return nil, errs.New(errs.KindConfiguration, "bounding box must satisfy x1 < x2 and y1 < y2")
		}
		box = clampBox(box, width, height)
	} else {
		box = marginBox(width, height, opts.Margin)
	}

	out := imaging.Clone(img)
	drawRect(out, box, 2)

	if opts.Label != "" {
		labelY := box.Y1 - 6
		if labelY < basicfont.Face7x13.Ascent {
			labelY = box.Y1 + basicfont.Face7x13.Ascent + 4
		}
		drawText(out, opts.Label, box.X1, labelY)
	}

	if opts.TimestampFormat != "" {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		drawText(out, now.Format(opts.TimestampFormat), 8, height-8)
	}

	return out, nil
}

// marginBox computes a synthetic box inset by a fraction of each axis.
// The margin is clamped so the box never collapses.
func marginBox(width, height int, margin float64) Box {
	if margin < 0 {
		margin = 0
	}
	if margin > 0.4 {
		margin = 0.4
	}
	mx := int(float64(width) * margin)
	my := int(float64(height) * margin)
	return Box{X1: mx, Y1: my, X2: width - mx, Y2: height - my}
}

func clampBox(b Box, width, height int) Box {
	clampInt := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v > max {
			return max
		}
		return v
	}
	return Box{
		X1: clampInt(b.X1, width),
		Y1: clampInt(b.Y1, height),
		X2: clampInt(b.X2, width),
		Y2: clampInt(b.Y2, height),
	}
}

// drawRect outlines a box with the given border thickness, growing
// inward so the outline stays inside the image.
func drawRect(img *image.NRGBA, b Box, thickness int) {
	bounds := img.Bounds()
	set := func(x, y int) {
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			img.SetNRGBA(x, y, boxColor)
		}
	}
	for t := 0; t < thickness; t++ {
		for x := b.X1; x <= b.X2; x++ {
			set(x, b.Y1+t)
			set(x, b.Y2-t)
		}
		for y := b.Y1; y <= b.Y2; y++ {
			set(b.X1+t, y)
			set(b.X2-t, y)
		}
	}
}

func drawText(img *image.NRGBA, text string, x, y int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
