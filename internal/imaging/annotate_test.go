package imaging

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionkit/yolotools/internal/errs"
)

func TestAnnotate_ExplicitBox(t *testing.T) {
	img := newTestImage(100, 100, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out, err := Annotate(img, AnnotateOptions{
		Box: &Box{X1: 20, Y1: 30, X2: 80, Y2: 70},
	})
	require.NoError(t, err)

	// Border pixels carry the box color; the interior is untouched.
	assert.Equal(t, boxColor, out.NRGBAAt(20, 30))
	assert.Equal(t, boxColor, out.NRGBAAt(80, 70))
	assert.Equal(t, uint8(255), out.NRGBAAt(50, 50).R)
}

func TestAnnotate_InvalidBox(t *testing.T) {
	img := newTestImage(10, 10, color.NRGBA{A: 255})

	for _, box := range []Box{
		{X1: 5, Y1: 1, X2: 5, Y2: 9},
		{X1: 8, Y1: 1, X2: 2, Y2: 9},
		{X1: 1, Y1: 9, X2: 9, Y2: 1},
	} {
		_, err := Annotate(img, AnnotateOptions{Box: &box})
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindConfiguration))
	}
}

func TestAnnotate_BoxClampedToImage(t *testing.T) {
	img := newTestImage(50, 50, color.NRGBA{A: 255})

	out, err := Annotate(img, AnnotateOptions{
		Box: &Box{X1: -10, Y1: -10, X2: 200, Y2: 200},
	})
	require.NoError(t, err)
	assert.Equal(t, 50, out.Bounds().Dx())
	assert.Equal(t, 50, out.Bounds().Dy())
}

func TestAnnotate_MarginBox(t *testing.T) {
	img := newTestImage(100, 100, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out, err := Annotate(img, AnnotateOptions{Margin: 0.2})
	require.NoError(t, err)
	assert.Equal(t, boxColor, out.NRGBAAt(20, 20))
	assert.Equal(t, boxColor, out.NRGBAAt(80, 80))
}

func TestAnnotate_MarginClamped(t *testing.T) {
	img := newTestImage(100, 100, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	// A margin above 0.4 would invert the box; it gets clamped instead.
	out, err := Annotate(img, AnnotateOptions{Margin: 0.9})
	require.NoError(t, err)
	assert.Equal(t, boxColor, out.NRGBAAt(40, 40))
}

func TestAnnotate_SourceNotModified(t *testing.T) {
	img := newTestImage(50, 50, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	_, err := Annotate(img, AnnotateOptions{
		Box:             &Box{X1: 5, Y1: 5, X2: 45, Y2: 45},
		Label:           "ROI",
		TimestampFormat: "2006-01-02",
		Now:             time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			require.Equal(t, uint8(255), img.NRGBAAt(x, y).R, "source pixel (%d,%d) changed", x, y)
		}
	}
}

func TestAnnotate_TimestampAndLabelDrawText(t *testing.T) {
	img := newTestImage(120, 120, color.NRGBA{A: 255})

	out, err := Annotate(img, AnnotateOptions{
		Box:             &Box{X1: 10, Y1: 30, X2: 110, Y2: 80},
		Label:           "person",
		TimestampFormat: "2006-01-02 15:04:05",
		Now:             time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Text rendering must leave white pixels somewhere above the box
	// (label) and near the bottom edge (timestamp footer).
	assert.True(t, hasColor(out, 0, 0, 120, 30, textColor), "label text not drawn")
	assert.True(t, hasColor(out, 0, 100, 120, 120, textColor), "timestamp footer not drawn")
}

func hasColor(img interface {
	NRGBAAt(x, y int) color.NRGBA
}, x1, y1, x2, y2 int, want color.NRGBA) bool {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			if img.NRGBAAt(x, y) == want {
				return true
			}
		}
	}
	return false
}
