package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPixelBox(t *testing.T) {
	tests := []struct {
		name   string
		norm   BBoxNorm
		width  int
		height int
		want   BBoxPixel
	}{
		{
			"centered box on 100x200",
			BBoxNorm{CX: 0.5, CY: 0.5, W: 0.2, H: 0.4},
			100, 200,
			BBoxPixel{X1: 40, Y1: 60, X2: 60, Y2: 140},
		},
		{
			"full image",
			BBoxNorm{CX: 0.5, CY: 0.5, W: 1.0, H: 1.0},
			640, 480,
			BBoxPixel{X1: 0, Y1: 0, X2: 640, Y2: 480},
		},
		{
			"box spilling over the left edge is clamped",
			BBoxNorm{CX: 0.0, CY: 0.5, W: 0.5, H: 0.5},
			100, 100,
			BBoxPixel{X1: 0, Y1: 25, X2: 25, Y2: 75},
		},
		{
			"box spilling over the bottom-right is clamped",
			BBoxNorm{CX: 1.0, CY: 1.0, W: 0.6, H: 0.6},
			100, 100,
			BBoxPixel{X1: 70, Y1: 70, X2: 100, Y2: 100},
		},
		{
			"degenerate zero-size box",
			BBoxNorm{CX: 0.3, CY: 0.7, W: 0, H: 0},
			100, 100,
			BBoxPixel{X1: 30, Y1: 70, X2: 30, Y2: 70},
		},
		{
			"half pixels round away from zero",
			BBoxNorm{CX: 0.5, CY: 0.5, W: 0.15, H: 0.15},
			10, 10,
			// edges at 4.25 and 5.75 round to 4 and 6
			BBoxPixel{X1: 4, Y1: 4, X2: 6, Y2: 6},
		},
		{
			"completely out-of-range input still clamps",
			BBoxNorm{CX: 2.0, CY: -1.0, W: 0.5, H: 0.5},
			100, 100,
			BBoxPixel{X1: 100, Y1: 0, X2: 100, Y2: 0},
		},
		{
			"negative size keeps edges ordered",
			BBoxNorm{CX: 0.5, CY: 0.5, W: -0.5, H: -0.5},
			100, 100,
			BBoxPixel{X1: 25, Y1: 25, X2: 75, Y2: 75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPixelBox(tt.norm, tt.width, tt.height)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToPixelBox_InvariantHolds(t *testing.T) {
	// The pixel-box invariant must hold even for hostile inputs.
	inputs := []BBoxNorm{
		{CX: 0.5, CY: 0.5, W: 0.3, H: 0.3},
		{CX: -5, CY: 5, W: 10, H: 10},
		{CX: 1.5, CY: 1.5, W: 0.2, H: 0.2},
		{CX: 0, CY: 0, W: 2, H: 2},
		{CX: 0.5, CY: 0.5, W: -0.5, H: -0.5},
		{CX: 0.2, CY: 0.8, W: -3, H: -3},
	}
	for _, norm := range inputs {
		box := ToPixelBox(norm, 320, 240)
		assert.GreaterOrEqual(t, box.X1, 0)
		assert.LessOrEqual(t, box.X1, box.X2)
		assert.LessOrEqual(t, box.X2, 320)
		assert.GreaterOrEqual(t, box.Y1, 0)
		assert.LessOrEqual(t, box.Y1, box.Y2)
		assert.LessOrEqual(t, box.Y2, 240)
	}
}

func TestConfidenceValue(t *testing.T) {
	conf := 0.75
	withConf := Detection{Confidence: &conf}
	withoutConf := Detection{}

	assert.Equal(t, 0.75, withConf.ConfidenceValue())
	assert.Equal(t, 0.0, withoutConf.ConfidenceValue())
}
