package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionkit/yolotools/internal/errs"
	"github.com/visionkit/yolotools/internal/imaging"
)

func TestParseBBox(t *testing.T) {
	box, err := parseBBox("10, 20, 30, 40")
	require.NoError(t, err)
	assert.Equal(t, &imaging.Box{X1: 10, Y1: 20, X2: 30, Y2: 40}, box)

	for _, spec := range []string{"", "1,2,3", "1,2,3,4,5", "a,2,3,4", "30,20,10,40", "10,40,30,20"} {
		_, err := parseBBox(spec)
		require.Error(t, err, spec)
		assert.True(t, errs.IsKind(err, errs.KindConfiguration), spec)
	}
}

func TestParseHSVTriplet(t *testing.T) {
	bound, err := parseHSVTriplet("35,80,255")
	require.NoError(t, err)
	assert.Equal(t, imaging.HSVBound{H: 35, S: 80, V: 255}, bound)

	for _, spec := range []string{"", "35,80", "35,80,90,100", "x,80,90", "35,80,256", "-1,80,90"} {
		_, err := parseHSVTriplet(spec)
		require.Error(t, err, spec)
		assert.True(t, errs.IsKind(err, errs.KindConfiguration), spec)
	}
}

func TestParseThresholdPair(t *testing.T) {
	low, high, err := parseThresholdPair("80, 160")
	require.NoError(t, err)
	assert.Equal(t, 80, low)
	assert.Equal(t, 160, high)

	for _, spec := range []string{"", "80", "80,160,240", "low,high"} {
		_, _, err := parseThresholdPair(spec)
		require.Error(t, err, spec)
	}
}
