package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/visionkit/yolotools/internal/errs"
	"github.com/visionkit/yolotools/internal/imaging"
)

// parseBBox converts "x1,y1,x2,y2" into a box, requiring x1 < x2 and
// y1 < y2.
func parseBBox(spec string) (*imaging.Box, error) {
	values, err := splitInts(spec, 4)
	if err != nil {
		return nil, errs.Wrap(errs.KindConfiguration, err, "bbox must be four integers separated by commas")
	}
	box := &imaging.Box{X1: values[0], Y1: values[1], X2: values[2], Y2: values[3]}
	if box.X1 >= box.X2 || box.Y1 >= box.Y2 {
		return nil, errs.New(errs.KindConfiguration, "bounding box must satisfy x1 < x2 and y1 < y2")
	}
	return box, nil
}

// parseHSVTriplet converts "h,s,v" into a bound, each component in
// 0..255 byte convention.
func parseHSVTriplet(spec string) (imaging.HSVBound, error) {
	values, err := splitInts(spec, 3)
	if err != nil {
		return imaging.HSVBound{}, errs.Wrap(errs.KindConfiguration, err, "HSV triplet must contain exactly 3 integers")
	}
	for _, v := range values {
		if v < 0 || v > 255 {
			return imaging.HSVBound{}, errs.New(errs.KindConfiguration, "HSV components must be in 0..255, got %d", v)
		}
	}
	return imaging.HSVBound{H: uint8(values[0]), S: uint8(values[1]), V: uint8(values[2])}, nil
}

// parseThresholdPair converts "low,high" into edge thresholds.
func parseThresholdPair(spec string) (int, int, error) {
	values, err := splitInts(spec, 2)
	if err != nil {
		return 0, 0, errs.Wrap(errs.KindConfiguration, err, "thresholds must be two integers separated by a comma")
	}
	return values[0], values[1], nil
}

func splitInts(spec string, count int) ([]int, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != count {
		return nil, errs.New(errs.KindConfiguration, "expected %d comma-separated values, got %d", count, len(parts))
	}
	values := make([]int, count)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errs.Wrap(errs.KindConfiguration, err, "invalid integer %q", part)
		}
		values[i] = v
	}
	return values, nil
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.Wrap(errs.KindIO, err, "failed to create directory %s", dir)
	}
	return nil
}
