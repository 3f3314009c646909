// Package labels reads annotation files: parsing detection lines,
// loading class-name tables and locating the files that belong
// together on disk.
package labels

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/visionkit/yolotools/internal/errs"
)

// Line is one parsed annotation line: class id, normalized
// center-and-size coordinates, and an optional confidence.
type Line struct {
	ClassID    int
	CX         float64
	CY         float64
	W          float64
	H          float64
	Confidence *float64
}

// ParseLine tokenizes one annotation line on whitespace and parses
// `class cx cy w h [conf]`. The class id is accepted when the first
// token is a float with an integral value. Extra trailing tokens are
// ignored.
//
// Failures are errs.KindParse and are meant to be recovered by the
// caller: log a warning, skip the line, continue with the file.
func ParseLine(line string) (Line, error) {
	parts := strings.Fields(line)
	if len(parts) < 5 {
		return Line{}, errs.New(errs.KindParse, "annotation line must contain at least 5 values: class cx cy w h [conf]")
	}

	classVal, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Line{}, errs.Wrap(errs.KindParse, err, "invalid class id %q", parts[0])
	}
	if math.IsNaN(classVal) || math.IsInf(classVal, 0) || classVal != math.Trunc(classVal) {
		return Line{}, errs.New(errs.KindParse, "class id %q is not an integer", parts[0])
	}

	coords := make([]float64, 4)
	for i, token := range parts[1:5] {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Line{}, errs.Wrap(errs.KindParse, err, "invalid coordinate %q", token)
		}
		coords[i] = v
	}

	parsed := Line{
		ClassID: int(classVal),
		CX:      coords[0],
		CY:      coords[1],
		W:       coords[2],
		H:       coords[3],
	}

	if len(parts) > 5 {
		conf, err := strconv.ParseFloat(parts[5], 64)
		if err != nil {
			return Line{}, errs.Wrap(errs.KindParse, err, "invalid confidence %q", parts[5])
		}
		parsed.Confidence = &conf
	}

	return parsed, nil
}

// LoadClassNames reads a class-name table: one name per line, index
// equals class id. Blank lines are skipped. A missing file is
// errs.KindNotFound and fatal to the run. An empty table is returned
// as nil, meaning class names stay unset.
func LoadClassNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "class names file not found: %s", path)
	}

	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
