// Package export walks a detection run directory and turns annotation
// files plus their paired images into the canonical record schema.
package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/visionkit/yolotools/internal/errs"
	"github.com/visionkit/yolotools/internal/imaging"
	"github.com/visionkit/yolotools/internal/labels"
	"github.com/visionkit/yolotools/internal/logger"
	"github.com/visionkit/yolotools/internal/model"
)

// Options configures one export run. All paths are explicit; nothing
// is defaulted inside the pipeline.
type Options struct {
	// RunsDir is the root holding images and annotation files.
	RunsDir string

	// LabelsDir optionally overrides label-directory resolution. It
	// must exist when set.
	LabelsDir string

	// ClassNames optionally points at a class-name table (one name per
	// line, index = class id). Empty means class names stay unset.
	ClassNames string

	// RelativePaths stores image_path relative to RunsDir instead of
	// the path as resolved.
	RelativePaths bool
}

// Export builds one ImageRecord per annotation file under the resolved
// labels directory, visiting files in sorted order.
//
// Errors that prevent establishing the set of work (missing runs dir,
// labels dir or class-name file) are returned and abort the run.
// Per-file failures (no paired image, unreadable image, malformed
// lines) are logged as warnings and skipped. An empty result is
// reported with a warning but is not an error.
func Export(provider imaging.Provider, opts Options) ([]model.ImageRecord, error) {
	info, err := os.Stat(opts.RunsDir)
	if err != nil || !info.IsDir() {
		return nil, errs.New(errs.KindNotFound, "runs directory not found: %s", opts.RunsDir)
	}

	labelsDir, err := labels.ResolveLabelsDir(opts.RunsDir, opts.LabelsDir)
	if err != nil {
		return nil, err
	}
	logger.Debugf("resolved labels directory: %s", labelsDir)

	var classNames []string
	if opts.ClassNames != "" {
		classNames, err = labels.LoadClassNames(opts.ClassNames)
		if err != nil {
			return nil, err
		}
	}

	labelFiles, err := labels.ListLabelFiles(labelsDir)
	if err != nil {
		return nil, err
	}

	records := make([]model.ImageRecord, 0, len(labelFiles))
	for _, labelFile := range labelFiles {
		record, err := exportOne(provider, opts, classNames, labelFile)
		if err != nil {
			if errs.Fatal(err) {
				return nil, err
			}
			logger.WithError(err).Warnf("skipping annotation file %s", labelFile)
			continue
		}
		records = append(records, *record)
	}

	if len(records) == 0 {
		logger.Warnf("no detections exported; check the runs directory and label files")
	}
	return records, nil
}

// exportOne processes a single annotation file. Any returned error is
// recoverable: the caller warns and moves to the next file.
func exportOne(provider imaging.Provider, opts Options, classNames []string, labelFile string) (*model.ImageRecord, error) {
	imagePath, err := labels.FindImageForLabel(opts.RunsDir, labelFile)
	if err != nil {
		return nil, err
	}

	width, height, err := provider.Dimensions(imagePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(labelFile)
	if err != nil {
		return nil, errs.Wrap(errs.KindResolution, err, "failed to read annotation file")
	}

	detections := make([]model.Detection, 0)
	for _, rawLine := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(rawLine) == "" {
			continue
		}
		line, err := labels.ParseLine(rawLine)
		if err != nil {
			logger.WithField("label", labelFile).Warnf("skipping malformed line: %v", err)
			continue
		}
		detections = append(detections, buildDetection(line, classNames, width, height))
	}

	storedPath := imagePath
	if opts.RelativePaths {
		if rel, err := filepath.Rel(opts.RunsDir, imagePath); err == nil {
			storedPath = rel
		}
	}

	return &model.ImageRecord{
		Image:      filepath.Base(imagePath),
		ImagePath:  storedPath,
		Width:      width,
		Height:     height,
		Detections: detections,
	}, nil
}

// buildDetection maps a parsed line into the record schema: optional
// class name lookup plus normalized-to-pixel conversion.
func buildDetection(line labels.Line, classNames []string, width, height int) model.Detection {
	classID := line.ClassID

	var className *string
	if len(classNames) > 0 && classID >= 0 && classID < len(classNames) {
		className = &classNames[classID]
	}

	norm := model.BBoxNorm{CX: line.CX, CY: line.CY, W: line.W, H: line.H}
	return model.Detection{
		ClassID:    &classID,
		ClassName:  className,
		Confidence: line.Confidence,
		BBox:       model.ToPixelBox(norm, width, height),
		BBoxNorm:   norm,
	}
}
