package model

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/visionkit/yolotools/internal/errs"
)

// ReadRecords loads an exported or refined record array from a JSON
// file. A missing file is errs.KindNotFound (fatal); malformed JSON is
// errs.KindParse.
func ReadRecords(path string) ([]ImageRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "input JSON not found: %s", path)
	}
	var records []ImageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errs.Wrap(errs.KindParse, err, "invalid record JSON in %s", path)
	}
	return records, nil
}

// WriteRecords writes a record array as indented JSON, creating parent
// directories as needed. Failures are errs.KindIO (fatal).
func WriteRecords(path string, records []ImageRecord) error {
	if records == nil {
		records = []ImageRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errs.Wrap(errs.KindIO, err, "failed to encode records")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Wrap(errs.KindIO, err, "failed to create output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errs.Wrap(errs.KindIO, err, "failed to write %s", path)
	}
	return nil
}
