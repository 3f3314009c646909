// Package refine filters exported detection records by confidence and
// class identity, producing fresh records with refinement metadata.
package refine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/visionkit/yolotools/internal/model"
)

// Options configures one refinement pass.
type Options struct {
	// MinConf is the inclusive confidence threshold. Detections with
	// no confidence are treated as 0.0.
	MinConf float64

	// Classes is a comma-separated filter accepting numeric ids and/or
	// names. Empty means no class filtering.
	Classes string

	// DropEmpty omits records whose detection list becomes empty.
	DropEmpty bool

	// SortDesc stably sorts surviving detections by confidence,
	// highest first.
	SortDesc bool
}

// ClassFilter holds the parsed class specification. A token that
// parses as an integer joins the id set; anything else joins the name
// set lower-cased. Either membership is sufficient to pass.
type ClassFilter struct {
	IDs   map[int]struct{}
	Names map[string]struct{}
}

// ParseClassFilter splits a specification string on commas. Blank
// tokens are skipped.
func ParseClassFilter(spec string) ClassFilter {
	filter := ClassFilter{
		IDs:   make(map[int]struct{}),
		Names: make(map[string]struct{}),
	}
	if spec == "" {
		return filter
	}
	for _, item := range strings.Split(spec, ",") {
		token := strings.TrimSpace(item)
		if token == "" {
			continue
		}
		if id, err := strconv.Atoi(token); err == nil {
			filter.IDs[id] = struct{}{}
			continue
		}
		filter.Names[strings.ToLower(token)] = struct{}{}
	}
	return filter
}

// Empty reports whether no class constraint was specified.
func (f ClassFilter) Empty() bool {
	return len(f.IDs) == 0 && len(f.Names) == 0
}

// Describe returns the union of stringified ids and names, sorted, for
// the class_filter metadata field.
func (f ClassFilter) Describe() []string {
	out := make([]string, 0, len(f.IDs)+len(f.Names))
	for id := range f.IDs {
		out = append(out, strconv.Itoa(id))
	}
	for name := range f.Names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// passes applies the dual-criteria predicate: the confidence gate is
// mandatory, then either an id match or a name match suffices (OR, not
// AND) when any class constraint exists.
func passes(d *model.Detection, minConf float64, f ClassFilter) bool {
	if d.ConfidenceValue() < minConf {
		return false
	}
	if f.Empty() {
		return true
	}
	if d.ClassID != nil {
		if _, ok := f.IDs[*d.ClassID]; ok {
			return true
		}
	}
	if d.ClassName != nil {
		if _, ok := f.Names[strings.ToLower(*d.ClassName)]; ok {
			return true
		}
	}
	return false
}

// Refine applies the filter to every record and returns new records;
// the input is never mutated. Every retained record carries metadata
// with the post- and pre-filter counts and the applied threshold, plus
// the class filter description when one was given.
func Refine(records []model.ImageRecord, opts Options) []model.ImageRecord {
	filter := ParseClassFilter(opts.Classes)

	refined := make([]model.ImageRecord, 0, len(records))
	for i := range records {
		record := &records[i]

		filtered := make([]model.Detection, 0, len(record.Detections))
		for _, det := range record.Detections {
			if passes(&det, opts.MinConf, filter) {
				filtered = append(filtered, det)
			}
		}

		if opts.SortDesc {
			sort.SliceStable(filtered, func(a, b int) bool {
				return filtered[a].ConfidenceValue() > filtered[b].ConfidenceValue()
			})
		}

		if opts.DropEmpty && len(filtered) == 0 {
			continue
		}

		meta := &model.Meta{
			NumDetections:  len(filtered),
			NumOriginal:    len(record.Detections),
			MinConfApplied: opts.MinConf,
		}
		if !filter.Empty() {
			meta.ClassFilter = filter.Describe()
		}

		refined = append(refined, model.ImageRecord{
			Image:      record.Image,
			ImagePath:  record.ImagePath,
			Width:      record.Width,
			Height:     record.Height,
			Detections: filtered,
			Meta:       meta,
		})
	}
	return refined
}
