// Package summary flattens refined detection records into per-class
// aggregate rows and renders them as a table, CSV or JSON.
package summary

import (
	"fmt"
	"sort"

	"github.com/visionkit/yolotools/internal/errs"
	"github.com/visionkit/yolotools/internal/model"
)

// SortKey selects the column the summary is ordered by (descending).
type SortKey string

const (
	SortByNumDetections  SortKey = "num_detections"
	SortByMeanConfidence SortKey = "mean_confidence"
	SortByMaxConfidence  SortKey = "max_confidence"
)

// ParseSortKey validates a sort key name. Unknown keys are a
// configuration error and fatal.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByNumDetections, SortByMeanConfidence, SortByMaxConfidence:
		return SortKey(s), nil
	default:
		return "", errs.New(errs.KindConfiguration,
			"invalid sort key %q (expected num_detections, mean_confidence or max_confidence)", s)
	}
}

// groupKey identifies one class group. A missing class id is its own
// distinct key rather than being merged with id 0.
type groupKey struct {
	display string
	id      int
	hasID   bool
}

type group struct {
	key     groupKey
	count   int
	sumConf float64
	maxConf float64
}

// Summarize flattens every record's detections, groups them by class
// identity and aggregates count, mean confidence and max confidence
// per group. Missing confidences count as 0.0.
//
// Rows come back sorted by the requested key descending; ties keep the
// order in which their groups were first encountered while flattening,
// so results are deterministic.
func Summarize(records []model.ImageRecord, key SortKey) ([]model.SummaryRow, error) {
	if _, err := ParseSortKey(string(key)); err != nil {
		return nil, err
	}

	var order []groupKey
	groups := make(map[groupKey]*group)

	for i := range records {
		for j := range records[i].Detections {
			det := &records[i].Detections[j]
			k := keyFor(det)
			g, ok := groups[k]
			if !ok {
				g = &group{key: k}
				groups[k] = g
				order = append(order, k)
			}
			conf := det.ConfidenceValue()
			if g.count == 0 || conf > g.maxConf {
				g.maxConf = conf
			}
			g.count++
			g.sumConf += conf
		}
	}

	rows := make([]model.SummaryRow, 0, len(order))
	for _, k := range order {
		g := groups[k]
		row := model.SummaryRow{
			ClassDisplay:   g.key.display,
			NumDetections:  g.count,
			MeanConfidence: g.sumConf / float64(g.count),
			MaxConfidence:  g.maxConf,
		}
		if g.key.hasID {
			id := g.key.id
			row.ClassID = &id
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return metric(&rows[a], key) > metric(&rows[b], key)
	})
	return rows, nil
}

// keyFor derives the group identity of one detection: the class name
// when present, otherwise class_{id}, with the raw id kept alongside.
func keyFor(det *model.Detection) groupKey {
	k := groupKey{}
	if det.ClassID != nil {
		k.id = *det.ClassID
		k.hasID = true
	}
	switch {
	case det.ClassName != nil && *det.ClassName != "":
		k.display = *det.ClassName
	case k.hasID:
		k.display = fmt.Sprintf("class_%d", k.id)
	default:
		k.display = "class_unknown"
	}
	return k
}

func metric(row *model.SummaryRow, key SortKey) float64 {
	switch key {
	case SortByMeanConfidence:
		return row.MeanConfidence
	case SortByMaxConfidence:
		return row.MaxConfidence
	default:
		return float64(row.NumDetections)
	}
}
