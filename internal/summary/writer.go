package summary

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/visionkit/yolotools/internal/errs"
	"github.com/visionkit/yolotools/internal/model"
)

// WriteTable renders rows as an aligned text table. Confidence columns
// use three decimals, matching the on-screen report of the original
// tooling.
func WriteTable(w io.Writer, rows []model.SummaryRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No detections to summarise.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "class_display\tclass_id\tnum_detections\tmean_confidence\tmax_confidence")
	for i := range rows {
		row := &rows[i]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%.3f\n",
			row.ClassDisplay, classIDString(row.ClassID), row.NumDetections,
			row.MeanConfidence, row.MaxConfidence)
	}
	if err := tw.Flush(); err != nil {
		return errs.Wrap(errs.KindIO, err, "failed to write summary table")
	}
	return nil
}

// Save writes rows to path, picking the format from the extension:
// .csv or .json. Anything else is a configuration error.
func Save(path string, rows []model.SummaryRow) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return saveCSV(path, rows)
	case ".json":
		return saveJSON(path, rows)
	default:
		return errs.New(errs.KindConfiguration, "unsupported output format %q; use .csv or .json", filepath.Ext(path))
	}
}

func saveCSV(path string, rows []model.SummaryRow) error {
	f, err := createWithParents(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"class_display", "class_id", "num_detections", "mean_confidence", "max_confidence"}); err != nil {
		return errs.Wrap(errs.KindIO, err, "failed to write CSV header")
	}
	for i := range rows {
		row := &rows[i]
		record := []string{
			row.ClassDisplay,
			classIDString(row.ClassID),
			strconv.Itoa(row.NumDetections),
			strconv.FormatFloat(row.MeanConfidence, 'f', -1, 64),
			strconv.FormatFloat(row.MaxConfidence, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return errs.Wrap(errs.KindIO, err, "failed to write CSV row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errs.Wrap(errs.KindIO, err, "failed to flush CSV output")
	}
	return nil
}

func saveJSON(path string, rows []model.SummaryRow) error {
	if rows == nil {
		rows = []model.SummaryRow{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return errs.Wrap(errs.KindIO, err, "failed to encode summary rows")
	}
	f, err := createWithParents(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return errs.Wrap(errs.KindIO, err, "failed to write %s", path)
	}
	return nil
}

func createWithParents(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errs.Wrap(errs.KindIO, err, "failed to create output directory %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindIO, err, "failed to create %s", path)
	}
	return f, nil
}

func classIDString(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}
