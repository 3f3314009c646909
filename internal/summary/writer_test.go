package summary

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionkit/yolotools/internal/errs"
	"github.com/visionkit/yolotools/internal/model"
)

func sampleRows() []model.SummaryRow {
	id := 0
	return []model.SummaryRow{
		{ClassDisplay: "person", ClassID: &id, NumDetections: 3, MeanConfidence: 0.7, MaxConfidence: 0.9},
		{ClassDisplay: "class_unknown", NumDetections: 1, MeanConfidence: 0.5, MaxConfidence: 0.5},
	}
}

func TestWriteTable(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteTable(&b, sampleRows()))

	out := b.String()
	assert.Contains(t, out, "class_display")
	assert.Contains(t, out, "person")
	assert.Contains(t, out, "0.700")
	assert.Contains(t, out, "0.900")
	assert.Contains(t, out, "class_unknown")
}

func TestWriteTable_Empty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteTable(&b, nil))
	assert.Equal(t, "No detections to summarise.\n", b.String())
}

func TestSave_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, Save(path, sampleRows()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"class_display", "class_id", "num_detections", "mean_confidence", "max_confidence"}, recs[0])
	assert.Equal(t, []string{"person", "0", "3", "0.7", "0.9"}, recs[1])
	// Missing class id becomes an empty cell.
	assert.Equal(t, "", recs[2][1])
}

func TestSave_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "summary.json")
	require.NoError(t, Save(path, sampleRows()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []model.SummaryRow
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "person", rows[0].ClassDisplay)
	assert.Nil(t, rows[1].ClassID)
}

func TestSave_UnsupportedExtension(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "summary.xlsx"), sampleRows())
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindConfiguration))
}
