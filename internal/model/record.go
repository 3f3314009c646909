package model

// BBoxNorm is a bounding box in normalized center-and-size form, each
// component nominally in [0,1].
type BBoxNorm struct {
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
}

// BBoxPixel is a bounding box as integer edges in image pixel space,
// clamped to image bounds so 0 <= X1 <= X2 <= width and
// 0 <= Y1 <= Y2 <= height always hold.
type BBoxPixel struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Detection is one recognized object instance.
//
// ClassName and Confidence are optional: a nil ClassName means no class
// table was supplied (or the id was out of range), a nil Confidence
// means the detector reported none. ClassID is always written by the
// exporter but stays nullable so records produced elsewhere with a
// missing id survive a round trip instead of collapsing to 0.
type Detection struct {
	ClassID    *int      `json:"class_id"`
	ClassName  *string   `json:"class_name"`
	Confidence *float64  `json:"confidence"`
	BBox       BBoxPixel `json:"bbox"`
	BBoxNorm   BBoxNorm  `json:"bbox_norm"`
}

// ConfidenceValue returns the confidence, treating absence as 0.0.
func (d *Detection) ConfidenceValue() float64 {
	if d.Confidence == nil {
		return 0.0
	}
	return *d.Confidence
}

// Meta is attached to records by the refinement stage.
type Meta struct {
	NumDetections  int      `json:"num_detections"`
	NumOriginal    int      `json:"num_original"`
	MinConfApplied float64  `json:"min_conf_applied"`
	ClassFilter    []string `json:"class_filter,omitempty"`
}

// ImageRecord holds all detections for one image. Detection order is
// significant and preserved unless a sort pass is requested. Meta is
// nil on exported records and set on refined ones.
type ImageRecord struct {
	Image      string      `json:"image"`
	ImagePath  string      `json:"image_path"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Detections []Detection `json:"detections"`
	Meta       *Meta       `json:"meta,omitempty"`
}

// SummaryRow aggregates all detections sharing a class identity.
type SummaryRow struct {
	ClassDisplay   string  `json:"class_display"`
	ClassID        *int    `json:"class_id"`
	NumDetections  int     `json:"num_detections"`
	MeanConfidence float64 `json:"mean_confidence"`
	MaxConfidence  float64 `json:"max_confidence"`
}
