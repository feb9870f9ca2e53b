package annotation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// vocHeader is the first line of the Pascal VOC text export. The summary is
// deliberately plain text rather than VOC XML; downstream consumers parse
// these lines, so the layout is load-bearing.
const vocHeader = "Pascal VOC annotation summary:"

// StructuredRecord is the persisted JSON shape of a Record. Field names and
// order match the flat files on disk, so this type is both the storage schema
// and the API representation.
type StructuredRecord struct {
	ImageName        string                 `json:"image_name"`
	AnnotationFormat string                 `json:"annotation_format"`
	CustomLabels     []string               `json:"custom_labels"`
	Annotations      []StructuredAnnotation `json:"annotations"`
}

// StructuredAnnotation is one labeled box in the persisted JSON.
type StructuredAnnotation struct {
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToStructured converts a Record to its persisted representation. Slices are
// always non-nil so empty sets serialize as [] rather than null.
func ToStructured(r Record) StructuredRecord {
	annotations := make([]StructuredAnnotation, len(r.Annotations))
	for i, a := range r.Annotations {
		annotations[i] = StructuredAnnotation{
			Label:  a.Label,
			X:      a.Box.X,
			Y:      a.Box.Y,
			Width:  a.Box.Width,
			Height: a.Box.Height,
		}
	}
	return StructuredRecord{
		ImageName:        r.Image.Name,
		AnnotationFormat: string(r.Format),
		CustomLabels:     []string(r.Labels.Clone()),
		Annotations:      annotations,
	}
}

// FromStructured rebuilds a Record from its persisted representation. The
// JSON schema does not carry the image dimensions (they belong to the image,
// not the annotation file), so the caller supplies them; with the original
// dimensions this inverts ToStructured exactly.
func FromStructured(doc StructuredRecord, width, height int) (Record, error) {
	format, err := ParseFormat(doc.AnnotationFormat)
	if err != nil {
		return Record{}, err
	}
	annotations := make([]Annotation, len(doc.Annotations))
	for i, a := range doc.Annotations {
		annotations[i] = Annotation{
			Label: a.Label,
			Box:   BoundingBox{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height},
		}
	}
	return Record{
		Image:       ImageRef{Name: doc.ImageName, Width: width, Height: height},
		Format:      format,
		Labels:      append(LabelSet{}, doc.CustomLabels...),
		Annotations: annotations,
	}, nil
}

// MarshalStructured renders the persisted JSON for a record, pretty-printed
// with a 4-space indent.
func MarshalStructured(r Record) ([]byte, error) {
	data, err := json.MarshalIndent(ToStructured(r), "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encoding annotation record: %w", err)
	}
	return data, nil
}

// UnmarshalStructured parses persisted JSON back into a StructuredRecord.
func UnmarshalStructured(data []byte) (StructuredRecord, error) {
	var doc StructuredRecord
	if err := json.Unmarshal(data, &doc); err != nil {
		return StructuredRecord{}, fmt.Errorf("decoding annotation record: %w", err)
	}
	return doc, nil
}

// ToExportText renders the format-specific text file for a record. Encoding
// is all-or-nothing: a record with non-positive image dimensions fails before
// any line is produced.
func ToExportText(r Record) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	switch r.Format {
	case FormatYOLO:
		return encodeYOLO(r), nil
	case FormatPascalVOC:
		return encodeVOC(r), nil
	default:
		return "", &UnknownFormatError{Value: string(r.Format)}
	}
}

// encodeYOLO emits one line per annotation:
//
//	<class_index> <center_x> <center_y> <width> <height>
//
// with all spatial values normalized to [0,1] by the image dimensions and
// printed with six decimal digits. The class index is the label's position in
// the label set; an unknown label falls back to index 0 rather than failing.
func encodeYOLO(r Record) string {
	imgW := float64(r.Image.Width)
	imgH := float64(r.Image.Height)

	var b strings.Builder
	for _, a := range r.Annotations {
		centerX := (a.Box.X + a.Box.Width/2) / imgW
		centerY := (a.Box.Y + a.Box.Height/2) / imgH
		normW := a.Box.Width / imgW
		normH := a.Box.Height / imgH
		fmt.Fprintf(&b, "%d %.6f %.6f %.6f %.6f\n", r.ClassIndex(a), centerX, centerY, normW, normH)
	}
	return b.String()
}

// encodeVOC emits the header line followed by one line per annotation with
// the raw pixel values.
func encodeVOC(r Record) string {
	var b strings.Builder
	b.WriteString(vocHeader + "\n")
	for _, a := range r.Annotations {
		fmt.Fprintf(&b, "Label: %s, Coordinates: (x: %s, y: %s, width: %s, height: %s)\n",
			a.Label, formatPixel(a.Box.X), formatPixel(a.Box.Y),
			formatPixel(a.Box.Width), formatPixel(a.Box.Height))
	}
	return b.String()
}

// formatPixel prints a pixel value in its shortest exact form: whole numbers
// without a decimal point, fractional values with only the digits they need.
func formatPixel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
