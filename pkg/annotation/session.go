package annotation

import (
	"strings"
)

// Session assembles a Record for one annotation pass over one image. It holds
// only the current label set; the image and the drawn boxes are passed in
// explicitly, so sessions carry no cross-image state.
type Session struct {
	labels LabelSet
}

// NewSession creates a session with an empty label set.
func NewSession() *Session {
	return &Session{labels: LabelSet{}}
}

// SetLabels replaces the label set with the trimmed, non-empty entries of
// lines, preserving order. An empty result is not an error; BuildAnnotation
// falls back to DefaultLabel.
func (s *Session) SetLabels(lines []string) {
	s.labels = NormalizeLabels(lines)
}

// AddLabel appends a single label to the set. Blank input is ignored.
func (s *Session) AddLabel(label string) {
	if trimmed := strings.TrimSpace(label); trimmed != "" {
		s.labels = append(s.labels, trimmed)
	}
}

// Labels returns a copy of the current label set.
func (s *Session) Labels() LabelSet {
	return s.labels.Clone()
}

// BuildAnnotation pairs a drawn box with the chosen label. Missing numeric
// fields arrive as zero values, which is exactly the fallback the drawing
// surface applies, so the box is taken as-is; degenerate (zero-area) boxes
// are accepted. An empty label choice resolves to the set's default.
func (s *Session) BuildAnnotation(box BoundingBox, labelChoice string) Annotation {
	label := strings.TrimSpace(labelChoice)
	if label == "" {
		label = s.labels.Default()
	}
	return Annotation{Label: label, Box: box}
}

// AssembleRecord builds the Record for img from the annotations drawn in this
// pass. It snapshots the current label set. The only rejection is
// InvalidDimensionsError for a non-positive width or height; every downstream
// export divides by the dimensions, so this is checked once here instead of
// surfacing as an arithmetic fault later.
func (s *Session) AssembleRecord(img ImageRef, format Format, annotations []Annotation) (Record, error) {
	record := Record{
		Image:       img,
		Format:      format,
		Labels:      s.labels.Clone(),
		Annotations: append([]Annotation{}, annotations...),
	}
	if err := record.Validate(); err != nil {
		return Record{}, err
	}
	return record, nil
}
