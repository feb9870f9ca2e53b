package annotation

import (
	"strings"
)

// Format identifies the text export format of a record. The values are the
// exact strings written to the persisted JSON, so they double as wire values.
type Format string

const (
	FormatPascalVOC Format = "Pascal VOC"
	FormatYOLO      Format = "YOLO"
)

// DefaultLabel is assigned to boxes when no custom labels exist.
const DefaultLabel = "object"

// ParseFormat maps a wire string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPascalVOC:
		return FormatPascalVOC, nil
	case FormatYOLO:
		return FormatYOLO, nil
	default:
		return "", &UnknownFormatError{Value: s}
	}
}

// LabelSet is the ordered list of class labels. Order is significant: the
// position of a label is its YOLO class index. Duplicates are preserved, the
// first occurrence wins on index lookup.
type LabelSet []string

// NormalizeLabels builds a LabelSet from raw input lines: entries are
// whitespace-trimmed and empty entries are dropped, order is preserved.
// An empty result is legal; consumers fall back to DefaultLabel.
func NormalizeLabels(lines []string) LabelSet {
	set := make(LabelSet, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			set = append(set, trimmed)
		}
	}
	return set
}

// IndexOf returns the 0-based position of the first occurrence of label,
// or -1 when the label is not in the set.
func (s LabelSet) IndexOf(label string) int {
	for i, l := range s {
		if l == label {
			return i
		}
	}
	return -1
}

// Default is the label assigned when the caller did not pick one: the first
// label of the set, or DefaultLabel for an empty set.
func (s LabelSet) Default() string {
	if len(s) == 0 {
		return DefaultLabel
	}
	return s[0]
}

// Clone returns an independent copy so that a Record's snapshot cannot be
// mutated through the live set.
func (s LabelSet) Clone() LabelSet {
	if s == nil {
		return LabelSet{}
	}
	return append(LabelSet{}, s...)
}

// ImageRef identifies the image a record belongs to. Width and Height are the
// decoded pixel dimensions; Name is the original filename and is used to
// derive the output base filenames.
type ImageRef struct {
	Name   string
	Width  int
	Height int
}

// BoundingBox is an axis-aligned rectangle in the image's pixel space,
// origin at the top-left corner. Zero-area boxes are accepted as drawn.
type BoundingBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Annotation pairs one drawn box with its class label.
type Annotation struct {
	Label string
	Box   BoundingBox
}

// Record is the aggregate saved for one image: the image identity, the chosen
// export format, the label set snapshot at save time and the drawn boxes in
// drawing order. Records are immutable once written; re-saving the same image
// replaces the previous record.
type Record struct {
	Image       ImageRef
	Format      Format
	Labels      LabelSet
	Annotations []Annotation
}

// Validate checks the preconditions for exporting the record. The only hard
// requirement is positive image dimensions, which the YOLO normalization
// divides by.
func (r Record) Validate() error {
	if r.Image.Width <= 0 || r.Image.Height <= 0 {
		return &InvalidDimensionsError{Width: r.Image.Width, Height: r.Image.Height}
	}
	return nil
}

// ClassIndex resolves the YOLO class index for the annotation's label:
// the 0-based position in the record's label set, silently falling back to 0
// when the label is absent.
func (r Record) ClassIndex(a Annotation) int {
	if idx := r.Labels.IndexOf(a.Label); idx >= 0 {
		return idx
	}
	return 0
}
