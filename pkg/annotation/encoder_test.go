package annotation

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestToExportTextYOLO(t *testing.T) {
	record := Record{
		Image:  ImageRef{Name: "photo.png", Width: 200, Height: 100},
		Format: FormatYOLO,
		Labels: LabelSet{"cat", "dog"},
		Annotations: []Annotation{
			{Label: "cat", Box: BoundingBox{X: 10, Y: 20, Width: 100, Height: 50}},
		},
	}

	text, err := ToExportText(record)
	if err != nil {
		t.Fatalf("Failed to encode YOLO: %v", err)
	}

	expected := "0 0.300000 0.450000 0.500000 0.500000\n"
	if text != expected {
		t.Errorf("YOLO output = %q, want %q", text, expected)
	}
}

func TestToExportTextYOLOClassIndexes(t *testing.T) {
	record := Record{
		Image:  ImageRef{Name: "photo.png", Width: 100, Height: 100},
		Format: FormatYOLO,
		Labels: LabelSet{"cat", "dog", "fish"},
		Annotations: []Annotation{
			{Label: "dog", Box: BoundingBox{X: 0, Y: 0, Width: 100, Height: 100}},
			{Label: "fish", Box: BoundingBox{X: 0, Y: 0, Width: 100, Height: 100}},
			{Label: "bird", Box: BoundingBox{X: 0, Y: 0, Width: 100, Height: 100}},
		},
	}

	text, err := ToExportText(record)
	if err != nil {
		t.Fatalf("Failed to encode YOLO: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), text)
	}

	expectedIndexes := []string{"1", "2", "0"}
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 5 {
			t.Fatalf("Line %d has %d fields, want 5: %q", i, len(fields), line)
		}
		if fields[0] != expectedIndexes[i] {
			t.Errorf("Line %d class index = %s, want %s", i, fields[0], expectedIndexes[i])
		}
	}
}

func TestToExportTextYOLOEmptyLabelSet(t *testing.T) {
	record := Record{
		Image:  ImageRef{Name: "photo.png", Width: 100, Height: 100},
		Format: FormatYOLO,
		Labels: LabelSet{},
		Annotations: []Annotation{
			{Label: DefaultLabel, Box: BoundingBox{X: 25, Y: 25, Width: 50, Height: 50}},
		},
	}

	text, err := ToExportText(record)
	if err != nil {
		t.Fatalf("Failed to encode YOLO: %v", err)
	}

	expected := "0 0.500000 0.500000 0.500000 0.500000\n"
	if text != expected {
		t.Errorf("YOLO output = %q, want %q", text, expected)
	}
}

func TestToExportTextYOLOEmptyAnnotations(t *testing.T) {
	record := Record{
		Image:  ImageRef{Name: "photo.png", Width: 100, Height: 100},
		Format: FormatYOLO,
		Labels: LabelSet{"cat"},
	}

	text, err := ToExportText(record)
	if err != nil {
		t.Fatalf("Failed to encode YOLO: %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty output for no annotations, got %q", text)
	}
}

func TestToExportTextVOC(t *testing.T) {
	record := Record{
		Image:  ImageRef{Name: "photo.png", Width: 200, Height: 100},
		Format: FormatPascalVOC,
		Labels: LabelSet{"cat", "dog"},
		Annotations: []Annotation{
			{Label: "cat", Box: BoundingBox{X: 5, Y: 5, Width: 20, Height: 30}},
			{Label: "dog", Box: BoundingBox{X: 0, Y: 0.25, Width: 199, Height: 99.75}},
		},
	}

	text, err := ToExportText(record)
	if err != nil {
		t.Fatalf("Failed to encode Pascal VOC: %v", err)
	}

	expected := "Pascal VOC annotation summary:\n" +
		"Label: cat, Coordinates: (x: 5, y: 5, width: 20, height: 30)\n" +
		"Label: dog, Coordinates: (x: 0, y: 0.25, width: 199, height: 99.75)\n"
	if text != expected {
		t.Errorf("Pascal VOC output = %q, want %q", text, expected)
	}
}

func TestToExportTextVOCHeaderOnly(t *testing.T) {
	record := Record{
		Image:  ImageRef{Name: "photo.png", Width: 10, Height: 10},
		Format: FormatPascalVOC,
	}

	text, err := ToExportText(record)
	if err != nil {
		t.Fatalf("Failed to encode Pascal VOC: %v", err)
	}
	if text != "Pascal VOC annotation summary:\n" {
		t.Errorf("Expected header only, got %q", text)
	}
}

func TestToExportTextInvalidDimensions(t *testing.T) {
	for _, format := range []Format{FormatYOLO, FormatPascalVOC} {
		record := Record{
			Image:  ImageRef{Name: "photo.png", Width: 0, Height: 100},
			Format: format,
			Annotations: []Annotation{
				{Label: "cat", Box: BoundingBox{X: 1, Y: 1, Width: 1, Height: 1}},
			},
		}

		text, err := ToExportText(record)
		if err == nil {
			t.Errorf("%s: expected error for zero width, got %q", format, text)
			continue
		}
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%s: error = %v, want ErrInvalidDimensions", format, err)
		}
		if text != "" {
			t.Errorf("%s: expected no output on error, got %q", format, text)
		}
	}
}

func TestToExportTextUnknownFormat(t *testing.T) {
	record := Record{
		Image:  ImageRef{Name: "photo.png", Width: 100, Height: 100},
		Format: Format("COCO"),
	}

	_, err := ToExportText(record)
	if err == nil {
		t.Fatal("Expected error for unknown format")
	}
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormatPixel(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{5, "5"},
		{5.0, "5"},
		{12.5, "12.5"},
		{0, "0"},
		{0.25, "0.25"},
		{199.75, "199.75"},
		{100.0, "100"},
	}

	for _, tt := range tests {
		if got := formatPixel(tt.value); got != tt.expected {
			t.Errorf("formatPixel(%v) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}

func TestMarshalStructured(t *testing.T) {
	record := Record{
		Image:  ImageRef{Name: "photo.png", Width: 200, Height: 100},
		Format: FormatYOLO,
		Labels: LabelSet{"cat", "dog"},
		Annotations: []Annotation{
			{Label: "cat", Box: BoundingBox{X: 10, Y: 20, Width: 100, Height: 50}},
		},
	}

	data, err := MarshalStructured(record)
	if err != nil {
		t.Fatalf("Failed to marshal record: %v", err)
	}

	expected := `{
    "image_name": "photo.png",
    "annotation_format": "YOLO",
    "custom_labels": [
        "cat",
        "dog"
    ],
    "annotations": [
        {
            "label": "cat",
            "x": 10,
            "y": 20,
            "width": 100,
            "height": 50
        }
    ]
}`
	if string(data) != expected {
		t.Errorf("Marshaled JSON mismatch:\ngot:\n%s\nwant:\n%s", data, expected)
	}
}

func TestMarshalStructuredEmptyCollections(t *testing.T) {
	record := Record{
		Image:  ImageRef{Name: "photo.png", Width: 10, Height: 10},
		Format: FormatPascalVOC,
	}

	data, err := MarshalStructured(record)
	if err != nil {
		t.Fatalf("Failed to marshal record: %v", err)
	}

	text := string(data)
	if strings.Contains(text, "null") {
		t.Errorf("Empty collections must serialize as [], got:\n%s", text)
	}
	if !strings.Contains(text, `"custom_labels": []`) {
		t.Errorf("Expected empty custom_labels array, got:\n%s", text)
	}
	if !strings.Contains(text, `"annotations": []`) {
		t.Errorf("Expected empty annotations array, got:\n%s", text)
	}
}

func TestStructuredRoundTrip(t *testing.T) {
	original := Record{
		Image:  ImageRef{Name: "photo.png", Width: 640, Height: 480},
		Format: FormatPascalVOC,
		Labels: LabelSet{"cat", "dog", "fish"},
		Annotations: []Annotation{
			{Label: "dog", Box: BoundingBox{X: 1.5, Y: 2, Width: 30, Height: 40.25}},
			{Label: "cat", Box: BoundingBox{X: 0, Y: 0, Width: 10, Height: 10}},
		},
	}

	data, err := MarshalStructured(original)
	if err != nil {
		t.Fatalf("Failed to marshal record: %v", err)
	}

	doc, err := UnmarshalStructured(data)
	if err != nil {
		t.Fatalf("Failed to unmarshal record: %v", err)
	}

	restored, err := FromStructured(doc, original.Image.Width, original.Image.Height)
	if err != nil {
		t.Fatalf("Failed to rebuild record: %v", err)
	}

	if !reflect.DeepEqual(restored, original) {
		t.Errorf("Round trip mismatch:\ngot:  %+v\nwant: %+v", restored, original)
	}
}

func TestFromStructuredUnknownFormat(t *testing.T) {
	doc := StructuredRecord{
		ImageName:        "photo.png",
		AnnotationFormat: "KITTI",
	}

	_, err := FromStructured(doc, 100, 100)
	if err == nil {
		t.Fatal("Expected error for unknown format")
	}
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Error = %v, want ErrUnknownFormat", err)
	}
}

func TestUnmarshalStructuredInvalidJSON(t *testing.T) {
	if _, err := UnmarshalStructured([]byte("{not json")); err == nil {
		t.Fatal("Expected error for malformed JSON")
	}
}
