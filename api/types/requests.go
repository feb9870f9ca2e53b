package types

// SaveLabelsRequest replaces the full label list. An empty list clears
// the stored labels, so the field is deliberately not required.
type SaveLabelsRequest struct {
	Labels []string `json:"labels" example:"cat,dog"`
}

// AddLabelRequest appends a single label to the list
type AddLabelRequest struct {
	Label string `json:"label" binding:"required" example:"cat"`
}

// AnnotationInput is one bounding box in a save request. Missing
// coordinate fields default to zero.
type AnnotationInput struct {
	Label  string  `json:"label" example:"cat"`
	X      float64 `json:"x" example:"10"`
	Y      float64 `json:"y" example:"20"`
	Width  float64 `json:"width" example:"100"`
	Height float64 `json:"height" example:"50"`
}

// SaveAnnotationsRequest saves the annotation set for an image
type SaveAnnotationsRequest struct {
	AnnotationFormat string            `json:"annotation_format" binding:"required" example:"YOLO"`
	CustomLabels     []string          `json:"custom_labels" example:"cat,dog"`
	Annotations      []AnnotationInput `json:"annotations"`
}
