package types

import (
	"github.com/annolab/annotator-api/internal/models"
	"github.com/annolab/annotator-api/internal/services/images"
	"github.com/annolab/annotator-api/pkg/annotation"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// LabelsResponse for the label list endpoints
type LabelsResponse struct {
	BaseResponse
	Labels []string `json:"labels"`
	Count  int      `json:"count"` // Number of labels in this response
}

// ImagesResponse for uploaded image lists
type ImagesResponse struct {
	BaseResponse
	Images []images.StoredImage `json:"images"`
	Count  int                  `json:"count"` // Number of images in this response
}

// SingleImageResponse for getting a single image
type SingleImageResponse struct {
	BaseResponse
	Image *images.StoredImage `json:"image"`
}

// AnnotationDocumentResponse for the saved annotation document of an image
type AnnotationDocumentResponse struct {
	BaseResponse
	Document *annotation.StructuredRecord `json:"document"`
}

// SaveAnnotationsResponse for a successful annotation save
type SaveAnnotationsResponse struct {
	BaseResponse
	Record *models.AnnotationRecord `json:"record"`
}

// RecordsResponse for the annotation catalog listing
type RecordsResponse struct {
	BaseResponse
	Records []models.AnnotationRecord `json:"records"`
	Count   int                       `json:"count"` // Number of records in this response
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
