package records

import (
	"context"
	"errors"

	"github.com/annolab/annotator-api/internal/models"
	"github.com/annolab/annotator-api/pkg/annotation"
)

// Common errors
var (
	ErrRecordNotFound = errors.New("annotation record not found")
)

// BoxInput is one drawn box in a save request. An empty label means no
// explicit choice was made and the first custom label (or the built-in
// default) is assigned.
type BoxInput struct {
	Label  string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// SaveRequest carries everything needed to persist one annotation pass
type SaveRequest struct {
	ImageName string
	Format    string
	Labels    []string
	Boxes     []BoxInput
}

// Service defines the interface for the annotation persistence pipeline
type Service interface {
	// Save validates, encodes and persists an annotation pass: the JSON
	// document, the normalized image copy and the format-specific text
	// export, in that order, plus the catalog row when a catalog is
	// attached. Re-saving an image replaces all of its artifacts.
	Save(ctx context.Context, req SaveRequest) (*models.AnnotationRecord, error)

	// GetDocument returns the persisted JSON document for an image
	GetDocument(ctx context.Context, imageName string) (*annotation.StructuredRecord, error)

	// GetRecord rebuilds the full record for an image, resolving the pixel
	// dimensions from the stored upload or the catalog
	GetRecord(ctx context.Context, imageName string) (*annotation.Record, error)

	// ExportText returns the format-specific text export for an image
	ExportText(ctx context.Context, imageName string) (string, error)

	// List returns the catalog rows for all saved records
	List(ctx context.Context) ([]models.AnnotationRecord, error)

	// Delete removes all artifacts and the catalog row for an image
	Delete(ctx context.Context, imageName string) error
}

// Repository defines the interface for catalog access
type Repository interface {
	// Upsert inserts the row for a new image or replaces the row contents
	// for a re-saved one
	Upsert(ctx context.Context, record *models.AnnotationRecord) error

	// GetByImageName retrieves the row for an image
	GetByImageName(ctx context.Context, imageName string) (*models.AnnotationRecord, error)

	// List retrieves all rows ordered by image name
	List(ctx context.Context) ([]models.AnnotationRecord, error)

	// DeleteByImageName removes the row for an image
	DeleteByImageName(ctx context.Context, imageName string) error
}
