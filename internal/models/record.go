package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnotationRecord is the catalog row for one saved annotation set. The flat
// files under the annotations directory remain the source of truth; the
// catalog exists so records can be listed and located without scanning the
// filesystem. One row per image, re-saving replaces the row's contents.
type AnnotationRecord struct {
	gorm.Model
	UUID        string `json:"uuid" gorm:"uniqueIndex"`
	ImageName   string `json:"image_name" gorm:"uniqueIndex;not null"`
	Format      string `json:"format" gorm:"not null"` // Pascal VOC | YOLO
	ImageWidth  int    `json:"image_width" gorm:"not null"`
	ImageHeight int    `json:"image_height" gorm:"not null"`
	LabelCount  int    `json:"label_count" gorm:"default:0"`
	BoxCount    int    `json:"box_count" gorm:"default:0"`

	// Artifact locations
	JSONPath  string `json:"json_path" gorm:""`  // Structured annotation document
	TextPath  string `json:"text_path" gorm:""`  // Format-specific text export
	ImagePath string `json:"image_path" gorm:""` // Normalized image copy
}

// BeforeCreate generates a UUID before creating a new record
func (r *AnnotationRecord) BeforeCreate(tx *gorm.DB) error {
	if r.UUID == "" {
		r.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the AnnotationRecord model
func (AnnotationRecord) TableName() string {
	return "annotation_records"
}
