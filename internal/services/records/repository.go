package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/annolab/annotator-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// Upsert inserts or replaces the catalog row for a record's image
func (r *RepositoryImpl) Upsert(ctx context.Context, record *models.AnnotationRecord) error {
	var existing models.AnnotationRecord
	err := r.db.WithContext(ctx).Where("image_name = ?", record.ImageName).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("looking up annotation record: %w", err)
		}
		if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
			return fmt.Errorf("creating annotation record: %w", err)
		}
		return nil
	}

	// Keep identity, replace contents
	record.ID = existing.ID
	record.UUID = existing.UUID
	record.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("updating annotation record: %w", err)
	}
	return nil
}

// GetByImageName retrieves the catalog row for an image
func (r *RepositoryImpl) GetByImageName(ctx context.Context, imageName string) (*models.AnnotationRecord, error) {
	var record models.AnnotationRecord
	if err := r.db.WithContext(ctx).Where("image_name = ?", imageName).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("getting annotation record: %w", err)
	}
	return &record, nil
}

// List retrieves all catalog rows ordered by image name
func (r *RepositoryImpl) List(ctx context.Context) ([]models.AnnotationRecord, error) {
	var records []models.AnnotationRecord
	if err := r.db.WithContext(ctx).Order("image_name ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("listing annotation records: %w", err)
	}
	return records, nil
}

// DeleteByImageName removes the catalog row for an image. The delete is
// unscoped: a soft-deleted row would keep holding the image_name unique
// index and block the next save of the same image.
func (r *RepositoryImpl) DeleteByImageName(ctx context.Context, imageName string) error {
	result := r.db.WithContext(ctx).Unscoped().Where("image_name = ?", imageName).Delete(&models.AnnotationRecord{})
	if result.Error != nil {
		return fmt.Errorf("deleting annotation record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
