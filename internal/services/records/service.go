package records

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/annolab/annotator-api/internal/models"
	"github.com/annolab/annotator-api/internal/services/images"
	"github.com/annolab/annotator-api/internal/services/storage"
	"github.com/annolab/annotator-api/pkg/annotation"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	artifacts storage.ArtifactStore
	images    images.Service
	repo      Repository
}

// NewService creates a new record service. The artifact store receives the
// JSON documents and text exports; repo may be nil, in which case no catalog
// rows are written and listings are rebuilt from the artifact files.
func NewService(artifacts storage.ArtifactStore, imageService images.Service, repo Repository) Service {
	return &ServiceImpl{
		artifacts: artifacts,
		images:    imageService,
		repo:      repo,
	}
}

// Save persists one annotation pass. The write order is fixed: JSON document
// first, then the normalized image copy, then the text export. A failure
// stops the sequence, so a text export never exists without its JSON
// document.
func (s *ServiceImpl) Save(ctx context.Context, req SaveRequest) (*models.AnnotationRecord, error) {
	img, err := s.images.Get(ctx, req.ImageName)
	if err != nil {
		return nil, err
	}

	format, err := annotation.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}

	session := annotation.NewSession()
	session.SetLabels(req.Labels)

	boxes := make([]annotation.Annotation, len(req.Boxes))
	for i, box := range req.Boxes {
		boxes[i] = session.BuildAnnotation(annotation.BoundingBox{
			X:      box.X,
			Y:      box.Y,
			Width:  box.Width,
			Height: box.Height,
		}, box.Label)
	}

	record, err := session.AssembleRecord(annotation.ImageRef{
		Name:   img.Name,
		Width:  img.Width,
		Height: img.Height,
	}, format, boxes)
	if err != nil {
		return nil, err
	}

	base := baseName(img.Name)

	data, err := annotation.MarshalStructured(record)
	if err != nil {
		return nil, err
	}
	if err := s.artifacts.WriteFile(ctx, base+".json", data); err != nil {
		return nil, fmt.Errorf("writing annotation document: %w", err)
	}

	imagePath, err := s.images.SaveAnnotatedCopy(ctx, img.Name)
	if err != nil {
		return nil, err
	}

	text, err := annotation.ToExportText(record)
	if err != nil {
		return nil, err
	}
	if err := s.artifacts.WriteFile(ctx, base+".txt", []byte(text)); err != nil {
		return nil, fmt.Errorf("writing annotation export: %w", err)
	}

	catalog := &models.AnnotationRecord{
		ImageName:   img.Name,
		Format:      string(record.Format),
		ImageWidth:  img.Width,
		ImageHeight: img.Height,
		LabelCount:  len(record.Labels),
		BoxCount:    len(record.Annotations),
		JSONPath:    s.artifacts.Path(base + ".json"),
		TextPath:    s.artifacts.Path(base + ".txt"),
		ImagePath:   imagePath,
	}

	if s.repo != nil {
		if err := s.repo.Upsert(ctx, catalog); err != nil {
			return nil, err
		}
	}

	log.Printf("[INFO] Saved %d annotation(s) for %s in %s format", len(record.Annotations), img.Name, record.Format)
	return catalog, nil
}

// GetDocument returns the persisted JSON document for an image
func (s *ServiceImpl) GetDocument(ctx context.Context, imageName string) (*annotation.StructuredRecord, error) {
	name := storage.SanitizeName(imageName)
	jsonFile := baseName(name) + ".json"

	if !s.artifacts.Exists(jsonFile) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, name)
	}

	data, err := s.artifacts.ReadFile(ctx, jsonFile)
	if err != nil {
		return nil, fmt.Errorf("reading annotation document: %w", err)
	}

	doc, err := annotation.UnmarshalStructured(data)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetRecord rebuilds the full record for an image. Pixel dimensions are not
// part of the JSON document, so they are resolved from the stored upload, or
// from the catalog when the upload is gone.
func (s *ServiceImpl) GetRecord(ctx context.Context, imageName string) (*annotation.Record, error) {
	doc, err := s.GetDocument(ctx, imageName)
	if err != nil {
		return nil, err
	}

	width, height, err := s.resolveDimensions(ctx, doc.ImageName)
	if err != nil {
		return nil, err
	}

	record, err := annotation.FromStructured(*doc, width, height)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ExportText returns the text export for an image. The file written at save
// time is preferred; if it went missing it is rebuilt from the JSON document.
func (s *ServiceImpl) ExportText(ctx context.Context, imageName string) (string, error) {
	name := storage.SanitizeName(imageName)
	textFile := baseName(name) + ".txt"

	if s.artifacts.Exists(textFile) {
		data, err := s.artifacts.ReadFile(ctx, textFile)
		if err != nil {
			return "", fmt.Errorf("reading annotation export: %w", err)
		}
		return string(data), nil
	}

	record, err := s.GetRecord(ctx, name)
	if err != nil {
		return "", err
	}
	return annotation.ToExportText(*record)
}

// List returns the catalog rows for all saved records. Without a catalog the
// listing is rebuilt by scanning the artifact files.
func (s *ServiceImpl) List(ctx context.Context) ([]models.AnnotationRecord, error) {
	if s.repo != nil {
		return s.repo.List(ctx)
	}

	names, err := s.artifacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing annotation documents: %w", err)
	}

	records := make([]models.AnnotationRecord, 0, len(names))
	for _, name := range names {
		if filepath.Ext(name) != ".json" {
			continue
		}
		data, err := s.artifacts.ReadFile(ctx, name)
		if err != nil {
			log.Printf("[WARN] Skipping unreadable annotation document %s: %v", name, err)
			continue
		}
		doc, err := annotation.UnmarshalStructured(data)
		if err != nil {
			log.Printf("[WARN] Skipping malformed annotation document %s: %v", name, err)
			continue
		}

		row := models.AnnotationRecord{
			ImageName:  doc.ImageName,
			Format:     doc.AnnotationFormat,
			LabelCount: len(doc.CustomLabels),
			BoxCount:   len(doc.Annotations),
			JSONPath:   s.artifacts.Path(name),
			TextPath:   s.artifacts.Path(baseName(name) + ".txt"),
		}
		if width, height, err := s.resolveDimensions(ctx, doc.ImageName); err == nil {
			row.ImageWidth = width
			row.ImageHeight = height
		}
		records = append(records, row)
	}
	return records, nil
}

// Delete removes all artifacts and the catalog row for an image
func (s *ServiceImpl) Delete(ctx context.Context, imageName string) error {
	name := storage.SanitizeName(imageName)
	base := baseName(name)

	if !s.artifacts.Exists(base + ".json") {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, name)
	}

	if err := s.artifacts.Delete(ctx, base+".json"); err != nil {
		return fmt.Errorf("deleting annotation document: %w", err)
	}
	if err := s.artifacts.Delete(ctx, base+".txt"); err != nil {
		return fmt.Errorf("deleting annotation export: %w", err)
	}
	if err := s.images.DeleteAnnotatedCopy(ctx, name); err != nil {
		return err
	}

	if s.repo != nil {
		if err := s.repo.DeleteByImageName(ctx, name); err != nil && !errors.Is(err, ErrRecordNotFound) {
			return err
		}
	}

	log.Printf("[INFO] Deleted annotation artifacts for %s", name)
	return nil
}

// resolveDimensions finds the pixel dimensions for an image, preferring the
// stored upload over the catalog row
func (s *ServiceImpl) resolveDimensions(ctx context.Context, imageName string) (int, int, error) {
	img, err := s.images.Get(ctx, imageName)
	if err == nil {
		return img.Width, img.Height, nil
	}
	if !errors.Is(err, images.ErrImageNotFound) {
		return 0, 0, err
	}

	if s.repo != nil {
		row, repoErr := s.repo.GetByImageName(ctx, imageName)
		if repoErr == nil {
			return row.ImageWidth, row.ImageHeight, nil
		}
	}
	return 0, 0, fmt.Errorf("image dimensions unavailable for %s: %w", imageName, err)
}

// baseName strips the extension from an image filename; artifacts share the
// remaining stem
func baseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
