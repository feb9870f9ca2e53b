package images

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for image.DecodeConfig
	_ "image/jpeg"
	_ "image/png"

	"github.com/annolab/annotator-api/internal/services/storage"
	"github.com/disintegration/imaging"
)

// allowedExtensions are the accepted upload types
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	uploads   storage.ArtifactStore
	annotated storage.ArtifactStore
	dims      *dimensionCache
}

// NewService creates a new image service. Uploads land in the uploads store;
// SaveAnnotatedCopy writes into the annotated store.
func NewService(uploads, annotated storage.ArtifactStore) Service {
	return &ServiceImpl{
		uploads:   uploads,
		annotated: annotated,
		dims:      newDimensionCache(),
	}
}

// SaveUpload stores an uploaded image after validating its type and content
func (s *ServiceImpl) SaveUpload(ctx context.Context, filename string, data io.Reader) (*StoredImage, error) {
	name := storage.SanitizeName(filename)
	if !allowedExtensions[strings.ToLower(filepath.Ext(name))] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImageType, name)
	}

	size, err := s.uploads.SaveStream(ctx, name, data)
	if err != nil {
		return nil, fmt.Errorf("storing upload: %w", err)
	}

	// Decode the stored file to pick up the pixel dimensions. Content that
	// does not decode is removed again so a failed upload leaves no trace.
	width, height, _, err := s.decodeDimensions(ctx, name)
	if err != nil {
		_ = s.uploads.Delete(ctx, name)
		return nil, fmt.Errorf("%w: %s", ErrInvalidImageData, name)
	}

	log.Printf("[INFO] Stored upload %s (%dx%d, %d bytes)", name, width, height, size)
	return &StoredImage{
		Name:   name,
		Width:  width,
		Height: height,
		Size:   size,
		Path:   s.uploads.Path(name),
	}, nil
}

// Get returns the metadata for a stored image
func (s *ServiceImpl) Get(ctx context.Context, name string) (*StoredImage, error) {
	name = storage.SanitizeName(name)
	if !s.uploads.Exists(name) {
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, name)
	}

	width, height, size, err := s.decodeDimensions(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", name, err)
	}

	return &StoredImage{
		Name:   name,
		Width:  width,
		Height: height,
		Size:   size,
		Path:   s.uploads.Path(name),
	}, nil
}

// List returns the metadata for all stored images
func (s *ServiceImpl) List(ctx context.Context) ([]StoredImage, error) {
	names, err := s.uploads.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing uploads: %w", err)
	}

	images := make([]StoredImage, 0, len(names))
	for _, name := range names {
		if !allowedExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		img, err := s.Get(ctx, name)
		if err != nil {
			// Skip files that stopped being decodable instead of failing
			// the whole listing
			log.Printf("[WARN] Skipping undecodable image %s: %v", name, err)
			continue
		}
		images = append(images, *img)
	}
	return images, nil
}

// Open opens a stored image for streaming reads
func (s *ServiceImpl) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	name = storage.SanitizeName(name)
	reader, err := s.uploads.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, name)
	}
	return reader, nil
}

// SaveAnnotatedCopy writes a color-normalized copy of the stored image under
// its original filename. Cloning through imaging always yields an NRGBA
// image, so palette and grayscale sources come out in a uniform color space.
func (s *ServiceImpl) SaveAnnotatedCopy(ctx context.Context, name string) (string, error) {
	name = storage.SanitizeName(name)
	if !s.uploads.Exists(name) {
		return "", fmt.Errorf("%w: %s", ErrImageNotFound, name)
	}

	img, err := imaging.Open(s.uploads.Path(name))
	if err != nil {
		return "", fmt.Errorf("decoding image %s: %w", name, err)
	}

	normalized := imaging.Clone(img)
	destPath := s.annotated.Path(name)
	if err := imaging.Save(normalized, destPath); err != nil {
		return "", fmt.Errorf("saving annotated copy: %w", err)
	}

	return destPath, nil
}

// DeleteAnnotatedCopy removes the annotated copy of an image, if any
func (s *ServiceImpl) DeleteAnnotatedCopy(ctx context.Context, name string) error {
	name = storage.SanitizeName(name)
	if err := s.annotated.Delete(ctx, name); err != nil {
		return fmt.Errorf("deleting annotated copy %s: %w", name, err)
	}
	return nil
}

// Delete removes a stored image
func (s *ServiceImpl) Delete(ctx context.Context, name string) error {
	name = storage.SanitizeName(name)
	if err := s.uploads.Delete(ctx, name); err != nil {
		return fmt.Errorf("deleting image %s: %w", name, err)
	}
	s.dims.forget(name)
	return nil
}

// decodeDimensions reads just enough of the stored file to get its pixel
// dimensions, consulting the dimension cache first. The byte size comes
// along since every caller wants it and the stat already happened.
func (s *ServiceImpl) decodeDimensions(ctx context.Context, name string) (int, int, int64, error) {
	info, err := os.Stat(s.uploads.Path(name))
	if err != nil {
		return 0, 0, 0, err
	}

	if width, height, ok := s.dims.get(name, info); ok {
		return width, height, info.Size(), nil
	}

	reader, err := s.uploads.Open(ctx, name)
	if err != nil {
		return 0, 0, 0, err
	}
	defer reader.Close()

	cfg, _, err := image.DecodeConfig(reader)
	if err != nil {
		return 0, 0, 0, err
	}

	s.dims.set(name, info, cfg.Width, cfg.Height)
	return cfg.Width, cfg.Height, info.Size(), nil
}
