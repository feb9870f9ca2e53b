package images

import (
	"context"
	"errors"
	"io"
)

// Common errors
var (
	ErrImageNotFound        = errors.New("image not found")
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrInvalidImageData     = errors.New("invalid image data")
)

// StoredImage describes an uploaded image and its decoded dimensions
type StoredImage struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
	Path   string `json:"-"`
}

// Service defines the interface for managing uploaded images
type Service interface {
	// SaveUpload stores an uploaded image and returns its decoded metadata.
	// Uploads with an unsupported extension or undecodable content are
	// rejected and leave no file behind.
	SaveUpload(ctx context.Context, filename string, data io.Reader) (*StoredImage, error)

	// Get returns the metadata for a stored image
	Get(ctx context.Context, name string) (*StoredImage, error)

	// List returns the metadata for all stored images
	List(ctx context.Context) ([]StoredImage, error)

	// Open opens a stored image for streaming reads
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// SaveAnnotatedCopy writes a color-normalized copy of a stored image
	// into the annotated images directory and returns the copy's path
	SaveAnnotatedCopy(ctx context.Context, name string) (string, error)

	// DeleteAnnotatedCopy removes the annotated copy of an image, if any
	DeleteAnnotatedCopy(ctx context.Context, name string) error

	// Delete removes a stored image
	Delete(ctx context.Context, name string) error
}
