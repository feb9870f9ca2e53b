package annotation

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrUnknownFormat     = errors.New("unknown annotation format")
)

// InvalidDimensionsError reports an image whose width or height is not
// positive. Exporting such a record would divide by zero during YOLO
// normalization, so assembly fails instead.
type InvalidDimensionsError struct {
	Width  int
	Height int
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("invalid image dimensions %dx%d: width and height must be positive", e.Width, e.Height)
}

func (e *InvalidDimensionsError) Is(target error) bool {
	return target == ErrInvalidDimensions
}

// UnknownFormatError reports a format string that is neither "Pascal VOC"
// nor "YOLO".
type UnknownFormatError struct {
	Value string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown annotation format %q", e.Value)
}

func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}
