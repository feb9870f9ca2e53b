package labels

import (
	"context"

	"github.com/annolab/annotator-api/pkg/annotation"
)

// Service defines the interface for managing the shared label set
type Service interface {
	// GetLabels returns the saved label set, empty when none was saved yet
	GetLabels(ctx context.Context) (annotation.LabelSet, error)

	// ReplaceLabels overwrites the saved label set with the trimmed,
	// non-empty entries of lines and returns the result
	ReplaceLabels(ctx context.Context, lines []string) (annotation.LabelSet, error)

	// AddLabel appends a single label to the saved set
	AddLabel(ctx context.Context, label string) (annotation.LabelSet, error)
}
