package labels

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/annolab/annotator-api/internal/services/storage"
	"github.com/annolab/annotator-api/pkg/annotation"
)

// ErrEmptyLabel is returned when a label is blank after trimming
var ErrEmptyLabel = errors.New("label must not be empty")

// labelsFilename is the flat file holding the label set, one label per line.
// It lives next to the annotation documents so the directory stays a
// self-contained dataset.
const labelsFilename = "labels.txt"

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	store storage.ArtifactStore
}

// NewService creates a new label service backed by store
func NewService(store storage.ArtifactStore) Service {
	return &ServiceImpl{
		store: store,
	}
}

// GetLabels returns the saved label set. A missing labels file means no set
// was saved yet and yields an empty set, not an error.
func (s *ServiceImpl) GetLabels(ctx context.Context) (annotation.LabelSet, error) {
	if !s.store.Exists(labelsFilename) {
		return annotation.LabelSet{}, nil
	}

	data, err := s.store.ReadFile(ctx, labelsFilename)
	if err != nil {
		return nil, fmt.Errorf("reading labels file: %w", err)
	}

	return annotation.NormalizeLabels(strings.Split(string(data), "\n")), nil
}

// ReplaceLabels overwrites the saved label set. The file is rewritten in
// full, one label per line, each line newline-terminated; replacing with an
// empty set leaves an empty file.
func (s *ServiceImpl) ReplaceLabels(ctx context.Context, lines []string) (annotation.LabelSet, error) {
	normalized := annotation.NormalizeLabels(lines)

	var b strings.Builder
	for _, label := range normalized {
		b.WriteString(label + "\n")
	}

	if err := s.store.WriteFile(ctx, labelsFilename, []byte(b.String())); err != nil {
		return nil, fmt.Errorf("writing labels file: %w", err)
	}

	return normalized, nil
}

// AddLabel appends a single label to the saved set
func (s *ServiceImpl) AddLabel(ctx context.Context, label string) (annotation.LabelSet, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return nil, ErrEmptyLabel
	}

	current, err := s.GetLabels(ctx)
	if err != nil {
		return nil, err
	}

	return s.ReplaceLabels(ctx, append([]string(current), trimmed))
}
