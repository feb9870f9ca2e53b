package labels

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/annolab/annotator-api/internal/services/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalArtifactStore(dir)
	require.NoError(t, err)
	return NewService(store), dir
}

func TestGetLabels_NoFileSaved(t *testing.T) {
	service, _ := newTestService(t)

	labels, err := service.GetLabels(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, labels)
	assert.Empty(t, labels)
}

func TestReplaceLabels_WritesOnePerLine(t *testing.T) {
	service, dir := newTestService(t)
	ctx := context.Background()

	saved, err := service.ReplaceLabels(ctx, []string{" cat ", "", "dog", "fish"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "fish"}, []string(saved))

	data, err := os.ReadFile(filepath.Join(dir, "labels.txt"))
	require.NoError(t, err)
	assert.Equal(t, "cat\ndog\nfish\n", string(data))
}

func TestReplaceLabels_FullOverwrite(t *testing.T) {
	service, dir := newTestService(t)
	ctx := context.Background()

	_, err := service.ReplaceLabels(ctx, []string{"cat", "dog"})
	require.NoError(t, err)

	saved, err := service.ReplaceLabels(ctx, []string{"fish"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fish"}, []string(saved))

	data, err := os.ReadFile(filepath.Join(dir, "labels.txt"))
	require.NoError(t, err)
	assert.Equal(t, "fish\n", string(data))
}

func TestReplaceLabels_EmptySetLeavesEmptyFile(t *testing.T) {
	service, dir := newTestService(t)
	ctx := context.Background()

	_, err := service.ReplaceLabels(ctx, []string{"cat"})
	require.NoError(t, err)

	saved, err := service.ReplaceLabels(ctx, []string{"", "   "})
	require.NoError(t, err)
	assert.Empty(t, saved)

	data, err := os.ReadFile(filepath.Join(dir, "labels.txt"))
	require.NoError(t, err)
	assert.Equal(t, "", string(data))
}

func TestGetLabels_RoundTrip(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.ReplaceLabels(ctx, []string{"cat", "dog", "fish"})
	require.NoError(t, err)

	labels, err := service.GetLabels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "fish"}, []string(labels))
}

func TestGetLabels_SkipsBlankLines(t *testing.T) {
	service, dir := newTestService(t)

	// A hand-edited file may carry stray blank lines
	err := os.WriteFile(filepath.Join(dir, "labels.txt"), []byte("cat\n\n  \ndog\n"), 0644)
	require.NoError(t, err)

	labels, err := service.GetLabels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, []string(labels))
}

func TestAddLabel(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.ReplaceLabels(ctx, []string{"cat"})
	require.NoError(t, err)

	labels, err := service.AddLabel(ctx, " dog ")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, []string(labels))
}

func TestAddLabel_RejectsEmpty(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.AddLabel(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyLabel)
}
