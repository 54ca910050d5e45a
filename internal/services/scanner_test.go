package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lss/internal/domain"
)

func TestDirScannerTogglesHidden(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "visible"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "old~"), nil, 0o644))

	scanner := NewDirScanner(DefaultTraverseOptions(), true, nil)

	result, err := scanner.Scan(context.Background(), ScanRequest{RootPath: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"visible"}, itemNames(result.Items))
	assert.Equal(t, root, result.RootPath)

	result, err = scanner.Scan(context.Background(), ScanRequest{RootPath: root, ShowHidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{".hidden", "visible"}, itemNames(result.Items), "backups stay hidden")
}

func TestDirScannerIncomplete(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))

	opts := DefaultTraverseOptions()
	opts.Timeout = 0
	result, err := NewDirScanner(opts, false, nil).Scan(context.Background(), ScanRequest{RootPath: root})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Incomplete())

	opts.Timeout = time.Minute
	result, err = NewDirScanner(opts, false, nil).Scan(context.Background(), ScanRequest{RootPath: root})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Incomplete())
}

func TestDirScannerErrors(t *testing.T) {
	scanner := NewDirScanner(DefaultTraverseOptions(), false, nil)

	_, err := scanner.Scan(context.Background(), ScanRequest{RootPath: filepath.Join(t.TempDir(), "missing")})
	var scanErr *Error
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, OpReadDir, scanErr.Op)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = scanner.Scan(ctx, ScanRequest{RootPath: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}

func itemNames(items []*domain.Item) []string {
	names := make([]string, len(items))
	for index, item := range items {
		names[index] = item.Name()
	}
	return names
}
