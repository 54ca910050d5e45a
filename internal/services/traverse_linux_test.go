//go:build amd64 || arm64

package services

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lss/internal/domain"
)

// otherDeviceInfo reports the wrapped entry as living on another device.
type otherDeviceInfo struct {
	fs.FileInfo
	stat *syscall.Stat_t
}

func (info otherDeviceInfo) Sys() any { return info.stat }

func TestTraverseMountBoundary(t *testing.T) {
	root := t.TempDir()
	writeSized(t, filepath.Join(root, "mnt", "file"), 4)
	rootInfo, err := os.Lstat(root)
	require.NoError(t, err)

	tests := []struct {
		name     string
		cross    bool
		complete bool
		count    int
	}{
		{"stops", false, false, 0},
		{"crosses", true, true, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			child, err := domain.NewFile(filepath.Join(root, "mnt"))
			require.NoError(t, err)
			updir := domain.NewFileFromInfo(root, otherDeviceInfo{
				FileInfo: rootInfo,
				stat:     &syscall.Stat_t{Dev: child.Dev() + 1},
			})

			opts := ampleOptions()
			opts.CrossMount = tc.cross
			var items []*domain.Item
			NewTraverser(opts).traverse(child, updir, 1, nil, func(item *domain.Item) {
				items = append(items, item)
			})

			require.Len(t, items, 1)
			assert.True(t, child.IsMount())
			assert.Equal(t, tc.complete, items[0].Complete())
			assert.Equal(t, tc.count, items[0].Count())
		})
	}
}
