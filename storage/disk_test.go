// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiskStore(t *testing.T) {
	t.Run("should create the reports directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "reports")

		store, err := NewDiskStore(dir)

		require.NoError(t, err)
		info, err := os.Stat(store.Dir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestFileName(t *testing.T) {
	store := &DiskStore{dir: t.TempDir()}
	at := time.UnixMilli(1748779200000)

	assert.Equal(t, "report-exec-1-1748779200000.pdf", store.FileName("exec-1", at))

	t.Run("should sanitize hostile execution ids", func(t *testing.T) {
		name := store.FileName("../../etc/passwd", at)
		assert.NotContains(t, name, "/")
		assert.NotContains(t, name, "..")
		assert.Equal(t, "report-exec_1-A-1748779200000.pdf", store.FileName("exec_1-A", at))
	})
}

func TestWriteAndDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Write("report-a-1.pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(content))

	t.Run("delete removes the file and reports it existed", func(t *testing.T) {
		existed, err := store.Delete(path)
		require.NoError(t, err)
		assert.True(t, existed)

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("deleting a missing file is not an error", func(t *testing.T) {
		existed, err := store.Delete(path)
		require.NoError(t, err)
		assert.False(t, existed)
	})

	t.Run("deleting an empty path is a no-op", func(t *testing.T) {
		existed, err := store.Delete("")
		require.NoError(t, err)
		assert.False(t, existed)
	})
}

func TestPath(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	t.Run("resolves bare file names inside the store", func(t *testing.T) {
		path, err := store.Path("report-x-1.pdf")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(store.Dir(), "report-x-1.pdf"), path)
	})

	t.Run("rejects traversal attempts", func(t *testing.T) {
		for _, name := range []string{"", "../secret.pdf", "a/b.pdf", "..", "foo..bar/../x"} {
			_, err := store.Path(name)
			assert.Error(t, err, "name %q should be rejected", name)
		}
	})
}
