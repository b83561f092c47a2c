package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assets", "nested", "style.css")

	require.NoError(t, WriteFile(path, []byte("body{}")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, ReadableByAll, info.Mode().Perm())
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(src, []byte("png-bytes"), 0o600))

	t.Run("copies into new directory", func(t *testing.T) {
		dst := filepath.Join(dir, "out", "assets", "logo.png")
		require.NoError(t, CopyFile(src, dst))

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("same path is a no-op", func(t *testing.T) {
		require.NoError(t, CopyFile(src, src))
		data, err := os.ReadFile(src)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("missing source fails", func(t *testing.T) {
		err := CopyFile(filepath.Join(dir, "missing.png"), filepath.Join(dir, "x.png"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
