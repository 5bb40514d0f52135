package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentshare/internal/errors"
)

// pngBytes is a minimal payload carrying the PNG signature.
var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

// gifBytes carries the GIF89a signature.
var gifBytes = append([]byte("GIF89a"), make([]byte, 64)...)

func uploadHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("media", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(buf.Len()) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["media"]
	require.Len(t, files, 1)
	return files[0]
}

func TestLocalStorage_Store(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	t.Run("relocates an allowed upload under a fresh name", func(t *testing.T) {
		path, err := store.Store(context.Background(), uploadHeader(t, "photo.png", pngBytes))
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(path, dir))
		assert.True(t, strings.HasSuffix(path, ".png"))
		// The generated name does not leak the original filename.
		assert.NotContains(t, path, "photo")

		written, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, pngBytes, written)
	})

	t.Run("extension follows the sniffed type, not the filename", func(t *testing.T) {
		path, err := store.Store(context.Background(), uploadHeader(t, "disguised.png", gifBytes))
		assert.NoError(t, err)
		assert.True(t, strings.HasSuffix(path, ".gif"))
	})

	t.Run("two uploads of the same file get distinct names", func(t *testing.T) {
		first, err := store.Store(context.Background(), uploadHeader(t, "a.png", pngBytes))
		assert.NoError(t, err)
		second, err := store.Store(context.Background(), uploadHeader(t, "a.png", pngBytes))
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("rejects disallowed types and writes nothing", func(t *testing.T) {
		_, err := store.Store(context.Background(), uploadHeader(t, "notes.txt", []byte("plain text, not media")))
		assert.ErrorIs(t, err, errors.ErrUnsupportedMediaType)

		entries, err := os.ReadDir(dir)
		assert.NoError(t, err)
		for _, entry := range entries {
			assert.NotEqual(t, ".txt", filepath.Ext(entry.Name()))
		}
	})
}

func TestNewLocalStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStorage(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
