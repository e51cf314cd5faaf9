package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectImages_Directory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.png", "notes.txt", "c.webp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	images, err := CollectImages(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "c.webp"),
	}, images)
}

func TestCollectImages_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	images, err := CollectImages(path)
	require.NoError(t, err)
	require.Equal(t, []string{path}, images)
}

func TestCollectImages_MissingPath(t *testing.T) {
	_, err := CollectImages(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestImageStem(t *testing.T) {
	require.Equal(t, "photo", imageStem("data/raw/photo.jpg"))
	require.Equal(t, "receipt.scan", imageStem("receipt.scan.png"))
}

func TestAnnotatedName(t *testing.T) {
	require.Equal(t, "annotated_photo.jpg", annotatedName("data/raw/photo.jpg"))
	require.Equal(t, "annotated_photo.PNG", annotatedName("photo.PNG"))
	require.Equal(t, "annotated_scan.jpg", annotatedName("in/scan.webp"))
}
