package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Форматы, которые пайплайн принимает на вход.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// CollectImages возвращает список изображений для батча: сам файл либо
// поддерживаемые файлы каталога в лексикографическом порядке.
func CollectImages(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "stat input path")
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "read input directory")
	}

	images := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			images = append(images, filepath.Join(path, e.Name()))
		}
	}
	return images, nil
}

// imageStem возвращает имя файла без расширения.
func imageStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// annotatedName строит имя размеченной копии. Форматы без энкодера
// (webp читаем, но не пишем) уходят в jpg.
func annotatedName(path string) string {
	base := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff", ".gif":
		return "annotated_" + base
	default:
		return "annotated_" + imageStem(path) + ".jpg"
	}
}
