package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"receipt-pipeline/internal/domain/entity"
	"receipt-pipeline/internal/domain/port"
)

// Cropper вырезает найденные чеки из исходного изображения и сохраняет их в JPEG.
type Cropper struct{}

// NewCropper создаёт движок вырезания чеков.
func NewCropper() *Cropper {
	return &Cropper{}
}

// Crop обрезает каждую пригодную рамку и пишет файлы в outputDir.
// Рамки, вырожденные после ограничения границами изображения, пропускаются
// и считаются отдельно. Имена файлов детерминированы: receipt_{n}_score_{s}.jpg,
// где n — позиция среди выживших рамок, начиная с 1.
func (c *Cropper) Crop(img image.Image, result *entity.DetectionResult, outputDir string) ([]string, int, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, 0, &entity.IOWriteError{Path: outputDir, Err: errors.Wrap(err, "create output directory")}
	}

	bounds := img.Bounds()
	paths := make([]string, 0, result.Count())
	skipped := 0

	for i := 0; i < result.Count(); i++ {
		rect := result.Boxes[i].Clamp(bounds.Dx(), bounds.Dy())
		if rect.Empty() {
			skipped++
			continue
		}

		cropped := imaging.Crop(img, rect)
		name := fmt.Sprintf("receipt_%d_score_%.2f.jpg", len(paths)+1, result.Scores[i])
		path := filepath.Join(outputDir, name)
		if err := imaging.Save(cropped, path); err != nil {
			return paths, skipped, &entity.IOWriteError{Path: path, Err: err}
		}
		paths = append(paths, path)
	}

	return paths, skipped, nil
}

// Проверка реализации интерфейса
var _ port.ReceiptCropper = (*Cropper)(nil)
