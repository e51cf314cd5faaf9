package port

import (
	"image"

	"receipt-pipeline/internal/domain/entity"
)

// ReceiptCropper интерфейс движка вырезания чеков
type ReceiptCropper interface {
	// Crop пишет по файлу на каждую пригодную рамку в outputDir и возвращает
	// пути в порядке рамок вместе с числом пропущенных вырожденных рамок
	Crop(img image.Image, result *entity.DetectionResult, outputDir string) (paths []string, skipped int, err error)
}

// ReceiptAnnotator интерфейс рендера размеченной копии изображения
type ReceiptAnnotator interface {
	// Annotate рисует рамки и уверенность поверх копии изображения и сохраняет её
	Annotate(img image.Image, result *entity.DetectionResult, outputPath string) error
}
