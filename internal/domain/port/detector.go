package port

import (
	"context"

	"receipt-pipeline/internal/domain/entity"
)

// ReceiptDetector интерфейс клиента сервиса детекции чеков
type ReceiptDetector interface {
	// Detect отправляет изображение на инференс и возвращает выровненный результат
	Detect(ctx context.Context, imageData []byte) (*entity.DetectionResult, error)
}
