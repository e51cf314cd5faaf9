package port

import (
	"context"

	"receipt-pipeline/internal/domain/entity"
)

// ReportRepository интерфейс хранилища отчётов о батчах
type ReportRepository interface {
	// Save сохраняет финализированный отчёт
	Save(ctx context.Context, report *entity.BatchReport) error

	// Get возвращает отчёт по идентификатору запуска
	Get(ctx context.Context, runID string) (*entity.BatchReport, error)
}
