package storage

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"receipt-pipeline/internal/domain/entity"
	"receipt-pipeline/internal/domain/port"
)

// MemoryReportRepository in-memory хранилище отчётов о батчах
type MemoryReportRepository struct {
	mu      sync.RWMutex
	reports map[string]*entity.BatchReport
}

// NewMemoryReportRepository создаёт новое in-memory хранилище
func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{
		reports: make(map[string]*entity.BatchReport),
	}
}

// Save сохраняет финализированный отчёт по его идентификатору запуска
func (r *MemoryReportRepository) Save(ctx context.Context, report *entity.BatchReport) error {
	if report == nil {
		return errors.New("report is nil")
	}

	r.mu.Lock()
	r.reports[report.RunID] = report
	r.mu.Unlock()

	return nil
}

// Get возвращает отчёт по идентификатору запуска
func (r *MemoryReportRepository) Get(ctx context.Context, runID string) (*entity.BatchReport, error) {
	r.mu.RLock()
	report, exists := r.reports[runID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Errorf("report %s is not found", runID)
	}
	return report, nil
}

// Проверка реализации интерфейса
var _ port.ReportRepository = (*MemoryReportRepository)(nil)
