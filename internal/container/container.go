package container

import (
	"github.com/edaniels/golog"

	app "receipt-pipeline/internal/application"
	"receipt-pipeline/internal/domain/port"
	"receipt-pipeline/internal/infrastructure/render"
)

type Container struct {
	BatchService *app.BatchService
	Reports      port.ReportRepository
}

func New(detector port.ReceiptDetector, reports port.ReportRepository, logger golog.Logger, opts app.BatchOptions) *Container {
	cropper := render.NewCropper()
	annotator := render.NewAnnotator()
	batchService := app.NewBatchService(detector, cropper, annotator, reports, logger, opts)

	return &Container{
		BatchService: batchService,
		Reports:      reports,
	}
}
