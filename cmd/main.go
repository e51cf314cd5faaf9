package main

import (
	"context"
	"flag"
	"path/filepath"
	"strings"

	"github.com/edaniels/golog"

	"receipt-pipeline/config"
	app "receipt-pipeline/internal/application"
	"receipt-pipeline/internal/container"
	"receipt-pipeline/internal/domain/entity"
	"receipt-pipeline/internal/infrastructure/storage"
	"receipt-pipeline/internal/infrastructure/vision"
)

func main() {
	inputPath := flag.String("input", "data/raw", "файл или каталог с изображениями")
	outputDir := flag.String("output", "", "каталог артефактов (по умолчанию из конфигурации)")
	flag.Parse()

	logger := golog.NewDevelopmentLogger("receipt-pipeline")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	images, err := app.CollectImages(*inputPath)
	if err != nil {
		logger.Fatalf("Failed to collect images: %v", err)
	}
	if len(images) == 0 {
		logger.Fatalf("No supported images found in %s", *inputPath)
	}

	// Собираем клиента детекции и сервисы приложения
	detector := vision.NewHTTPDetector(cfg.EndpointURL, cfg.RequestTimeout)
	reports := storage.NewMemoryReportRepository()
	opts := app.BatchOptions{
		OutputDir: cfg.OutputDir,
		Throttle:  cfg.Throttle,
		Workers:   cfg.Workers,
	}
	appContainer := container.New(detector, reports, logger, opts)

	report, err := appContainer.BatchService.Run(context.Background(), images)
	if err != nil {
		logger.Fatalf("Batch error: %v", err)
	}

	for _, outcome := range report.Outcomes() {
		if outcome.Status == entity.OutcomeFailed {
			logger.Warnf("%s: %s", filepath.Base(outcome.Image), strings.Join(outcome.Errors, "; "))
			continue
		}
		logger.Infof("%s: %d receipt(s), avg confidence %.2f",
			filepath.Base(outcome.Image), outcome.Summary.Count, outcome.Summary.AvgConfidence)
	}
	logger.Infof("Results saved to %s", cfg.OutputDir)
}
