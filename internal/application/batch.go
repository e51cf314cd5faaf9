package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/edaniels/golog"

	// Регистрируем webp-декодер: сервис принимает webp, а стандартная
	// библиотека его не знает.
	_ "golang.org/x/image/webp"

	"receipt-pipeline/internal/domain/entity"
	"receipt-pipeline/internal/domain/port"
)

// BatchOptions — настройки прогона батча.
type BatchOptions struct {
	OutputDir string        // корень для артефактов; каждое изображение получает подкаталог
	Throttle  time.Duration // пауза между обращениями к сервису, на каждого воркера
	Workers   int           // размер пула воркеров; 1 — последовательная обработка
}

// DefaultBatchOptions возвращает настройки эталонного последовательного прогона.
func DefaultBatchOptions(outputDir string) BatchOptions {
	return BatchOptions{
		OutputDir: outputDir,
		Throttle:  100 * time.Millisecond,
		Workers:   1,
	}
}

// BatchService прогоняет батч изображений через детекцию, кроп, разметку и сводку.
// Сбой одного изображения никогда не прерывает обработку остальных.
type BatchService struct {
	detector  port.ReceiptDetector
	cropper   port.ReceiptCropper
	annotator port.ReceiptAnnotator
	reports   port.ReportRepository
	logger    golog.Logger
	opts      BatchOptions
}

// NewBatchService собирает оркестратор батча.
func NewBatchService(
	detector port.ReceiptDetector,
	cropper port.ReceiptCropper,
	annotator port.ReceiptAnnotator,
	reports port.ReportRepository,
	logger golog.Logger,
	opts BatchOptions,
) *BatchService {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &BatchService{
		detector:  detector,
		cropper:   cropper,
		annotator: annotator,
		reports:   reports,
		logger:    logger,
		opts:      opts,
	}
}

// Run обрабатывает изображения в порядке входа и возвращает финальный отчёт.
// Итоги приходят через канал результатов в единственный аккумулятор, поэтому
// отчёт привязан к изображениям, а не к порядку завершения воркеров.
func (s *BatchService) Run(ctx context.Context, images []string) (*entity.BatchReport, error) {
	report := entity.NewBatchReport(images)
	s.logger.Infof("batch %s: %d image(s), %d worker(s)", report.RunID, len(images), s.opts.Workers)

	jobs := make(chan string)
	results := make(chan entity.ImageOutcome)

	var wg sync.WaitGroup
	for w := 0; w < s.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for img := range jobs {
				results <- s.processImage(ctx, img)
				s.throttle(ctx)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, img := range images {
			select {
			case jobs <- img:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	done := 0
	for outcome := range results {
		done++
		s.logger.Infof("[%d/%d] %s: %s", done, len(images), filepath.Base(outcome.Image), outcome.Status)
		for _, msg := range outcome.Errors {
			s.logger.Debugf("  %s", msg)
		}
		report.Record(outcome)
	}

	report.Finalize()
	s.logger.Infof("batch %s complete: %d succeeded, %d failed", report.RunID, report.Succeeded, report.Failed)

	if s.reports != nil {
		if err := s.reports.Save(ctx, report); err != nil {
			s.logger.Errorf("store batch report %s: %v", report.RunID, err)
		}
	}
	return report, nil
}

// processImage прогоняет одно изображение через все шаги и собирает его итог.
// Шаги после детекции независимы: падение кропа не мешает разметке и сводке.
func (s *BatchService) processImage(ctx context.Context, imagePath string) entity.ImageOutcome {
	outcome := entity.ImageOutcome{Image: imagePath, Status: entity.OutcomeFailed}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		outcome.Errors = append(outcome.Errors, (&entity.ImageDecodeError{Path: imagePath, Err: err}).Error())
		return outcome
	}

	result, err := s.detector.Detect(ctx, data)
	if err != nil {
		outcome.Errors = append(outcome.Errors, err.Error())
		return outcome
	}

	// Сводка не зависит от декодирования картинки и считается всегда.
	outcome.Summary = entity.Summarize(result)
	outcome.Status = entity.OutcomePartial

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		outcome.Errors = append(outcome.Errors, (&entity.ImageDecodeError{Path: imagePath, Err: err}).Error())
		return outcome
	}

	// Подкаталог именуется полным именем файла: одинаковые основы с разными
	// расширениями (photo.jpg и photo.png) не должны делить выходные пути.
	imageDir := filepath.Join(s.opts.OutputDir, filepath.Base(imagePath))

	paths, skipped, err := s.cropper.Crop(img, result, imageDir)
	outcome.CroppedPaths = paths
	outcome.SkippedBoxes = skipped
	if err != nil {
		outcome.Errors = append(outcome.Errors, err.Error())
	}

	annotatedPath := filepath.Join(imageDir, annotatedName(imagePath))
	if err := s.annotator.Annotate(img, result, annotatedPath); err != nil {
		outcome.Errors = append(outcome.Errors, err.Error())
	} else {
		outcome.AnnotatedPath = annotatedPath
	}

	if len(outcome.Errors) == 0 {
		outcome.Status = entity.OutcomeSuccess
	}
	return outcome
}

// throttle выдерживает паузу между обращениями к сервису, чтобы не заваливать его.
func (s *BatchService) throttle(ctx context.Context) {
	if s.opts.Throttle <= 0 {
		return
	}
	select {
	case <-time.After(s.opts.Throttle):
	case <-ctx.Done():
	}
}
