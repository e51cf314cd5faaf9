package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// OutcomeStatus — итоговое состояние обработки одного изображения.
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success" // все шаги прошли
	OutcomePartial OutcomeStatus = "partial" // детекция прошла, часть шагов упала
	OutcomeFailed  OutcomeStatus = "failed"  // изображение не обработано
)

// ImageOutcome — результат обработки одного изображения в батче.
type ImageOutcome struct {
	Image         string // путь исходного изображения, ключ в отчёте
	Status        OutcomeStatus
	CroppedPaths  []string // пути вырезанных чеков в порядке рамок
	AnnotatedPath string   // путь размеченной копии, если она записана
	Summary       Summary
	SkippedBoxes  int      // вырожденные после ограничения рамки
	Errors        []string // ошибки шагов, не прервавшие батч
}

// BatchReport накапливает результаты прогона батча. Слоты под изображения
// заводятся заранее в порядке входа, поэтому порядок завершения обработки
// на отчёт не влияет. Незаписанный слот считается необработанным (failed).
type BatchReport struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Succeeded  int
	Failed     int

	mu       sync.Mutex
	outcomes []ImageOutcome
	index    map[string]int
}

// NewBatchReport создаёт отчёт со слотом под каждое изображение батча.
func NewBatchReport(images []string) *BatchReport {
	r := &BatchReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		outcomes:  make([]ImageOutcome, len(images)),
		index:     make(map[string]int, len(images)),
	}
	for i, img := range images {
		r.outcomes[i] = ImageOutcome{Image: img, Status: OutcomeFailed}
		r.index[img] = i
	}
	return r
}

// Record кладёт итог по изображению в его слот.
func (r *BatchReport) Record(outcome ImageOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[outcome.Image]; ok {
		r.outcomes[i] = outcome
	}
}

// Finalize фиксирует время окончания и итоговые счётчики.
// Частично обработанные изображения считаются успешными: запрос к сервису прошёл.
func (r *BatchReport) Finalize() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.FinishedAt = time.Now()
	r.Succeeded, r.Failed = 0, 0
	for _, o := range r.outcomes {
		if o.Status == OutcomeFailed {
			r.Failed++
		} else {
			r.Succeeded++
		}
	}
}

// Outcomes возвращает копию итогов в порядке входа батча.
func (r *BatchReport) Outcomes() []ImageOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]ImageOutcome(nil), r.outcomes...)
}

// Outcome возвращает итог по пути изображения.
func (r *BatchReport) Outcome(image string) (ImageOutcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[image]
	if !ok {
		return ImageOutcome{}, false
	}
	return r.outcomes[i], true
}
