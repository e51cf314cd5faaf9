package entity

import (
	"image"
	"math"
)

// Box — прямоугольная рамка детекции в пиксельных координатах исходного изображения.
type Box struct {
	X1 float64 // левый край
	Y1 float64 // верхний край
	X2 float64 // правый край
	Y2 float64 // нижний край
}

// Clamp ограничивает рамку границами изображения width×height и приводит её
// к пиксельной сетке: координаты усекаются вниз (floor), как при кропе по
// индексам пикселей. Вырожденная или перевёрнутая рамка даёт пустой прямоугольник.
func (b Box) Clamp(width, height int) image.Rectangle {
	r := image.Rectangle{
		Min: image.Pt(int(math.Floor(b.X1)), int(math.Floor(b.Y1))),
		Max: image.Pt(int(math.Floor(b.X2)), int(math.Floor(b.Y2))),
	}
	return r.Intersect(image.Rect(0, 0, width, height))
}

// DetectionResult хранит итог одного инференса сервиса детекции.
// Boxes, Scores и Labels выровнены по индексам: i-й score относится к i-й рамке.
// После конструирования результат не меняется.
type DetectionResult struct {
	Boxes  []Box
	Scores []float64
	Labels []int
}

// NewDetectionResult проверяет выравнивание последовательностей и собирает результат.
// Рассинхрон длин — это испорченный ответ сервиса, он отсекается здесь,
// чтобы потребители могли полагаться на инвариант выравнивания.
func NewDetectionResult(boxes []Box, scores []float64, labels []int) (*DetectionResult, error) {
	if len(boxes) != len(scores) {
		return nil, &AlignmentError{Boxes: len(boxes), Scores: len(scores), Labels: -1}
	}
	if labels != nil && len(labels) != len(boxes) {
		return nil, &AlignmentError{Boxes: len(boxes), Scores: len(scores), Labels: len(labels)}
	}
	return &DetectionResult{Boxes: boxes, Scores: scores, Labels: labels}, nil
}

// Count возвращает число найденных рамок до какой-либо фильтрации.
func (r *DetectionResult) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Boxes)
}
