package entity

import "fmt"

// DetectionRequestError — сбой обращения к сервису детекции:
// транспортная ошибка, таймаут или не-200 ответ.
type DetectionRequestError struct {
	StatusCode int    // 0, если ответ не получен
	Body       string // тело ответа сервиса, если было
	Err        error
}

func (e *DetectionRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("detection request failed: %v", e.Err)
	}
	return fmt.Sprintf("detection request failed: status %d: %s", e.StatusCode, e.Body)
}

func (e *DetectionRequestError) Unwrap() error { return e.Err }

// AlignmentError — рассинхрон длин boxes/scores/labels в ответе сервиса.
type AlignmentError struct {
	Boxes  int
	Scores int
	Labels int // -1, если labels в ответе отсутствуют
}

func (e *AlignmentError) Error() string {
	if e.Labels >= 0 {
		return fmt.Sprintf("misaligned detection payload: %d boxes, %d scores, %d labels", e.Boxes, e.Scores, e.Labels)
	}
	return fmt.Sprintf("misaligned detection payload: %d boxes, %d scores", e.Boxes, e.Scores)
}

// ParseError — тело ответа сервиса не разбирается: битый JSON или рамка не из четырёх чисел.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed detection payload: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed detection payload: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ImageDecodeError — исходное изображение не удалось прочитать или декодировать.
type ImageDecodeError struct {
	Path string
	Err  error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("cannot decode image %s: %v", e.Path, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

// IOWriteError — артефакт не удалось записать на диск.
type IOWriteError struct {
	Path string
	Err  error
}

func (e *IOWriteError) Error() string {
	return fmt.Sprintf("cannot write artifact %s: %v", e.Path, e.Err)
}

func (e *IOWriteError) Unwrap() error { return e.Err }
