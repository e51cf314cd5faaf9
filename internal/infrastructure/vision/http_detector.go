package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"receipt-pipeline/internal/domain/entity"
	"receipt-pipeline/internal/domain/port"
)

// HTTPDetector — клиент сервиса детекции чеков поверх HTTP API.
type HTTPDetector struct {
	endpoint string
	client   *http.Client
}

// NewHTTPDetector создаёт клиента с явным таймаутом запроса.
func NewHTTPDetector(endpoint string, timeout time.Duration) *HTTPDetector {
	return &HTTPDetector{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// detectionPayload — сырое тело успешного ответа сервиса.
// Отсутствующие boxes/scores допустимы и означают пустой результат.
type detectionPayload struct {
	Boxes  [][]float64 `json:"boxes"`
	Scores []float64   `json:"scores"`
	Labels []int       `json:"labels"`
}

// Detect отправляет изображение multipart-запросом с полем image
// и разбирает ответ в DetectionResult.
func (d *HTTPDetector) Detect(ctx context.Context, imageData []byte) (*entity.DetectionResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", "image.jpg")
	if err != nil {
		return nil, errors.Wrap(err, "create form file")
	}
	if _, err := io.Copy(part, bytes.NewReader(imageData)); err != nil {
		return nil, errors.Wrap(err, "copy image data")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "close multipart writer")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.client.Do(req)
	if err != nil {
		// Транспортный сбой или таймаут: ответа нет, код статуса неизвестен.
		return nil, &entity.DetectionRequestError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &entity.DetectionRequestError{StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &entity.DetectionRequestError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var payload detectionPayload
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, &entity.ParseError{Reason: "invalid json body", Err: err}
	}

	boxes := make([]entity.Box, 0, len(payload.Boxes))
	for i, raw := range payload.Boxes {
		if len(raw) != 4 {
			return nil, &entity.ParseError{Reason: fmt.Sprintf("box %d has %d coordinates, want 4", i, len(raw))}
		}
		boxes = append(boxes, entity.Box{X1: raw[0], Y1: raw[1], X2: raw[2], Y2: raw[3]})
	}

	return entity.NewDetectionResult(boxes, payload.Scores, payload.Labels)
}

// Проверка реализации интерфейса
var _ port.ReceiptDetector = (*HTTPDetector)(nil)
