package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"receipt-pipeline/internal/domain/entity"
	"receipt-pipeline/internal/domain/port"
)

// Параметры разметки повторяют эталонный скрипт визуальной проверки.
const (
	outlineWidth = 3.0
	labelOffset  = 15
	labelSize    = 14.0
)

var annotationFont *truetype.Font

func init() {
	var err error
	annotationFont, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// Annotator рисует рамки детекции и их уверенность поверх копии изображения.
type Annotator struct{}

// NewAnnotator создаёт рендер аннотаций.
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// Annotate обводит каждую пригодную рамку и подписывает уверенность у её
// левого верхнего угла, не выходя за верхний край изображения.
// Исходное изображение не меняется: рисование идёт по копии.
func (a *Annotator) Annotate(img image.Image, result *entity.DetectionResult, outputPath string) error {
	dc := gg.NewContextForImage(img)
	dc.SetFontFace(truetype.NewFace(annotationFont, &truetype.Options{Size: labelSize}))

	red := color.RGBA{R: 255, A: 255}
	bounds := img.Bounds()
	for i := 0; i < result.Count(); i++ {
		rect := result.Boxes[i].Clamp(bounds.Dx(), bounds.Dy())
		if rect.Empty() {
			continue
		}

		dc.SetColor(red)
		dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()))
		dc.SetLineWidth(outlineWidth)
		dc.Stroke()

		labelY := rect.Min.Y - labelOffset
		if labelY < 0 {
			labelY = 0
		}
		label := fmt.Sprintf("%.2f", result.Scores[i])
		dc.DrawStringWrapped(label, float64(rect.Min.X), float64(labelY), 0, 0, float64(dc.Width()), 1, gg.AlignLeft)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return &entity.IOWriteError{Path: outputPath, Err: err}
	}
	if err := imaging.Save(dc.Image(), outputPath); err != nil {
		return &entity.IOWriteError{Path: outputPath, Err: err}
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.ReceiptAnnotator = (*Annotator)(nil)
