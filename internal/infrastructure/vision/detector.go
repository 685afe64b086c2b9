//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"

	"gocv.io/x/gocv"

	"defect-scanner/internal/domain/entity"
)

// Размер ядра размытия фиксирован: 5×5 убирает однопиксельный шум,
// не размывая настоящие края.
const blurKernelSize = 5

// jpegQuality — качество кодирования размеченного изображения.
const jpegQuality = 90

type GoCVDetector struct{}

// NewGoCVDetector создаёт детектор на основе OpenCV.
func NewGoCVDetector() *GoCVDetector {
	return &GoCVDetector{}
}

// Detect прогоняет изображение через конвейер: серый + размытие,
// края и контуры, классификация, разметка. Между вызовами состояния
// нет, поэтому детектор безопасно звать из нескольких горутин.
func (d *GoCVDetector) Detect(ctx context.Context, imageData []byte, cfg entity.DetectionConfig) (*entity.DetectionResult, error) {
	_ = ctx
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	blurred, err := preprocess(mat)
	if err != nil {
		return nil, err
	}
	defer blurred.Close()

	contours := extractContours(blurred, cfg.EdgeThreshold1, cfg.EdgeThreshold2)

	result := entity.Classify(contours, cfg)
	result.ImageWidth = mat.Cols()
	result.ImageHeight = mat.Rows()

	annotated, err := annotate(mat, result.Defects)
	if err != nil {
		return nil, err
	}
	result.Annotated = annotated

	return result, nil
}

// preprocess переводит изображение в серый и подавляет шум размытием.
func preprocess(mat gocv.Mat) (gocv.Mat, error) {
	if mat.Empty() {
		return gocv.Mat{}, fmt.Errorf("%w: empty image", entity.ErrInvalidInput)
	}

	gray := gocv.NewMat()
	if mat.Channels() > 1 {
		gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)
	} else {
		mat.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	gocv.GaussianBlur(gray, &blurred, image.Pt(blurKernelSize, blurKernelSize), 0, 0, gocv.BorderDefault)
	gray.Close()

	return blurred, nil
}

// extractContours находит края двухпороговым детектором Кэнни,
// соединяет близкие края дилатацией и обводит внешние контуры.
// Порядок порогов не проверяется: при нарушении результат деградирует,
// но ошибки нет. Пустой список контуров — нормальный исход.
func extractContours(blurred gocv.Mat, threshold1, threshold2 int) []entity.Contour {
	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(blurred, &edges, float32(threshold1), float32(threshold2))

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()
	dilated := gocv.NewMat()
	defer dilated.Close()
	gocv.Dilate(edges, &dilated, kernel)

	found := gocv.FindContours(dilated, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer found.Close()

	contours := make([]entity.Contour, 0, found.Size())
	for i := 0; i < found.Size(); i++ {
		contours = append(contours, entity.Contour(found.At(i).ToPoints()))
	}

	return contours
}

// annotate рисует на копии исходного изображения контур, рамку и
// подпись каждого дефекта цветом его типа и кодирует результат в JPEG.
func annotate(mat gocv.Mat, defects []entity.DefectRecord) ([]byte, error) {
	canvas := mat.Clone()
	defer canvas.Close()

	for _, defect := range defects {
		clr := defect.Type.Color()

		pts := gocv.NewPointsVectorFromPoints([][]image.Point{defect.Contour})
		gocv.DrawContours(&canvas, pts, -1, clr, 2)
		pts.Close()

		gocv.Rectangle(&canvas, defect.Bounds, clr, 2)

		label := fmt.Sprintf("#%d %s: %.1fmm2", defect.ID, defect.Type, defect.AreaMm2)
		origin := image.Pt(defect.Bounds.Min.X, defect.Bounds.Min.Y-10)
		gocv.PutText(&canvas, label, origin, gocv.FontHersheySimplex, 0.5, clr, 2)
	}

	img, err := canvas.ToImage()
	if err != nil {
		return nil, fmt.Errorf("encode annotated image: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode annotated image: %w", err)
	}

	return buf.Bytes(), nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	if len(imageData) == 0 {
		return gocv.NewMat(), fmt.Errorf("%w: empty image data", entity.ErrInvalidInput)
	}

	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), fmt.Errorf("%w: failed to decode image", entity.ErrInvalidInput)
}
