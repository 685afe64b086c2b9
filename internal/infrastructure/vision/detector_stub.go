//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"defect-scanner/internal/domain/entity"
)

type GoCVDetector struct{}

// NewGoCVDetector создаёт детектор-заглушку (без OpenCV).
func NewGoCVDetector() *GoCVDetector {
	return &GoCVDetector{}
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *GoCVDetector) Detect(ctx context.Context, imageData []byte, cfg entity.DetectionConfig) (*entity.DetectionResult, error) {
	_ = ctx
	_ = imageData
	_ = cfg
	return nil, errors.New("gocv build tag is not enabled")
}
