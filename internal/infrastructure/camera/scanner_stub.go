//go:build !gocv
// +build !gocv

package camera

import (
	"context"
	"errors"

	"defect-scanner/internal/domain/entity"
	"defect-scanner/internal/domain/port"
)

type Scanner struct {
	DeviceID int
}

// NewScanner создаёт сканер-заглушку (без OpenCV).
func NewScanner(deviceID int, detector port.DefectDetector) *Scanner {
	_ = detector
	return &Scanner{DeviceID: deviceID}
}

// Run возвращает ошибку, если сборка без тега gocv.
func (s *Scanner) Run(ctx context.Context, cfg entity.DetectionConfig, onResult func(*entity.DetectionResult, error)) error {
	_ = ctx
	_ = cfg
	_ = onResult
	return errors.New("gocv build tag is not enabled")
}
