//go:build gocv
// +build gocv

package camera

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"

	"defect-scanner/internal/domain/entity"
	"defect-scanner/internal/domain/port"
)

// Scanner читает кадры с камеры и прогоняет каждый через конвейер
// детекции. Детекция синхронная: пока она идёт, новые кадры не
// накапливаются в очередь, а остаются в буфере камеры и вытесняются —
// при отставании теряются устаревшие кадры, а не свежие.
type Scanner struct {
	DeviceID int
	detector port.DefectDetector
}

// NewScanner создаёт сканер для устройства камеры.
func NewScanner(deviceID int, detector port.DefectDetector) *Scanner {
	return &Scanner{DeviceID: deviceID, detector: detector}
}

// Run крутит цикл захвата до отмены контекста. Каждый результат
// передаётся в onResult; ошибка детекции одного кадра цикл не
// останавливает.
func (s *Scanner) Run(ctx context.Context, cfg entity.DetectionConfig, onResult func(*entity.DetectionResult, error)) error {
	capture, err := gocv.OpenVideoCapture(s.DeviceID)
	if err != nil {
		return fmt.Errorf("open camera %d: %w", s.DeviceID, err)
	}
	defer capture.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if ok := capture.Read(&frame); !ok || frame.Empty() {
			continue
		}

		buf, err := gocv.IMEncode(gocv.JPEGFileExt, frame)
		if err != nil {
			onResult(nil, fmt.Errorf("encode frame: %w", err))
			continue
		}
		data := make([]byte, len(buf.GetBytes()))
		copy(data, buf.GetBytes())
		buf.Close()

		result, err := s.detector.Detect(ctx, data, cfg)
		onResult(result, err)
	}
}
