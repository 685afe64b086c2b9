package port

import (
	"context"

	"defect-scanner/internal/domain/entity"
)

// DefectDetector — конвейер детекции дефектов.
type DefectDetector interface {
	// Detect прогоняет изображение через конвейер: подготовка,
	// выделение контуров, классификация, разметка. Результат —
	// чистая функция от изображения и конфигурации.
	Detect(ctx context.Context, imageData []byte, cfg entity.DetectionConfig) (*entity.DetectionResult, error)
}
