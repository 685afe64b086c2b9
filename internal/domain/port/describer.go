package port

import (
	"context"

	"defect-scanner/internal/domain/entity"
)

// DefectDescriber — генератор текстового описания результата проверки.
type DefectDescriber interface {
	// Describe строит человекочитаемую сводку по результату детекции.
	Describe(ctx context.Context, result *entity.DetectionResult) (string, error)
}
