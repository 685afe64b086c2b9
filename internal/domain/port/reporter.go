package port

import (
	"io"

	"defect-scanner/internal/domain/entity"
)

// ReportWriter — генератор отчётов по результатам проверки.
type ReportWriter interface {
	// Generate пишет отчёт в поток.
	Generate(w io.Writer, imageName string, result *entity.DetectionResult) error

	// WriteFile сохраняет отчёт в каталог отчётов и возвращает путь.
	WriteFile(imageName string, result *entity.DetectionResult) (string, error)
}
