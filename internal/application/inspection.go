package app

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"defect-scanner/internal/domain/entity"
	"defect-scanner/internal/domain/port"
)

// InspectionService связывает конвейер детекции, описатель и генератор
// отчётов. Последний результат каждого пользователя кэшируется, чтобы
// отчёт можно было выгрузить отдельной командой.
type InspectionService struct {
	detector  port.DefectDetector
	describer port.DefectDescriber
	reporter  port.ReportWriter

	mu      sync.RWMutex
	results map[int64]*entity.DetectionResult
}

// InspectionOutput содержит результат детекции и текстовую сводку.
type InspectionOutput struct {
	Result  *entity.DetectionResult
	Summary string
}

// NewInspectionService создаёт сервис проверки деталей.
func NewInspectionService(detector port.DefectDetector, describer port.DefectDescriber, reporter port.ReportWriter) *InspectionService {
	return &InspectionService{
		detector:  detector,
		describer: describer,
		reporter:  reporter,
		results:   make(map[int64]*entity.DetectionResult),
	}
}

// ProcessPhoto прогоняет фото через конвейер и запоминает результат
// за пользователем.
func (s *InspectionService) ProcessPhoto(ctx context.Context, userID int64, photo []byte, cfg entity.DetectionConfig) (*InspectionOutput, error) {
	if s.detector == nil {
		return nil, errors.New("detector is not configured")
	}

	result, err := s.detector.Detect(ctx, photo, cfg)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.results[userID] = result
	s.mu.Unlock()

	summary := ""
	if s.describer != nil {
		summary, err = s.describer.Describe(ctx, result)
		if err != nil {
			return nil, err
		}
	}

	return &InspectionOutput{Result: result, Summary: summary}, nil
}

// LastResult возвращает последний результат проверки пользователя.
func (s *InspectionService) LastResult(userID int64) (*entity.DetectionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[userID]
	return result, ok
}

// ExportReport строит CSV-отчёт по последнему результату пользователя.
func (s *InspectionService) ExportReport(userID int64, imageName string) ([]byte, error) {
	if s.reporter == nil {
		return nil, errors.New("reporter is not configured")
	}

	result, ok := s.LastResult(userID)
	if !ok {
		return nil, errors.New("no detection result to report")
	}

	var buf bytes.Buffer
	if err := s.reporter.Generate(&buf, imageName, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveReport сохраняет CSV-отчёт по результату в каталог отчётов.
func (s *InspectionService) SaveReport(imageName string, result *entity.DetectionResult) (string, error) {
	if s.reporter == nil {
		return "", errors.New("reporter is not configured")
	}
	return s.reporter.WriteFile(imageName, result)
}
