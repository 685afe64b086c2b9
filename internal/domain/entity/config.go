package entity

import (
	"errors"
	"fmt"
)

// Ошибки конвейера детекции.
var (
	// ErrInvalidInput — пустое или нераспознанное входное изображение.
	ErrInvalidInput = errors.New("invalid input image")
	// ErrInvalidConfig — конфигурация с недопустимыми значениями.
	ErrInvalidConfig = errors.New("invalid detection config")
)

// Значения конфигурации по умолчанию.
const (
	DefaultMinDefectAreaMm2 = 5.0
	DefaultEdgeThreshold1   = 50
	DefaultEdgeThreshold2   = 150
	DefaultPixelToMmScale   = 0.1
)

// DetectionConfig — настройки одного запуска детекции.
// Конфигурация неизменяема в течение запуска и передаётся вызывающей
// стороной; конвейер не хранит её между вызовами.
type DetectionConfig struct {
	MinDefectAreaMm2 float64  // минимальная площадь дефекта в мм², мельче — шум
	EdgeThreshold1   int      // нижний порог детектора краёв
	EdgeThreshold2   int      // верхний порог детектора краёв
	PixelToMmScale   float64  // линейный масштаб: мм на один пиксель
	FailSeverity     Severity // порог критичности для вердикта Fail; ноль — любой дефект
}

// DefaultDetectionConfig возвращает конфигурацию по умолчанию.
func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		MinDefectAreaMm2: DefaultMinDefectAreaMm2,
		EdgeThreshold1:   DefaultEdgeThreshold1,
		EdgeThreshold2:   DefaultEdgeThreshold2,
		PixelToMmScale:   DefaultPixelToMmScale,
	}
}

// Validate проверяет, что конфигурация пригодна для запуска.
func (c DetectionConfig) Validate() error {
	if c.MinDefectAreaMm2 < 0 {
		return fmt.Errorf("%w: min defect area must not be negative, got %g", ErrInvalidConfig, c.MinDefectAreaMm2)
	}
	if c.PixelToMmScale <= 0 {
		return fmt.Errorf("%w: pixel-to-mm scale must be positive, got %g", ErrInvalidConfig, c.PixelToMmScale)
	}
	return nil
}
