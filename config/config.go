package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"defect-scanner/internal/domain/entity"
)

type Config struct {
	TelegramToken string
	ReportDir     string
	CameraDevice  int
	Detection     entity.DetectionConfig
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	detection := entity.DefaultDetectionConfig()
	detection.MinDefectAreaMm2 = envFloat("MIN_DEFECT_AREA_MM2", detection.MinDefectAreaMm2)
	detection.EdgeThreshold1 = envInt("EDGE_THRESHOLD1", detection.EdgeThreshold1)
	detection.EdgeThreshold2 = envInt("EDGE_THRESHOLD2", detection.EdgeThreshold2)
	detection.PixelToMmScale = envFloat("PIXEL_TO_MM_SCALE", detection.PixelToMmScale)
	detection.FailSeverity = entity.Severity(envInt("FAIL_SEVERITY", int(detection.FailSeverity)))

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		ReportDir:     envString("REPORT_DIR", "reports"),
		CameraDevice:  envInt("CAMERA_DEVICE", 0),
		Detection:     detection,
	}

	if err := cfg.Detection.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
