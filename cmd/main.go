package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"defect-scanner/config"
	telegram "defect-scanner/internal/api"
	"defect-scanner/internal/container"
	"defect-scanner/internal/domain/entity"
	"defect-scanner/internal/infrastructure/camera"
	"defect-scanner/internal/infrastructure/describe"
	"defect-scanner/internal/infrastructure/report"
	"defect-scanner/internal/infrastructure/storage"
	"defect-scanner/internal/infrastructure/vision"
	"defect-scanner/internal/logger"
)

func main() {
	var imagePath string
	var cameraMode bool
	var outputPath string

	flag.StringVar(&imagePath, "image", "", "run a one-shot check of an image file and exit")
	flag.BoolVar(&cameraMode, "camera", false, "scan frames from the camera until interrupted")
	flag.StringVar(&outputPath, "output", "", "path for the annotated image in one-shot mode")
	flag.Parse()

	log, err := logger.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	sugar := log.Sugar()

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalf("Failed to load config: %v", err)
	}

	detector := vision.NewGoCVDetector()
	describer := describe.NewTextDescriber()
	reporter := report.NewCSVReportGenerator(cfg.ReportDir)
	userRepo := storage.NewMemoryUserRepository()
	services := container.New(userRepo, detector, describer, reporter)

	switch {
	case imagePath != "":
		runOneShot(sugar, services, cfg, imagePath, outputPath)

	case cameraMode:
		runCamera(sugar, camera.NewScanner(cfg.CameraDevice, detector), cfg.Detection)

	default:
		if cfg.TelegramToken == "" {
			sugar.Fatal("TELEGRAM_TOKEN is required in bot mode")
		}

		bot, err := telegram.NewBot(cfg.TelegramToken, services, cfg.Detection, sugar)
		if err != nil {
			sugar.Fatalf("Failed to create bot: %v", err)
		}

		sugar.Info("Bot is running...")
		if err := bot.Run(); err != nil {
			sugar.Fatalf("Bot error: %v", err)
		}
	}
}

// runOneShot проверяет один файл: печатает сводку, сохраняет
// размеченное изображение и CSV-отчёт.
func runOneShot(sugar *zap.SugaredLogger, services *container.Container, cfg *config.Config, imagePath, outputPath string) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		sugar.Fatalf("Failed to read image: %v", err)
	}

	out, err := services.InspectionService.ProcessPhoto(context.Background(), 0, data, cfg.Detection)
	if err != nil {
		sugar.Fatalf("Detection failed: %v", err)
	}

	fmt.Println(out.Summary)

	if outputPath == "" {
		ext := filepath.Ext(imagePath)
		outputPath = imagePath[:len(imagePath)-len(ext)] + "_annotated.jpg"
	}
	if len(out.Result.Annotated) > 0 {
		if err := os.WriteFile(outputPath, out.Result.Annotated, 0o644); err != nil {
			sugar.Fatalf("Failed to write annotated image: %v", err)
		}
		sugar.Infof("Annotated image saved to %s", outputPath)
	}

	reportPath, err := services.InspectionService.SaveReport(filepath.Base(imagePath), out.Result)
	if err != nil {
		sugar.Fatalf("Failed to write report: %v", err)
	}
	sugar.Infof("Report saved to %s", reportPath)

	if out.Result.Status == entity.StatusFail {
		os.Exit(1)
	}
}

// runCamera сканирует кадры с камеры до Ctrl+C и логирует вердикты.
func runCamera(sugar *zap.SugaredLogger, scanner *camera.Scanner, detection entity.DetectionConfig) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sugar.Infof("Scanning camera %d, press Ctrl+C to stop", scanner.DeviceID)
	err := scanner.Run(ctx, detection, func(result *entity.DetectionResult, err error) {
		if err != nil {
			sugar.Warnf("Frame skipped: %v", err)
			return
		}
		if result.HasDefects() {
			sugar.Infow("Defects detected",
				"count", len(result.Defects),
				"total_area_mm2", result.TotalAreaMm2,
				"status", result.Status,
			)
		}
	})
	if err != nil && ctx.Err() == nil {
		sugar.Fatalf("Camera scan failed: %v", err)
	}
}
