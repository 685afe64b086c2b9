package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"defect-scanner/internal/domain/entity"
	"defect-scanner/internal/infrastructure/describe"
	"defect-scanner/internal/infrastructure/report"
)

// fakeDetector возвращает заранее подготовленный результат.
type fakeDetector struct {
	result  *entity.DetectionResult
	lastCfg entity.DetectionConfig
}

func (f *fakeDetector) Detect(ctx context.Context, imageData []byte, cfg entity.DetectionConfig) (*entity.DetectionResult, error) {
	f.lastCfg = cfg
	return f.result, nil
}

func crackResult() *entity.DetectionResult {
	return &entity.DetectionResult{
		Defects: []entity.DefectRecord{
			{ID: 1, Type: entity.DefectCrack, AreaPx: 2000, AreaMm2: 20, AspectRatio: 18.3, Circularity: 0.14},
		},
		TotalAreaMm2: 20,
		Status:       entity.StatusFail,
	}
}

func TestInspectionService_ProcessPhoto(t *testing.T) {
	detector := &fakeDetector{result: crackResult()}
	svc := NewInspectionService(detector, describe.NewTextDescriber(), report.NewCSVReportGenerator(t.TempDir()))

	cfg := entity.DefaultDetectionConfig()
	out, err := svc.ProcessPhoto(context.Background(), 1, []byte("img"), cfg)
	require.NoError(t, err)
	require.Equal(t, cfg, detector.lastCfg)
	require.Equal(t, entity.StatusFail, out.Result.Status)
	require.Contains(t, out.Summary, "Crack: 1")

	cached, ok := svc.LastResult(1)
	require.True(t, ok)
	require.Equal(t, out.Result, cached)
}

func TestInspectionService_ExportReport(t *testing.T) {
	detector := &fakeDetector{result: crackResult()}
	svc := NewInspectionService(detector, describe.NewTextDescriber(), report.NewCSVReportGenerator(t.TempDir()))

	_, err := svc.ExportReport(1, "part.png")
	require.Error(t, err, "report before any check must fail")

	_, err = svc.ProcessPhoto(context.Background(), 1, []byte("img"), entity.DefaultDetectionConfig())
	require.NoError(t, err)

	data, err := svc.ExportReport(1, "part.png")
	require.NoError(t, err)
	require.Contains(t, string(data), "Industrial Defect Detection Report")
	require.Contains(t, string(data), "Image:,part.png")
	require.Contains(t, string(data), "Status:,FAIL")
}

func TestInspectionService_SaveReport(t *testing.T) {
	svc := NewInspectionService(&fakeDetector{result: crackResult()}, nil, report.NewCSVReportGenerator(t.TempDir()))

	path, err := svc.SaveReport("part.png", crackResult())
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, ".csv"))
}

func TestInspectionService_NoDetector(t *testing.T) {
	svc := NewInspectionService(nil, nil, nil)

	_, err := svc.ProcessPhoto(context.Background(), 1, []byte("img"), entity.DefaultDetectionConfig())
	require.Error(t, err)
}
