package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"defect-scanner/internal/domain/entity"
	"defect-scanner/internal/domain/port"
)

// CSVReportGenerator пишет отчёты о проверке деталей в формате CSV:
// шапка, сводка, разбивка по типам и детальный список дефектов.
type CSVReportGenerator struct {
	Dir string // каталог для сохранения отчётов

	// now подменяется в тестах для стабильных имён файлов.
	now func() time.Time
}

// NewCSVReportGenerator создаёт генератор отчётов с каталогом dir.
func NewCSVReportGenerator(dir string) *CSVReportGenerator {
	return &CSVReportGenerator{Dir: dir, now: time.Now}
}

// Generate пишет отчёт по результату детекции в поток.
func (g *CSVReportGenerator) Generate(w io.Writer, imageName string, result *entity.DetectionResult) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Industrial Defect Detection Report"},
		{"Generated:", g.timestamp().Format("2006-01-02 15:04:05")},
		{"Image:", imageName},
		{},
		{"Summary"},
		{"Total Defects:", strconv.Itoa(len(result.Defects))},
		{"Total Defect Area (mm2):", fmt.Sprintf("%.2f", result.TotalAreaMm2)},
		{"Status:", string(result.Status)},
		{},
		{"Defect Types Breakdown"},
	}

	counts := result.CountByType()
	// Фиксированный порядок типов, чтобы отчёт был воспроизводимым.
	for _, dt := range []entity.DefectType{
		entity.DefectCrack,
		entity.DefectHole,
		entity.DefectMisalignment,
		entity.DefectIrregularShape,
		entity.DefectLargeDefect,
		entity.DefectSmallDefect,
	} {
		if n, ok := counts[dt]; ok {
			rows = append(rows, []string{string(dt), strconv.Itoa(n)})
		}
	}

	rows = append(rows,
		[]string{},
		[]string{"Detailed Defect List"},
		[]string{
			"ID", "Type", "Area (mm2)", "Area (pixels)",
			"X", "Y", "Width", "Height", "Aspect Ratio", "Circularity",
		},
	)

	for _, d := range result.Defects {
		rows = append(rows, []string{
			strconv.Itoa(d.ID),
			string(d.Type),
			fmt.Sprintf("%.2f", d.AreaMm2),
			fmt.Sprintf("%.0f", d.AreaPx),
			strconv.Itoa(d.Bounds.Min.X),
			strconv.Itoa(d.Bounds.Min.Y),
			strconv.Itoa(d.Bounds.Dx()),
			strconv.Itoa(d.Bounds.Dy()),
			fmt.Sprintf("%.2f", d.AspectRatio),
			fmt.Sprintf("%.3f", d.Circularity),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write report rows: %w", err)
	}
	return nil
}

// WriteFile сохраняет отчёт в каталог отчётов с именем по времени
// генерации и возвращает путь к файлу.
func (g *CSVReportGenerator) WriteFile(imageName string, result *entity.DetectionResult) (string, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	name := fmt.Sprintf("defect_report_%s.csv", g.timestamp().Format("20060102_150405"))
	path := filepath.Join(g.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := g.Generate(f, imageName, result); err != nil {
		return "", err
	}
	return path, nil
}

func (g *CSVReportGenerator) timestamp() time.Time {
	if g.now != nil {
		return g.now()
	}
	return time.Now()
}

// Проверка реализации интерфейса
var _ port.ReportWriter = (*CSVReportGenerator)(nil)
