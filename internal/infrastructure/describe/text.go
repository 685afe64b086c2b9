package describe

import (
	"context"
	"fmt"
	"strings"

	"defect-scanner/internal/domain/entity"
	"defect-scanner/internal/domain/port"
)

// TextDescriber строит короткую текстовую сводку по результату
// проверки: вердикт, количество и площадь дефектов, разбивка по типам.
type TextDescriber struct{}

// NewTextDescriber создаёт текстовый описатель результатов.
func NewTextDescriber() *TextDescriber {
	return &TextDescriber{}
}

// Describe возвращает человекочитаемую сводку результата.
func (d *TextDescriber) Describe(ctx context.Context, result *entity.DetectionResult) (string, error) {
	_ = ctx
	if result == nil {
		return "", fmt.Errorf("nil detection result")
	}

	if !result.HasDefects() {
		return "No defects found. Status: PASS", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d defect(s), total area %.2f mm2. Status: %s\n",
		len(result.Defects), result.TotalAreaMm2, result.Status)

	counts := result.CountByType()
	for _, dt := range []entity.DefectType{
		entity.DefectCrack,
		entity.DefectHole,
		entity.DefectMisalignment,
		entity.DefectIrregularShape,
		entity.DefectLargeDefect,
		entity.DefectSmallDefect,
	} {
		if n, ok := counts[dt]; ok {
			fmt.Fprintf(&b, "- %s: %d\n", dt, n)
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// Проверка реализации интерфейса
var _ port.DefectDescriber = (*TextDescriber)(nil)
