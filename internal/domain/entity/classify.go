package entity

import "math"

// Пороги правил классификации. Подобраны под масштаб по умолчанию
// 0.1 мм/пиксель; в конфигурацию не вынесены.
const (
	largeDefectAreaMm2   = 50.0 // площадь, выше которой дефект считается крупным
	crackAspectRatio     = 3.0  // вытянутость, выше которой дефект считается трещиной
	holeCircularity      = 0.8  // округлость, выше которой дефект считается отверстием
	irregularCircularity = 0.3  // округлость, ниже которой форма считается неровной
	misalignMaxAreaMm2   = 25.0 // верхняя граница среднего размера для смещения

	// thinBoxEpsilon защищает от деления на ноль на вырожденных
	// однопиксельных прямоугольниках.
	thinBoxEpsilon = 1e-6
)

// defectFeatures — геометрические признаки одного контура,
// по которым работает таблица правил.
type defectFeatures struct {
	areaMm2     float64
	aspectRatio float64
	circularity float64
}

// classificationRule — одно правило таблицы классификации.
type classificationRule struct {
	defectType DefectType
	matches    func(f defectFeatures, cfg DetectionConfig) bool
}

// classificationRules — упорядоченная таблица правил. Порядок несёт
// смысл: побеждает первое сработавшее правило, поэтому крупный дефект
// перекрывает отверстие, а трещина — смещение. Последнее правило —
// безусловный фолбэк.
var classificationRules = []classificationRule{
	{DefectLargeDefect, func(f defectFeatures, _ DetectionConfig) bool {
		return f.areaMm2 > largeDefectAreaMm2
	}},
	{DefectCrack, func(f defectFeatures, _ DetectionConfig) bool {
		return f.aspectRatio > crackAspectRatio
	}},
	{DefectHole, func(f defectFeatures, _ DetectionConfig) bool {
		return f.circularity > holeCircularity
	}},
	{DefectIrregularShape, func(f defectFeatures, _ DetectionConfig) bool {
		return f.circularity < irregularCircularity
	}},
	{DefectMisalignment, func(f defectFeatures, cfg DetectionConfig) bool {
		return f.areaMm2 >= cfg.MinDefectAreaMm2*2 && f.areaMm2 <= misalignMaxAreaMm2
	}},
	{DefectSmallDefect, func(defectFeatures, DetectionConfig) bool {
		return true
	}},
}

// classifyFeatures прогоняет признаки по таблице правил сверху вниз.
func classifyFeatures(f defectFeatures, cfg DetectionConfig) DefectType {
	for _, rule := range classificationRules {
		if rule.matches(f, cfg) {
			return rule.defectType
		}
	}
	return DefectSmallDefect
}

// Classify превращает контуры в записи о дефектах: измеряет геометрию,
// отбрасывает мелочь ниже порога площади, назначает тип по таблице
// правил и собирает итог с вердиктом. Разметка изображения в зону
// ответственности классификатора не входит.
func Classify(contours []Contour, cfg DetectionConfig) *DetectionResult {
	result := &DetectionResult{
		Defects: make([]DefectRecord, 0, len(contours)),
		Status:  StatusPass,
	}

	for _, contour := range contours {
		areaPx := contour.Area()
		areaMm2 := areaPx * cfg.PixelToMmScale * cfg.PixelToMmScale
		if areaMm2 < cfg.MinDefectAreaMm2 {
			// Шум: запись не создаётся, нумерация не двигается.
			continue
		}

		bounds := contour.BoundingRect()
		long := math.Max(float64(bounds.Dx()), float64(bounds.Dy()))
		short := math.Min(float64(bounds.Dx()), float64(bounds.Dy()))
		aspectRatio := long / math.Max(short, thinBoxEpsilon)

		perimeterPx := contour.Perimeter()
		var circularity float64
		if perimeterPx > thinBoxEpsilon {
			circularity = 4 * math.Pi * areaPx / (perimeterPx * perimeterPx)
		}
		// Численный шум может чуть выбить формулу за [0, 1].
		circularity = math.Min(math.Max(circularity, 0), 1)

		features := defectFeatures{
			areaMm2:     areaMm2,
			aspectRatio: aspectRatio,
			circularity: circularity,
		}

		result.Defects = append(result.Defects, DefectRecord{
			ID:          len(result.Defects) + 1,
			Type:        classifyFeatures(features, cfg),
			AreaPx:      areaPx,
			AreaMm2:     areaMm2,
			Bounds:      bounds,
			AspectRatio: aspectRatio,
			Circularity: circularity,
			Centroid:    contour.Centroid(),
			Contour:     contour,
		})
		result.TotalAreaMm2 += areaMm2
	}

	gate := cfg.FailSeverity
	if gate == SeverityAny {
		gate = SeverityMinor
	}
	for _, d := range result.Defects {
		if d.Type.Severity() >= gate {
			result.Status = StatusFail
			break
		}
	}

	return result
}
