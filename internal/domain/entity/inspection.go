package entity

// Status — итоговый вердикт проверки детали.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// DetectionResult хранит итог одного запуска конвейера детекции.
type DetectionResult struct {
	Defects      []DefectRecord // найденные дефекты в порядке обнаружения
	Annotated    []byte         // изображение с разметкой (JPEG); nil, если разметка не строилась
	ImageWidth   int            // ширина исходного изображения
	ImageHeight  int            // высота исходного изображения
	TotalAreaMm2 float64        // суммарная площадь дефектов в мм²
	Status       Status         // вердикт Pass/Fail
}

// HasDefects сообщает, нашлись ли дефекты.
func (r *DetectionResult) HasDefects() bool {
	return len(r.Defects) > 0
}

// CountByType возвращает количество дефектов каждого типа.
func (r *DetectionResult) CountByType() map[DefectType]int {
	counts := make(map[DefectType]int, len(r.Defects))
	for _, d := range r.Defects {
		counts[d.Type]++
	}
	return counts
}
