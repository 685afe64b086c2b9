package entity

import (
	"image"
	"image/color"
)

// DefectType — тип дефекта, присвоенный классификатором.
// Типы взаимоисключающие: каждому дефекту назначается ровно один.
type DefectType string

const (
	DefectCrack          DefectType = "Crack"           // трещина: вытянутая форма
	DefectHole           DefectType = "Hole"            // отверстие: близко к кругу
	DefectMisalignment   DefectType = "Misalignment"    // смещение: средний размер
	DefectIrregularShape DefectType = "Irregular Shape" // неровная форма: низкая округлость
	DefectLargeDefect    DefectType = "Large Defect"    // крупный дефект: площадь выше предела
	DefectSmallDefect    DefectType = "Small Defect"    // мелкий дефект: всё остальное
)

// Severity — степень критичности дефекта для вердикта Pass/Fail.
type Severity int

const (
	SeverityAny      Severity = iota // нулевое значение: любой дефект бракует деталь
	SeverityMinor                    // некритичный дефект
	SeverityMajor                    // значимый дефект
	SeverityCritical                 // брак без вариантов
)

// Severity возвращает степень критичности типа дефекта.
func (t DefectType) Severity() Severity {
	switch t {
	case DefectCrack, DefectLargeDefect:
		return SeverityCritical
	case DefectHole, DefectIrregularShape, DefectMisalignment:
		return SeverityMajor
	default:
		return SeverityMinor
	}
}

// Color возвращает фиксированный цвет разметки для типа дефекта.
func (t DefectType) Color() color.RGBA {
	switch t {
	case DefectCrack:
		return color.RGBA{R: 255, A: 255} // красный
	case DefectHole:
		return color.RGBA{B: 255, A: 255} // синий
	case DefectIrregularShape:
		return color.RGBA{R: 255, G: 165, A: 255} // оранжевый
	case DefectMisalignment:
		return color.RGBA{R: 255, G: 255, A: 255} // жёлтый
	case DefectLargeDefect:
		return color.RGBA{R: 255, B: 255, A: 255} // пурпурный
	case DefectSmallDefect:
		return color.RGBA{G: 255, A: 255} // зелёный
	default:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

// DefectRecord — один найденный дефект с геометрическими измерениями.
// Запись неизменяема после создания.
type DefectRecord struct {
	ID          int             // порядковый номер с единицы, в порядке обнаружения
	Type        DefectType      // присвоенный тип
	AreaPx      float64         // площадь в пикселях
	AreaMm2     float64         // площадь в мм²
	Bounds      image.Rectangle // охватывающий прямоугольник
	AspectRatio float64         // длинная сторона к короткой, всегда >= 1
	Circularity float64         // округлость в [0, 1]
	Centroid    image.Point     // центр масс контура
	Contour     Contour         // исходный контур для разметки
}
