package entity

import (
	"image"
	"math"
)

// Contour — замкнутая последовательность целочисленных точек,
// ограничивающая связную область краёв на изображении.
type Contour []image.Point

// Area возвращает площадь многоугольника в пикселях (формула шнурков).
func (c Contour) Area() float64 {
	if len(c) < 3 {
		return 0
	}

	var sum float64
	for i := range c {
		j := (i + 1) % len(c)
		sum += float64(c[i].X)*float64(c[j].Y) - float64(c[j].X)*float64(c[i].Y)
	}

	return math.Abs(sum) / 2
}

// Perimeter возвращает длину замкнутой границы в пикселях.
func (c Contour) Perimeter() float64 {
	if len(c) < 2 {
		return 0
	}

	var length float64
	for i := range c {
		j := (i + 1) % len(c)
		dx := float64(c[j].X - c[i].X)
		dy := float64(c[j].Y - c[i].Y)
		length += math.Hypot(dx, dy)
	}

	return length
}

// BoundingRect возвращает охватывающий прямоугольник контура.
// Правая и нижняя границы включают крайние пиксели, поэтому
// ширина и высота считаются как max-min+1.
func (c Contour) BoundingRect() image.Rectangle {
	if len(c) == 0 {
		return image.Rectangle{}
	}

	minX, minY := c[0].X, c[0].Y
	maxX, maxY := c[0].X, c[0].Y
	for _, p := range c[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Centroid возвращает центр масс многоугольника. Для вырожденных
// контуров (нулевая площадь) берётся среднее вершин.
func (c Contour) Centroid() image.Point {
	if len(c) == 0 {
		return image.Point{}
	}

	var cross, cx, cy float64
	for i := range c {
		j := (i + 1) % len(c)
		xi, yi := float64(c[i].X), float64(c[i].Y)
		xj, yj := float64(c[j].X), float64(c[j].Y)
		d := xi*yj - xj*yi
		cross += d
		cx += (xi + xj) * d
		cy += (yi + yj) * d
	}

	if math.Abs(cross) < 1e-9 {
		var sx, sy int
		for _, p := range c {
			sx += p.X
			sy += p.Y
		}
		return image.Pt(sx/len(c), sy/len(c))
	}

	area := cross / 2
	return image.Pt(int(math.Round(cx/(6*area))), int(math.Round(cy/(6*area))))
}
