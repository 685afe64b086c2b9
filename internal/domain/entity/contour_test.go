package entity

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// rectContour строит прямоугольный контур с углом в (x, y).
func rectContour(x, y, w, h int) Contour {
	return Contour{
		image.Pt(x, y),
		image.Pt(x+w, y),
		image.Pt(x+w, y+h),
		image.Pt(x, y+h),
	}
}

// circleContour строит правильный многоугольник, приближающий круг.
func circleContour(cx, cy float64, r float64, n int) Contour {
	c := make(Contour, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		c = append(c, image.Pt(
			int(math.Round(cx+r*math.Cos(a))),
			int(math.Round(cy+r*math.Sin(a))),
		))
	}
	return c
}

func TestContourAreaAndPerimeter(t *testing.T) {
	c := rectContour(10, 20, 200, 10)

	require.InDelta(t, 2000.0, c.Area(), 1e-9)
	require.InDelta(t, 420.0, c.Perimeter(), 1e-9)
}

func TestContourDegenerate(t *testing.T) {
	require.Zero(t, Contour{}.Area())
	require.Zero(t, Contour{}.Perimeter())

	// Две точки: площади нет, периметр — туда и обратно.
	line := Contour{image.Pt(0, 0), image.Pt(3, 4)}
	require.Zero(t, line.Area())
	require.InDelta(t, 10.0, line.Perimeter(), 1e-9)
}

func TestContourBoundingRect(t *testing.T) {
	c := rectContour(5, 7, 30, 10)
	r := c.BoundingRect()

	require.Equal(t, 5, r.Min.X)
	require.Equal(t, 7, r.Min.Y)
	require.Equal(t, 31, r.Dx())
	require.Equal(t, 11, r.Dy())

	require.Equal(t, image.Rectangle{}, Contour{}.BoundingRect())
}

func TestContourCentroid(t *testing.T) {
	c := rectContour(0, 0, 10, 10)
	require.Equal(t, image.Pt(5, 5), c.Centroid())

	// Вырожденный контур: среднее вершин.
	line := Contour{image.Pt(0, 0), image.Pt(4, 0)}
	require.Equal(t, image.Pt(2, 0), line.Centroid())
}

func TestCircleContourGeometry(t *testing.T) {
	c := circleContour(100, 100, 50, 128)

	// Вписанный многоугольник с округлением вершин до целых пикселей:
	// допускаем небольшое отклонение от идеального круга.
	require.InDelta(t, math.Pi*50*50, c.Area(), math.Pi*50*50*0.02)
	require.InDelta(t, 2*math.Pi*50, c.Perimeter(), 2*math.Pi*50*0.03)
	require.Equal(t, image.Pt(100, 100), c.Centroid())
}
