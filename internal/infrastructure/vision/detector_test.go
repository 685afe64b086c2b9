//go:build gocv
// +build gocv

package vision

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"defect-scanner/internal/domain/entity"
)

// encodeSyntheticPart рисует белую фигуру на чёрном фоне и кодирует в PNG.
func encodeSyntheticPart(t *testing.T, draw func(mat *gocv.Mat)) []byte {
	t.Helper()

	mat := gocv.NewMatWithSize(400, 600, gocv.MatTypeCV8UC3)
	defer mat.Close()
	draw(&mat)

	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	require.NoError(t, err)
	defer buf.Close()

	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	return data
}

func TestGoCVDetectorThinRectangleIsCrack(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	data := encodeSyntheticPart(t, func(mat *gocv.Mat) {
		gocv.Rectangle(mat, image.Rect(100, 100, 300, 110), white, -1)
	})

	detector := NewGoCVDetector()
	result, err := detector.Detect(context.Background(), data, entity.DefaultDetectionConfig())
	require.NoError(t, err)

	require.NotEmpty(t, result.Defects)
	require.Equal(t, entity.DefectCrack, result.Defects[0].Type)
	require.Equal(t, entity.StatusFail, result.Status)
	require.NotEmpty(t, result.Annotated)
	require.Equal(t, 600, result.ImageWidth)
	require.Equal(t, 400, result.ImageHeight)
}

func TestGoCVDetectorBlankImagePasses(t *testing.T) {
	data := encodeSyntheticPart(t, func(*gocv.Mat) {})

	detector := NewGoCVDetector()
	result, err := detector.Detect(context.Background(), data, entity.DefaultDetectionConfig())
	require.NoError(t, err)

	require.Empty(t, result.Defects)
	require.Equal(t, entity.StatusPass, result.Status)
	require.Zero(t, result.TotalAreaMm2)
}

func TestGoCVDetectorInvalidInput(t *testing.T) {
	detector := NewGoCVDetector()

	_, err := detector.Detect(context.Background(), nil, entity.DefaultDetectionConfig())
	require.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = detector.Detect(context.Background(), []byte("not an image"), entity.DefaultDetectionConfig())
	require.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestGoCVDetectorInvalidConfig(t *testing.T) {
	data := encodeSyntheticPart(t, func(*gocv.Mat) {})
	cfg := entity.DefaultDetectionConfig()
	cfg.PixelToMmScale = 0

	detector := NewGoCVDetector()
	_, err := detector.Detect(context.Background(), data, cfg)
	require.ErrorIs(t, err, entity.ErrInvalidConfig)
}
