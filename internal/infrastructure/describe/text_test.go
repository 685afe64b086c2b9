package describe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"defect-scanner/internal/domain/entity"
)

func TestDescribeCleanPart(t *testing.T) {
	d := NewTextDescriber()

	text, err := d.Describe(context.Background(), &entity.DetectionResult{Status: entity.StatusPass})
	require.NoError(t, err)
	require.Equal(t, "No defects found. Status: PASS", text)
}

func TestDescribeDefects(t *testing.T) {
	d := NewTextDescriber()
	result := &entity.DetectionResult{
		Defects: []entity.DefectRecord{
			{ID: 1, Type: entity.DefectCrack, AreaMm2: 20},
			{ID: 2, Type: entity.DefectCrack, AreaMm2: 8},
			{ID: 3, Type: entity.DefectHole, AreaMm2: 28.2},
		},
		TotalAreaMm2: 56.2,
		Status:       entity.StatusFail,
	}

	text, err := d.Describe(context.Background(), result)
	require.NoError(t, err)
	require.Contains(t, text, "Found 3 defect(s), total area 56.20 mm2. Status: FAIL")
	require.Contains(t, text, "- Crack: 2")
	require.Contains(t, text, "- Hole: 1")
}

func TestDescribeNilResult(t *testing.T) {
	d := NewTextDescriber()

	_, err := d.Describe(context.Background(), nil)
	require.Error(t, err)
}
