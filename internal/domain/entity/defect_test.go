package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefectTypeSeverity(t *testing.T) {
	require.Equal(t, SeverityCritical, DefectCrack.Severity())
	require.Equal(t, SeverityCritical, DefectLargeDefect.Severity())
	require.Equal(t, SeverityMajor, DefectHole.Severity())
	require.Equal(t, SeverityMajor, DefectIrregularShape.Severity())
	require.Equal(t, SeverityMajor, DefectMisalignment.Severity())
	require.Equal(t, SeverityMinor, DefectSmallDefect.Severity())
}

func TestDefectTypeColorsDistinct(t *testing.T) {
	types := []DefectType{
		DefectCrack, DefectHole, DefectMisalignment,
		DefectIrregularShape, DefectLargeDefect, DefectSmallDefect,
	}

	seen := map[[4]uint8]DefectType{}
	for _, dt := range types {
		c := dt.Color()
		key := [4]uint8{c.R, c.G, c.B, c.A}
		require.NotContains(t, seen, key, "color of %s duplicates %s", dt, seen[key])
		seen[key] = dt
	}
}

func TestCountByType(t *testing.T) {
	result := &DetectionResult{
		Defects: []DefectRecord{
			{ID: 1, Type: DefectCrack},
			{ID: 2, Type: DefectHole},
			{ID: 3, Type: DefectCrack},
		},
	}

	counts := result.CountByType()
	require.Equal(t, 2, counts[DefectCrack])
	require.Equal(t, 1, counts[DefectHole])
	require.True(t, result.HasDefects())
}
