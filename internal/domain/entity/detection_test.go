package entity

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxClamp_InsideBounds(t *testing.T) {
	b := Box{X1: 10, Y1: 10, X2: 50, Y2: 50}
	require.Equal(t, image.Rect(10, 10, 50, 50), b.Clamp(300, 200))
}

func TestBoxClamp_PartiallyOutside(t *testing.T) {
	b := Box{X1: 290, Y1: 190, X2: 310, Y2: 210}
	r := b.Clamp(300, 200)
	require.Equal(t, image.Rect(290, 190, 300, 200), r)
	require.Equal(t, 10, r.Dx())
	require.Equal(t, 10, r.Dy())
}

func TestBoxClamp_FullyOutside(t *testing.T) {
	b := Box{X1: 400, Y1: 400, X2: 410, Y2: 410}
	require.True(t, b.Clamp(300, 200).Empty())
}

func TestBoxClamp_FloorsCoordinates(t *testing.T) {
	b := Box{X1: 10.9, Y1: 10.2, X2: 50.7, Y2: 50.99}
	require.Equal(t, image.Rect(10, 10, 50, 50), b.Clamp(300, 200))
}

func TestBoxClamp_InvertedIsEmpty(t *testing.T) {
	b := Box{X1: 50, Y1: 50, X2: 10, Y2: 10}
	require.True(t, b.Clamp(300, 200).Empty())
}

func TestBoxClamp_NegativeCoordinates(t *testing.T) {
	b := Box{X1: -20, Y1: -10, X2: 30, Y2: 40}
	require.Equal(t, image.Rect(0, 0, 30, 40), b.Clamp(300, 200))
}

func TestNewDetectionResult_Aligned(t *testing.T) {
	boxes := []Box{{X1: 1, Y1: 2, X2: 3, Y2: 4}}
	result, err := NewDetectionResult(boxes, []float64{0.9}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count())
}

func TestNewDetectionResult_ScoreMismatch(t *testing.T) {
	boxes := []Box{{X1: 1, Y1: 2, X2: 3, Y2: 4}}
	result, err := NewDetectionResult(boxes, []float64{0.9, 0.8}, nil)
	require.Nil(t, result)

	var alignErr *AlignmentError
	require.ErrorAs(t, err, &alignErr)
	require.Equal(t, 1, alignErr.Boxes)
	require.Equal(t, 2, alignErr.Scores)
	require.Equal(t, -1, alignErr.Labels)
}

func TestNewDetectionResult_LabelMismatch(t *testing.T) {
	boxes := []Box{{X1: 1, Y1: 2, X2: 3, Y2: 4}}
	_, err := NewDetectionResult(boxes, []float64{0.9}, []int{1, 2})

	var alignErr *AlignmentError
	require.ErrorAs(t, err, &alignErr)
	require.Equal(t, 2, alignErr.Labels)
}

func TestNewDetectionResult_Empty(t *testing.T) {
	result, err := NewDetectionResult(nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, result.Count())
}

func TestDetectionResultCount_Nil(t *testing.T) {
	var result *DetectionResult
	require.Equal(t, 0, result.Count())
}
