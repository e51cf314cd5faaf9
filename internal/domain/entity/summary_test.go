package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize_TwoBoxes(t *testing.T) {
	boxes := []Box{
		{X1: 10, Y1: 10, X2: 50, Y2: 50},
		{X1: 290, Y1: 190, X2: 310, Y2: 210},
	}
	result, err := NewDetectionResult(boxes, []float64{0.91, 0.40}, nil)
	require.NoError(t, err)

	s := Summarize(result)
	require.Equal(t, 2, s.Count)
	require.InDelta(t, 0.655, s.AvgConfidence, 1e-9)
	require.Equal(t, 0.91, s.MaxConfidence)
	require.Equal(t, 0.40, s.MinConfidence)
}

func TestSummarize_Empty(t *testing.T) {
	result, err := NewDetectionResult(nil, nil, nil)
	require.NoError(t, err)

	s := Summarize(result)
	require.Equal(t, Summary{}, s)
}

func TestSummarize_Nil(t *testing.T) {
	require.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize_SingleScore(t *testing.T) {
	boxes := []Box{{X1: 0, Y1: 0, X2: 5, Y2: 5}}
	result, err := NewDetectionResult(boxes, []float64{0.5}, nil)
	require.NoError(t, err)

	s := Summarize(result)
	require.Equal(t, 1, s.Count)
	require.Equal(t, 0.5, s.AvgConfidence)
	require.Equal(t, 0.5, s.MaxConfidence)
	require.Equal(t, 0.5, s.MinConfidence)
}
