package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRatingsChart(t *testing.T) {
	chart := NewRatingsChart([]int{2, 0, 1, 0, 3})

	assert.Equal(t, []string{"Terrible", "Poor", "Average", "Very Good", "Excellent"}, chart.Labels)
	assert.Equal(t, 6, chart.Total)
	require.Len(t, chart.Datasets, 1)

	ds := chart.Datasets[0]
	assert.Equal(t, "Ratings Distribution", ds.Label)
	assert.Equal(t, []int{2, 0, 1, 0, 3}, ds.Data)
	assert.True(t, ds.Fill)
	assert.Equal(t, 2, ds.BorderWidth)
	assert.Equal(t, 0.2, ds.LineTension)
	assert.Equal(t, 3, ds.PointRadius)
	assert.Equal(t, "rgba(149, 76, 233, 1)", ds.BorderColor)
	assert.Equal(t, []GradientStop{
		{Offset: 0, Color: "rgba(149, 76, 233, 0.5)"},
		{Offset: 0.65, Color: "rgba(149, 76, 233, 0.25)"},
		{Offset: 1, Color: "rgba(149, 76, 233, 0)"},
	}, ds.Gradient)
}

func TestNewRatingsChart_EmptyAndDoesNotAlias(t *testing.T) {
	empty := NewRatingsChart(nil)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, empty.Datasets[0].Data)
	assert.Zero(t, empty.Total)

	counts := []int{1, 1, 1, 1, 1}
	chart := NewRatingsChart(counts)
	counts[0] = 99
	chart.Labels[0] = "changed"

	assert.Equal(t, 1, chart.Datasets[0].Data[0])
	assert.Equal(t, "Terrible", RatingLabels[0])
}
