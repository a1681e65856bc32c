package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/internal/domain"
)

func TestGrowthPeaks_Empty(t *testing.T) {
	result := GrowthPeaks(nil)

	assert.Nil(t, result.Top)
	assert.NotNil(t, result.Series)
	assert.Empty(t, result.Series)
}

func TestGrowthPeaks_FollowerHistory(t *testing.T) {
	points := []domain.FollowerPoint{
		{Month: "Jan", Followers: 12000},
		{Month: "Fev", Followers: 13800},
		{Month: "Mar", Followers: 15100},
		{Month: "Abr", Followers: 17600},
		{Month: "Mai", Followers: 20250},
		{Month: "Jun", Followers: 22100},
	}

	result := GrowthPeaks(points)

	require.Len(t, result.Series, len(points))
	for i, point := range result.Series {
		assert.Equal(t, points[i].Month, point.Month)
	}

	assert.Equal(t, int64(0), result.Series[0].Delta)
	assert.Equal(t, 0.0, result.Series[0].Pct)
	assert.Equal(t, int64(1800), result.Series[1].Delta)
	assert.InDelta(t, 15.0, result.Series[1].Pct, 1e-9)

	require.NotNil(t, result.Top)
	assert.Equal(t, "Mai", result.Top.Month)
	assert.Equal(t, int64(2650), result.Top.Delta)
}

func TestGrowthPeaks_IncreasingSeriesTopIsLast(t *testing.T) {
	points := make([]domain.FollowerPoint, 0, 10)
	var followers int64 = 1000
	for i := 0; i < 10; i++ {
		followers += int64(i * 100)
		points = append(points, domain.FollowerPoint{Month: string(rune('A' + i)), Followers: followers})
	}

	result := GrowthPeaks(points)

	require.Len(t, result.Series, 10)
	require.NotNil(t, result.Top)
	assert.Equal(t, points[9].Month, result.Top.Month)
	assert.Equal(t, int64(900), result.Top.Delta)
}

func TestGrowthPeaks_TieKeepsFirstOccurrence(t *testing.T) {
	points := []domain.FollowerPoint{
		{Month: "Jan", Followers: 100},
		{Month: "Fev", Followers: 200},
		{Month: "Mar", Followers: 150},
		{Month: "Abr", Followers: 250},
	}

	result := GrowthPeaks(points)

	require.NotNil(t, result.Top)
	assert.Equal(t, "Fev", result.Top.Month)
	assert.Equal(t, int64(-50), result.Series[2].Delta)
}

func TestGrowthPeaks_AllDecreasingPicksZeroDeltaFirstPoint(t *testing.T) {
	points := []domain.FollowerPoint{
		{Month: "Jan", Followers: 500},
		{Month: "Fev", Followers: 400},
	}

	result := GrowthPeaks(points)

	require.NotNil(t, result.Top)
	assert.Equal(t, "Jan", result.Top.Month)
}

func TestGrowthPeaks_ZeroPreviousHasZeroPct(t *testing.T) {
	points := []domain.FollowerPoint{
		{Month: "Jan", Followers: 0},
		{Month: "Fev", Followers: 300},
	}

	result := GrowthPeaks(points)

	assert.Equal(t, int64(300), result.Series[1].Delta)
	assert.Equal(t, 0.0, result.Series[1].Pct)
}

func TestGrowthPeaks_TopIsDetachedFromSeries(t *testing.T) {
	points := []domain.FollowerPoint{{Month: "Jan", Followers: 1}, {Month: "Fev", Followers: 5}}

	result := GrowthPeaks(points)
	result.Top.Delta = 999

	assert.Equal(t, int64(4), result.Series[1].Delta)
	assert.Equal(t, GrowthPeaks(points), GrowthPeaks(points))
}
