package services

import (
	"testing"
	"time"

	"github.com/Ernan-ai/CaloCount/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(date string) func() time.Time {
	t, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestResolveRangeNamed(t *testing.T) {
	svc := NewStatsService(nil, fixedClock("2024-03-15"))

	from, to, err := svc.ResolveRange("week", "", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-08", from)
	assert.Equal(t, "2024-03-15", to)

	// empty name defaults to the weekly window
	from, to, err = svc.ResolveRange("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-08", from)
	assert.Equal(t, "2024-03-15", to)

	from, to, err = svc.ResolveRange("month", "", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-14", from)
	assert.Equal(t, "2024-03-15", to)
}

func TestResolveRangeCustom(t *testing.T) {
	svc := NewStatsService(nil, fixedClock("2024-03-15"))

	from, to, err := svc.ResolveRange("custom", "2024-03-01", "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", from)
	assert.Equal(t, "2024-03-10", to)

	// single-day window is fine
	_, _, err = svc.ResolveRange("custom", "2024-03-10", "2024-03-10")
	assert.NoError(t, err)

	// window ending today is fine
	_, _, err = svc.ResolveRange("custom", "2024-03-10", "2024-03-15")
	assert.NoError(t, err)
}

func TestResolveRangeCustomRejected(t *testing.T) {
	svc := NewStatsService(nil, fixedClock("2024-03-15"))

	cases := []struct {
		name     string
		from, to string
	}{
		{"bad from", "03/01/2024", "2024-03-10"},
		{"bad to", "2024-03-01", "next tuesday"},
		{"inverted", "2024-03-10", "2024-03-01"},
		{"future to", "2024-03-01", "2024-03-16"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := svc.ResolveRange("custom", c.from, c.to)
			assert.Error(t, err)
		})
	}
}

func TestResolveRangeUnknownName(t *testing.T) {
	svc := NewStatsService(nil, fixedClock("2024-03-15"))

	_, _, err := svc.ResolveRange("year", "", "")
	assert.Error(t, err)
}

func TestBuildStatistics(t *testing.T) {
	recs := []models.ConsumedMeal{
		record("2024-01-01", models.Breakfast, 300),
		record("2024-01-01", models.Lunch, 500),
		record("2024-01-02", models.Dinner, 400),
	}

	resp, err := buildStatistics(recs, "2024-01-01", "2024-01-03", 2000)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", resp.Range.From)
	assert.Equal(t, "2024-01-03", resp.Range.To)

	require.Len(t, resp.Series, 3)
	assert.Equal(t, 800.0, resp.Series[0].Total)
	assert.Equal(t, 400.0, resp.Series[1].Total)
	assert.Equal(t, 0.0, resp.Series[2].Total)

	require.Len(t, resp.Distribution, 3)
	assert.Equal(t, models.Breakfast, resp.Distribution[0].Type)

	assert.Equal(t, 1200.0, resp.Statistics.TotalCalories)
	assert.Equal(t, 2, resp.Statistics.ActiveDays)
	assert.Equal(t, 600, resp.Statistics.AverageDaily)
	require.NotNil(t, resp.Statistics.GoalProgress)
	assert.Equal(t, 30, resp.Statistics.GoalProgress.Percentage)
}

func TestBuildStatisticsEmptyWindow(t *testing.T) {
	resp, err := buildStatistics(nil, "2024-01-01", "2024-01-07", 2000)
	require.NoError(t, err)

	assert.Len(t, resp.Series, 7)
	assert.Empty(t, resp.Distribution)
	assert.Equal(t, 0.0, resp.Statistics.TotalCalories)
	assert.Nil(t, resp.Statistics.GoalProgress)
}

func TestBuildStatisticsBadWindow(t *testing.T) {
	_, err := buildStatistics(nil, "garbage", "2024-01-07", 0)
	assert.Error(t, err)
}
