// services/nutrition_engine.go
//
// Pure calorie aggregation over already-fetched ConsumedMeal records.
// Nothing here touches the database or the clock; callers pass in the
// records and the date window and get plain values back.
package services

import (
	"fmt"
	"math"
	"time"

	"github.com/Ernan-ai/CaloCount/models"
)

const dateLayout = "2006-01-02"

// DailyBucket is one calendar day's calories split by meal slot.
type DailyBucket struct {
	Date      string  `json:"date"`
	Breakfast float64 `json:"breakfast"`
	Lunch     float64 `json:"lunch"`
	Dinner    float64 `json:"dinner"`
	Total     float64 `json:"total"`
}

// MealTypeShare is one slot's summed calories over a whole window.
type MealTypeShare struct {
	Type     models.MealType `json:"type"`
	Calories float64         `json:"calories"`
}

type GoalProgress struct {
	Target     float64 `json:"target"`
	Actual     int     `json:"actual"`
	Percentage int     `json:"percentage"`
}

type PeriodStatistics struct {
	TotalCalories float64       `json:"total_calories"`
	ActiveDays    int           `json:"active_days"`
	AverageDaily  int           `json:"average_daily"`
	GoalProgress  *GoalProgress `json:"goal_progress,omitempty"`
}

type GoalDelta struct {
	Exceeded bool    `json:"exceeded"`
	Amount   float64 `json:"amount"`
}

// DailyTotal sums calories over records logged on the given day.
func DailyTotal(records []models.ConsumedMeal, date string) float64 {
	var total float64
	for _, r := range records {
		if r.Date == date {
			total += r.Calories
		}
	}
	return total
}

// MealTypeTotal sums calories over records matching both day and slot.
func MealTypeTotal(records []models.ConsumedMeal, date string, t models.MealType) float64 {
	var total float64
	for _, r := range records {
		if r.Date == date && r.MealType == t {
			total += r.Calories
		}
	}
	return total
}

// BuildDailyBucket totals one day across the three slots.
func BuildDailyBucket(records []models.ConsumedMeal, date string) DailyBucket {
	b := DailyBucket{
		Date:      date,
		Breakfast: MealTypeTotal(records, date, models.Breakfast),
		Lunch:     MealTypeTotal(records, date, models.Lunch),
		Dinner:    MealTypeTotal(records, date, models.Dinner),
	}
	b.Total = b.Breakfast + b.Lunch + b.Dinner
	return b
}

// BuildDailySeries produces one bucket per calendar day from startDate to
// endDate inclusive, ascending. Days without records yield all-zero buckets;
// no day in the window is ever skipped. The series is empty when startDate
// is after endDate.
func BuildDailySeries(records []models.ConsumedMeal, startDate, endDate string) ([]DailyBucket, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	series := []DailyBucket{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		series = append(series, BuildDailyBucket(records, d.Format(dateLayout)))
	}
	return series, nil
}

// BuildDistribution sums calories per slot over all given records regardless
// of day. Slots with nothing logged are left out; the rest keep the
// breakfast, lunch, dinner order.
func BuildDistribution(records []models.ConsumedMeal) []MealTypeShare {
	totals := map[models.MealType]float64{}
	for _, r := range records {
		totals[r.MealType] += r.Calories
	}

	out := make([]MealTypeShare, 0, len(totals))
	for _, t := range models.MealTypes() {
		if totals[t] > 0 {
			out = append(out, MealTypeShare{Type: t, Calories: totals[t]})
		}
	}
	return out
}

// ComputePeriodStatistics totals a window of records. The average is per
// active day (a day with at least one record), rounded to the nearest
// integer. GoalProgress is present only when a positive goal is set and at
// least one day has records; its percentage may exceed 100.
func ComputePeriodStatistics(records []models.ConsumedMeal, dailyGoal float64) PeriodStatistics {
	var total float64
	days := map[string]struct{}{}
	for _, r := range records {
		total += r.Calories
		days[r.Date] = struct{}{}
	}

	stats := PeriodStatistics{TotalCalories: total, ActiveDays: len(days)}
	if stats.ActiveDays > 0 {
		stats.AverageDaily = int(math.Round(total / float64(stats.ActiveDays)))
	}
	if dailyGoal > 0 && stats.ActiveDays > 0 {
		stats.GoalProgress = &GoalProgress{
			Target:     dailyGoal,
			Actual:     stats.AverageDaily,
			Percentage: int(math.Round(float64(stats.AverageDaily) / dailyGoal * 100)),
		}
	}
	return stats
}

// ComputeGoalDelta reports how far currentTotal sits from goal. Amount is
// always the absolute remainder, Exceeded says on which side.
func ComputeGoalDelta(currentTotal, goal float64) GoalDelta {
	if currentTotal > goal {
		return GoalDelta{Exceeded: true, Amount: currentTotal - goal}
	}
	return GoalDelta{Amount: goal - currentTotal}
}
