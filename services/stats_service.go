// services/stats_service.go
package services

import (
	"errors"
	"time"

	"github.com/Ernan-ai/CaloCount/models"
)

// StatsService fetches a user's records for a window and hands them to the
// aggregation functions. All date arithmetic runs off the injected clock.
type StatsService struct {
	meals *ConsumedMealService
	now   func() time.Time
}

func NewStatsService(meals *ConsumedMealService, now func() time.Time) *StatsService {
	if now == nil {
		now = time.Now
	}
	return &StatsService{meals: meals, now: now}
}

type StatisticsResponse struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`
	Series       []DailyBucket    `json:"series"`
	Distribution []MealTypeShare  `json:"distribution"`
	Statistics   PeriodStatistics `json:"statistics"`
}

// ResolveRange turns a named range into a concrete closed date window.
// "week" is the last 7 days up to today, "month" the last 30; "custom"
// validates the supplied edges.
func (s *StatsService) ResolveRange(name, from, to string) (string, string, error) {
	today := s.now()
	switch name {
	case "", "week":
		return today.AddDate(0, 0, -7).Format(dateLayout), today.Format(dateLayout), nil
	case "month":
		return today.AddDate(0, 0, -30).Format(dateLayout), today.Format(dateLayout), nil
	case "custom":
		if _, err := time.ParseInLocation(dateLayout, from, time.UTC); err != nil {
			return "", "", errors.New("invalid from date")
		}
		if _, err := time.ParseInLocation(dateLayout, to, time.UTC); err != nil {
			return "", "", errors.New("invalid to date")
		}
		if from > to {
			return "", "", errors.New("from must be on/before to")
		}
		if to > today.Format(dateLayout) {
			return "", "", errors.New("to must not be in the future")
		}
		return from, to, nil
	default:
		return "", "", errors.New("range must be week, month or custom")
	}
}

// Statistics runs one range query and builds the full statistics payload.
func (s *StatsService) Statistics(userID uint, from, to string, dailyGoal float64) (*StatisticsResponse, error) {
	recs, err := s.meals.ListByDateRange(userID, from, to)
	if err != nil {
		return nil, err
	}
	return buildStatistics(recs, from, to, dailyGoal)
}

// buildStatistics assembles the payload from already-fetched records.
func buildStatistics(records []models.ConsumedMeal, from, to string, dailyGoal float64) (*StatisticsResponse, error) {
	series, err := BuildDailySeries(records, from, to)
	if err != nil {
		return nil, err
	}

	out := &StatisticsResponse{
		Series:       series,
		Distribution: BuildDistribution(records),
		Statistics:   ComputePeriodStatistics(records, dailyGoal),
	}
	out.Range.From = from
	out.Range.To = to
	return out, nil
}
