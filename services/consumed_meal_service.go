// services/consumed_meal_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ernan-ai/CaloCount/config"
	"github.com/Ernan-ai/CaloCount/models"
)

// ConsumedMealService owns the logged-meal records. The clock is injected so
// "today" is decided in exactly one place and tests can pin it.
type ConsumedMealService struct {
	catalog *MealDBService
	now     func() time.Time
}

func NewConsumedMealService(catalog *MealDBService, now func() time.Time) *ConsumedMealService {
	if now == nil {
		now = time.Now
	}
	return &ConsumedMealService{catalog: catalog, now: now}
}

type ConsumedMealInput struct {
	MealID   string          `json:"meal_id"`
	MealName string          `json:"meal_name"`
	MealType models.MealType `json:"meal_type"`
	Calories float64         `json:"calories"`
	Date     string          `json:"date"` // YYYY-MM-DD
}

func (s *ConsumedMealService) validate(in ConsumedMealInput) error {
	if !in.MealType.Valid() {
		return errors.New("meal_type must be one of breakfast, lunch, dinner")
	}
	if in.Calories < 0 {
		return errors.New("calories must not be negative")
	}
	if _, err := time.ParseInLocation(dateLayout, in.Date, time.UTC); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	// ISO dates compare correctly as strings
	if in.Date > s.now().Format(dateLayout) {
		return errors.New("date must not be in the future")
	}
	return nil
}

// lookupName resolves a display name from the catalog when the client did
// not send one. Falls back to the raw id.
func (s *ConsumedMealService) lookupName(mealID string) string {
	if s.catalog == nil || mealID == "" {
		return mealID
	}
	meal, err := s.catalog.GetMealByID(mealID)
	if err != nil || meal == nil {
		return mealID
	}
	return meal.Name
}

func (s *ConsumedMealService) Add(userID uint, in ConsumedMealInput) (*models.ConsumedMeal, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	name := in.MealName
	if name == "" {
		name = s.lookupName(in.MealID)
	}

	rec := &models.ConsumedMeal{
		UserID:   userID,
		MealID:   in.MealID,
		MealName: name,
		MealType: in.MealType,
		Calories: in.Calories,
		Date:     in.Date,
	}
	if err := config.DB.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *ConsumedMealService) List(userID uint) ([]models.ConsumedMeal, error) {
	var recs []models.ConsumedMeal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&recs).Error
	return recs, err
}

func (s *ConsumedMealService) ListByDate(userID uint, date string) ([]models.ConsumedMeal, error) {
	var recs []models.ConsumedMeal
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&recs).Error
	return recs, err
}

func (s *ConsumedMealService) ListByDateRange(userID uint, from, to string) ([]models.ConsumedMeal, error) {
	var recs []models.ConsumedMeal
	err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date DESC, created_at DESC").
		Find(&recs).Error
	return recs, err
}

func (s *ConsumedMealService) Get(userID, id uint) (*models.ConsumedMeal, error) {
	var rec models.ConsumedMeal
	err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &rec, nil
}

// Update is full replacement of the editable fields.
func (s *ConsumedMealService) Update(userID, id uint, in ConsumedMealInput) (*models.ConsumedMeal, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	var rec models.ConsumedMeal
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error; err != nil {
		return nil, err
	}

	name := in.MealName
	if name == "" {
		name = s.lookupName(in.MealID)
	}

	rec.MealID = in.MealID
	rec.MealName = name
	rec.MealType = in.MealType
	rec.Calories = in.Calories
	rec.Date = in.Date
	if err := config.DB.Save(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes one record and returns the day it was logged on, so the
// caller can refresh that day's summary.
func (s *ConsumedMealService) Delete(userID, id uint) (string, error) {
	var rec models.ConsumedMeal
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error; err != nil {
		return "", err
	}
	if err := config.DB.Delete(&rec).Error; err != nil {
		return "", err
	}
	return rec.Date, nil
}

// TodaySummary bundles one day's records with their aggregate figures.
type TodaySummary struct {
	Date      string                `json:"date"`
	Meals     []models.ConsumedMeal `json:"meals"`
	Total     float64               `json:"total"`
	ByType    []MealTypeShare       `json:"by_type"`
	GoalDelta *GoalDelta            `json:"goal_delta,omitempty"`
}

// Today assembles the current day's log. GoalDelta is present only when the
// user has a positive daily calorie goal.
func (s *ConsumedMealService) Today(userID uint, dailyGoal float64) (*TodaySummary, error) {
	today := s.now().Format(dateLayout)
	recs, err := s.ListByDate(userID, today)
	if err != nil {
		return nil, err
	}

	sum := &TodaySummary{
		Date:   today,
		Meals:  recs,
		Total:  DailyTotal(recs, today),
		ByType: BuildDistribution(recs),
	}
	if dailyGoal > 0 {
		gd := ComputeGoalDelta(sum.Total, dailyGoal)
		sum.GoalDelta = &gd
	}
	return sum, nil
}

// DaySummary recomputes one day's bucket, used by the realtime feed after a
// log change.
func (s *ConsumedMealService) DaySummary(userID uint, date string) (*DailyBucket, error) {
	recs, err := s.ListByDate(userID, date)
	if err != nil {
		return nil, err
	}
	b := BuildDailyBucket(recs, date)
	return &b, nil
}
