package utils

import (
	"errors"
	"math"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
// The result is rounded to one decimal place.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25.0:
		return "normal"
	case bmi < 30.0:
		return "overweight"
	default:
		return "obese"
	}
}

// sedentary activity factor applied on top of the basal rate
const sedentaryFactor = 1.2

// RecommendedCalories estimates a daily intake target from the Mifflin-St
// Jeor basal metabolic rate at a sedentary activity level, rounded to the
// nearest kcal. Any gender other than "male" uses the female constant.
func RecommendedCalories(weightKg, heightCm float64, ageYears int, gender string) (int, error) {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 || gender == "" {
		return 0, errors.New("weight, height, age and gender are required")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr * sedentaryFactor)), nil
}
