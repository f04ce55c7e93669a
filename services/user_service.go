package services

import (
	"errors"
	"fmt"

	"github.com/Ernan-ai/CaloCount/config"
	"github.com/Ernan-ai/CaloCount/models"
	"github.com/Ernan-ai/CaloCount/utils"
)

type ProfileInput struct {
	DisplayName      string  `json:"display_name"`
	Height           float64 `json:"height"`
	Weight           float64 `json:"weight"`
	Age              int     `json:"age"`
	Gender           string  `json:"gender"`
	TargetWeight     float64 `json:"target_weight"`
	DailyCalorieGoal float64 `json:"daily_calorie_goal"`
	ProfilePicture   string  `json:"profile_picture"` // base64 data URL
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":                 user.ID,
		"email":              user.Email,
		"display_name":       user.DisplayName,
		"height":             user.Height,
		"weight":             user.Weight,
		"age":                user.Age,
		"gender":             user.Gender,
		"target_weight":      user.TargetWeight,
		"daily_calorie_goal": user.DailyCalorieGoal,
		"profile_picture":    user.ProfilePicture,
	}, nil
}

// UpdateUserProfile applies a partial update; zero/empty fields are skipped.
func UpdateUserProfile(userID uint, input ProfileInput) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		if input.Gender != "male" && input.Gender != "female" {
			return errors.New("gender must be male or female")
		}
		user.Gender = input.Gender
	}
	if input.TargetWeight > 0 {
		user.TargetWeight = input.TargetWeight
	}
	if input.DailyCalorieGoal > 0 {
		user.DailyCalorieGoal = input.DailyCalorieGoal
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "avatars")
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(user).Error
}

// GetUserInsights derives BMI, recommended intake and the weight goal delta
// from the profile. Each figure is present only when its inputs are set.
func GetUserInsights(userID uint) (map[string]interface{}, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		out["bmi"] = bmi
		out["bmi_category"] = utils.BMICategory(bmi)
	}

	if kcal, err := utils.RecommendedCalories(user.Weight, user.Height, user.Age, user.Gender); err == nil {
		out["recommended_calories"] = kcal
	}

	if user.TargetWeight > 0 && user.Weight > 0 {
		out["weight_goal"] = map[string]interface{}{
			"current": user.Weight,
			"target":  user.TargetWeight,
			"delta":   ComputeGoalDelta(user.Weight, user.TargetWeight),
		}
	}

	return out, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ? AND disabled = ?", email, false)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "id = ? AND disabled = ?", id, false)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
