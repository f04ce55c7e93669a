package models

import "gorm.io/gorm"

// MealType is the fixed daily slot a consumed meal is logged against.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// MealTypes returns every slot in presentation order.
func MealTypes() [3]MealType { return [3]MealType{Breakfast, Lunch, Dinner} }

func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, Dinner:
		return true
	}
	return false
}

// ConsumedMeal is one logged catalog meal on a calendar day.
// Date is a calendar-day identifier (YYYY-MM-DD), never an instant;
// two records belong to the same day exactly when the strings are equal.
type ConsumedMeal struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	MealID   string `gorm:"type:varchar(64)"` // catalog meal id
	MealName string
	MealType MealType `gorm:"type:varchar(16);not null"`
	Calories float64
	Date     string `gorm:"type:varchar(10);index;not null"`
}
