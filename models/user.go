package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"`
	DisplayName string

	// Anthropometrics; zero means "not set".
	Height float64 // cm
	Weight float64 // kg
	Age    int
	Gender string // "male" | "female"

	TargetWeight     float64 // kg
	DailyCalorieGoal float64 // kcal per day

	ProfilePicture string
	Disabled       bool

	ResetToken    string
	ResetTokenExp time.Time
}

// Follow is a directed edge: follower watches followee's activity.
type Follow struct {
	gorm.Model
	FollowerID uint `gorm:"uniqueIndex:idx_follow_edge;not null"`
	FolloweeID uint `gorm:"uniqueIndex:idx_follow_edge;not null"`
}
