package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealTypeValid(t *testing.T) {
	for _, mt := range MealTypes() {
		assert.True(t, mt.Valid(), string(mt))
	}

	assert.False(t, MealType("").Valid())
	assert.False(t, MealType("snack").Valid())
	assert.False(t, MealType("Breakfast").Valid(), "slot names are case sensitive")
}

func TestMealTypesOrder(t *testing.T) {
	assert.Equal(t, [3]MealType{Breakfast, Lunch, Dinner}, MealTypes())
}
