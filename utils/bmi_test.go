package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.Equal(t, 22.9, bmi)

	// exact category boundary
	bmi, err = CalculateBMI(180, 81)
	require.NoError(t, err)
	assert.Equal(t, 25.0, bmi)
	assert.Equal(t, "overweight", BMICategory(bmi))
}

func TestCalculateBMIRejectsNonPositiveInputs(t *testing.T) {
	for _, in := range [][2]float64{{0, 70}, {175, 0}, {-175, 70}, {175, -70}} {
		_, err := CalculateBMI(in[0], in[1])
		assert.Error(t, err)
	}
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{16.0, "underweight"},
		{18.4, "underweight"},
		{18.5, "normal"},
		{24.9, "normal"},
		{25.0, "overweight"},
		{29.9, "overweight"},
		{30.0, "obese"},
		{42.0, "obese"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, BMICategory(c.bmi), "bmi %.1f", c.bmi)
	}
}

func TestRecommendedCalories(t *testing.T) {
	// male: (10*80 + 6.25*180 - 5*30 + 5) * 1.2 = 2136
	got, err := RecommendedCalories(80, 180, 30, "male")
	require.NoError(t, err)
	assert.Equal(t, 2136, got)

	// female constant: (1775 - 161) * 1.2 = 1936.8, rounded up
	got, err = RecommendedCalories(80, 180, 30, "female")
	require.NoError(t, err)
	assert.Equal(t, 1937, got)

	// any non-male gender value falls back to the female constant
	other, err := RecommendedCalories(80, 180, 30, "other")
	require.NoError(t, err)
	assert.Equal(t, 1937, other)
}

func TestRecommendedCaloriesRequiresAllInputs(t *testing.T) {
	_, err := RecommendedCalories(0, 180, 30, "male")
	assert.Error(t, err)
	_, err = RecommendedCalories(80, 0, 30, "male")
	assert.Error(t, err)
	_, err = RecommendedCalories(80, 180, 0, "male")
	assert.Error(t, err)
	_, err = RecommendedCalories(80, 180, 30, "")
	assert.Error(t, err)
}
