package models

// CatalogMeal is a recipe from the external meal catalog. Read-only,
// never persisted; referenced from ConsumedMeal by id.
type CatalogMeal struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Area         string           `json:"area"`
	Instructions string           `json:"instructions"`
	Thumbnail    string           `json:"thumbnail"`
	Youtube      string           `json:"youtube,omitempty"`
	Ingredients  []MealIngredient `json:"ingredients"`
}

// MealIngredient pairs one ingredient with its measure, in recipe order.
type MealIngredient struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
}

type MealCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
}
