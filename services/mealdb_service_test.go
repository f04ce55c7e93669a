package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Ernan-ai/CaloCount/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, handler http.HandlerFunc) *MealDBService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("MEALDB_BASE_URL", srv.URL)
	return NewMealDBService()
}

const arrabiataJSON = `{"meals":[{
	"idMeal":"52771",
	"strMeal":"Spicy Arrabiata Penne",
	"strCategory":"Vegetarian",
	"strArea":"Italian",
	"strInstructions":"Bring a large pot of water to a boil.",
	"strMealThumb":"https://www.themealdb.com/images/media/meals/ustsqw1468250014.jpg",
	"strYoutube":"https://www.youtube.com/watch?v=1IszT_guI08",
	"strIngredient1":"penne rigate",
	"strIngredient2":"olive oil",
	"strIngredient3":"",
	"strIngredient4":"chilli flakes",
	"strIngredient5":null,
	"strMeasure1":"1 pound",
	"strMeasure2":"1/4 cup",
	"strMeasure4":"1 tsp"
}]}`

func TestSearchMeals(t *testing.T) {
	svc := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.php", r.URL.Path)
		assert.Equal(t, "Arrabiata", r.URL.Query().Get("s"))
		fmt.Fprint(w, arrabiataJSON)
	})

	meals, err := svc.SearchMeals("Arrabiata")
	require.NoError(t, err)
	require.Len(t, meals, 1)

	m := meals[0]
	assert.Equal(t, "52771", m.ID)
	assert.Equal(t, "Spicy Arrabiata Penne", m.Name)
	assert.Equal(t, "Vegetarian", m.Category)
	assert.Equal(t, "Italian", m.Area)

	// blank slot 3 and null slot 5 are skipped; order is preserved
	require.Len(t, m.Ingredients, 3)
	assert.Equal(t, models.MealIngredient{Ingredient: "penne rigate", Measure: "1 pound"}, m.Ingredients[0])
	assert.Equal(t, models.MealIngredient{Ingredient: "olive oil", Measure: "1/4 cup"}, m.Ingredients[1])
	assert.Equal(t, models.MealIngredient{Ingredient: "chilli flakes", Measure: "1 tsp"}, m.Ingredients[2])
}

func TestSearchMealsNoResults(t *testing.T) {
	// the catalog answers {"meals":null} rather than an empty array
	svc := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meals":null}`)
	})

	meals, err := svc.SearchMeals("nope")
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestGetMealByID(t *testing.T) {
	svc := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lookup.php", r.URL.Path)
		if r.URL.Query().Get("i") == "52771" {
			fmt.Fprint(w, arrabiataJSON)
			return
		}
		fmt.Fprint(w, `{"meals":null}`)
	})

	meal, err := svc.GetMealByID("52771")
	require.NoError(t, err)
	require.NotNil(t, meal)
	assert.Equal(t, "Spicy Arrabiata Penne", meal.Name)

	missing, err := svc.GetMealByID("99999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetMealsByCategory(t *testing.T) {
	svc := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/filter.php", r.URL.Path)
		assert.Equal(t, "Seafood", r.URL.Query().Get("c"))
		fmt.Fprint(w, `{"meals":[
			{"idMeal":"52772","strMeal":"Teriyaki Salmon","strMealThumb":"t1.jpg"},
			{"idMeal":"52773","strMeal":"Baked Salmon","strMealThumb":"t2.jpg"}
		]}`)
	})

	meals, err := svc.GetMealsByCategory("Seafood")
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "Teriyaki Salmon", meals[0].Name)
	// filter.php omits the detail fields entirely
	assert.Empty(t, meals[0].Category)
	assert.Empty(t, meals[0].Ingredients)
}

func TestGetCategories(t *testing.T) {
	svc := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories.php", r.URL.Path)
		fmt.Fprint(w, `{"categories":[
			{"idCategory":"1","strCategory":"Beef","strCategoryThumb":"beef.png","strCategoryDescription":"Beef is..."},
			{"idCategory":"2","strCategory":"Chicken","strCategoryThumb":"chicken.png","strCategoryDescription":"Chicken is..."}
		]}`)
	})

	cats, err := svc.GetCategories()
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, models.MealCategory{
		ID: "1", Name: "Beef", Thumbnail: "beef.png", Description: "Beef is...",
	}, cats[0])
}

func TestGetRandomMealsDeduplicates(t *testing.T) {
	// three distinct meals served round-robin; fetching more than three must
	// collapse the repeats
	var calls atomic.Int64
	svc := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/random.php", r.URL.Path)
		n := calls.Add(1) % 3
		fmt.Fprintf(w, `{"meals":[{"idMeal":"%d","strMeal":"Meal %d"}]}`, n, n)
	})

	meals, err := svc.GetRandomMeals(9)
	require.NoError(t, err)
	assert.Len(t, meals, 3)

	seen := map[string]bool{}
	for _, m := range meals {
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestGetRandomMealsAllFailed(t *testing.T) {
	svc := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})

	_, err := svc.GetRandomMeals(3)
	assert.Error(t, err)
}

func TestGetJSONUpstreamError(t *testing.T) {
	svc := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := svc.SearchMeals("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestExtractIngredientsTrimsAndSkips(t *testing.T) {
	raw := map[string]string{
		"strIngredient1": "  Chicken ",
		"strMeasure1":    " 200g ",
		"strIngredient2": "   ",
		"strMeasure2":    "1 cup",
		"strIngredient3": "Salt",
	}

	got := ExtractIngredients(raw)
	require.Len(t, got, 2)
	assert.Equal(t, models.MealIngredient{Ingredient: "Chicken", Measure: "200g"}, got[0])
	assert.Equal(t, models.MealIngredient{Ingredient: "Salt", Measure: ""}, got[1])
}
