package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Ernan-ai/CaloCount/models"
)

// MealDBService is the read-only client for the public TheMealDB catalog.
type MealDBService struct {
	baseURL string
	client  *http.Client
}

func NewMealDBService() *MealDBService {
	base := os.Getenv("MEALDB_BASE_URL")
	if base == "" {
		base = "https://www.themealdb.com/api/json/v1/1"
	}
	return &MealDBService{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// The catalog returns every meal field as a string or null; decoding into
// map[string]string turns nulls into empty strings, which is what the
// ingredient extraction expects.
type mealListResponse struct {
	Meals []map[string]string `json:"meals"`
}

func (s *MealDBService) getJSON(path string, out any) error {
	resp, err := s.client.Get(s.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to call meal catalog: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read catalog response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("meal catalog API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return nil
}

// SearchMeals queries the catalog by meal name.
func (s *MealDBService) SearchMeals(query string) ([]models.CatalogMeal, error) {
	var lr mealListResponse
	if err := s.getJSON("/search.php?s="+url.QueryEscape(query), &lr); err != nil {
		return nil, err
	}
	return buildCatalogMeals(lr.Meals), nil
}

// GetMealByID looks up a single meal; (nil, nil) when the id is unknown.
func (s *MealDBService) GetMealByID(id string) (*models.CatalogMeal, error) {
	var lr mealListResponse
	if err := s.getJSON("/lookup.php?i="+url.QueryEscape(id), &lr); err != nil {
		return nil, err
	}
	meals := buildCatalogMeals(lr.Meals)
	if len(meals) == 0 {
		return nil, nil
	}
	return &meals[0], nil
}

// GetMealsByCategory lists the meals filed under a category name.
func (s *MealDBService) GetMealsByCategory(category string) ([]models.CatalogMeal, error) {
	var lr mealListResponse
	if err := s.getJSON("/filter.php?c="+url.QueryEscape(category), &lr); err != nil {
		return nil, err
	}
	return buildCatalogMeals(lr.Meals), nil
}

type categoryListResponse struct {
	Categories []struct {
		ID          string `json:"idCategory"`
		Name        string `json:"strCategory"`
		Thumbnail   string `json:"strCategoryThumb"`
		Description string `json:"strCategoryDescription"`
	} `json:"categories"`
}

func (s *MealDBService) GetCategories() ([]models.MealCategory, error) {
	var cr categoryListResponse
	if err := s.getJSON("/categories.php", &cr); err != nil {
		return nil, err
	}

	out := make([]models.MealCategory, 0, len(cr.Categories))
	for _, c := range cr.Categories {
		out = append(out, models.MealCategory{
			ID:          c.ID,
			Name:        c.Name,
			Thumbnail:   c.Thumbnail,
			Description: c.Description,
		})
	}
	return out, nil
}

// GetRandomMeals samples the random endpoint count times concurrently and
// combines the results after every fetch has resolved. The endpoint can
// repeat itself, so duplicates are collapsed by id and the result may be
// shorter than count. An error surfaces only when no fetch succeeded.
func (s *MealDBService) GetRandomMeals(count int) ([]models.CatalogMeal, error) {
	if count <= 0 {
		count = 20
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		meals    []models.CatalogMeal
		seen     = map[string]struct{}{}
		firstErr error
	)

	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var lr mealListResponse
			if err := s.getJSON("/random.php", &lr); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			mu.Lock()
			for _, m := range buildCatalogMeals(lr.Meals) {
				if _, dup := seen[m.ID]; !dup && m.ID != "" {
					seen[m.ID] = struct{}{}
					meals = append(meals, m)
				}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(meals) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return meals, nil
}

func buildCatalogMeals(raw []map[string]string) []models.CatalogMeal {
	out := make([]models.CatalogMeal, 0, len(raw))
	for _, m := range raw {
		out = append(out, models.CatalogMeal{
			ID:           m["idMeal"],
			Name:         m["strMeal"],
			Category:     m["strCategory"],
			Area:         m["strArea"],
			Instructions: m["strInstructions"],
			Thumbnail:    m["strMealThumb"],
			Youtube:      m["strYoutube"],
			Ingredients:  ExtractIngredients(m),
		})
	}
	return out
}

// ExtractIngredients flattens the catalog's numbered strIngredientN /
// strMeasureN fields into an ordered list of pairs, skipping blank slots.
func ExtractIngredients(raw map[string]string) []models.MealIngredient {
	var out []models.MealIngredient
	for i := 1; i <= 20; i++ {
		ing := strings.TrimSpace(raw["strIngredient"+strconv.Itoa(i)])
		if ing == "" {
			continue
		}
		out = append(out, models.MealIngredient{
			Ingredient: ing,
			Measure:    strings.TrimSpace(raw["strMeasure"+strconv.Itoa(i)]),
		})
	}
	return out
}
