// controllers/catalog_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/Ernan-ai/CaloCount/services"

	"github.com/gin-gonic/gin"
)

const maxRandomMeals = 50

type CatalogController struct {
	Svc *services.MealDBService
}

func NewCatalogController(svc *services.MealDBService) *CatalogController {
	return &CatalogController{Svc: svc}
}

func (h *CatalogController) Search(c *gin.Context) {
	meals, err := h.Svc.SearchMeals(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *CatalogController) GetMeal(c *gin.Context) {
	meal, err := h.Svc.GetMealByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if meal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *CatalogController) Categories(c *gin.Context) {
	categories, err := h.Svc.GetCategories()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogController) MealsByCategory(c *gin.Context) {
	meals, err := h.Svc.GetMealsByCategory(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *CatalogController) Random(c *gin.Context) {
	count := 20
	if v := c.Query("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
		count = n
	}
	if count > maxRandomMeals {
		count = maxRandomMeals
	}

	meals, err := h.Svc.GetRandomMeals(count)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}
