// controllers/consumed_meal_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Ernan-ai/CaloCount/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ConsumedMealController struct {
	Svc *services.ConsumedMealService
	Hub *services.RealtimeHub
}

func NewConsumedMealController(svc *services.ConsumedMealService, hub *services.RealtimeHub) *ConsumedMealController {
	return &ConsumedMealController{Svc: svc, Hub: hub}
}

func (h *ConsumedMealController) Log(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.ConsumedMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.Svc.Add(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.pushDaySummary(userID, rec.Date)
	c.JSON(http.StatusCreated, rec)
}

// List serves exact-date, inclusive-range and full-history queries.
func (h *ConsumedMealController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date := c.Query("date")
	from, to := c.Query("from"), c.Query("to")

	switch {
	case date != "":
		recs, err := h.Svc.ListByDate(userID, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recs)
	case from != "" && to != "":
		recs, err := h.Svc.ListByDateRange(userID, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recs)
	default:
		recs, err := h.Svc.List(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recs)
	}
}

func (h *ConsumedMealController) Today(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var goal float64
	if user, err := services.FindUserByID(userID); err == nil {
		goal = user.DailyCalorieGoal
	}

	summary, err := h.Svc.Today(userID, goal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ConsumedMealController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := recordIDParam(c)
	if !ok {
		return
	}

	rec, err := h.Svc.Get(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ConsumedMealController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := recordIDParam(c)
	if !ok {
		return
	}

	var input services.ConsumedMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.Svc.Update(userID, id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.pushDaySummary(userID, rec.Date)
	c.JSON(http.StatusOK, rec)
}

func (h *ConsumedMealController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := recordIDParam(c)
	if !ok {
		return
	}

	date, err := h.Svc.Delete(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.pushDaySummary(userID, date)
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

// pushDaySummary refreshes the realtime feed for the day that changed.
func (h *ConsumedMealController) pushDaySummary(userID uint, date string) {
	if h.Hub == nil {
		return
	}
	bucket, err := h.Svc.DaySummary(userID, date)
	if err != nil {
		return
	}
	h.Hub.BroadcastDaySummary(userID, *bucket)
}

func recordIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return 0, false
	}
	return uint(id), true
}
