// controllers/stats_controller.go
package controllers

import (
	"net/http"

	"github.com/Ernan-ai/CaloCount/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Svc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Svc: svc}
}

// GetStatistics serves the statistics screen: a per-day series, the
// meal-type distribution and the period totals with goal progress.
// ?range=week|month|custom with from/to for custom windows.
func (h *StatsController) GetStatistics(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, err := h.Svc.ResolveRange(c.Query("range"), c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var goal float64
	if user, err := services.FindUserByID(userID); err == nil {
		goal = user.DailyCalorieGoal
	}

	out, err := h.Svc.Statistics(userID, from, to, goal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
