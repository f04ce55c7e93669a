package routes

import (
	"time"

	"github.com/Ernan-ai/CaloCount/controllers"
	"github.com/Ernan-ai/CaloCount/middlewares"
	"github.com/Ernan-ai/CaloCount/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	catalogSvc := services.NewMealDBService()
	mealSvc := services.NewConsumedMealService(catalogSvc, time.Now)
	statsSvc := services.NewStatsService(mealSvc, time.Now)
	hub := services.NewRealtimeHub()

	catalogCtl := controllers.NewCatalogController(catalogSvc)
	mealCtl := controllers.NewConsumedMealController(mealSvc, hub)
	statsCtl := controllers.NewStatsController(statsSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Read-only catalog, no auth required
	catalog := r.Group("/catalog")
	{
		catalog.GET("/search", catalogCtl.Search)
		catalog.GET("/meals/:id", catalogCtl.GetMeal)
		catalog.GET("/categories", catalogCtl.Categories)
		catalog.GET("/categories/:name/meals", catalogCtl.MealsByCategory)
		catalog.GET("/random", catalogCtl.Random)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/insights", controllers.GetInsights)
	}

	users := r.Group("/users")
	users.Use(middlewares.AuthMiddleware())
	{
		users.GET("", controllers.ListUsers)
		users.POST("/:id/follow", controllers.Follow)
		users.DELETE("/:id/follow", controllers.Unfollow)
		users.GET("/:id/followers", controllers.Followers)
		users.GET("/:id/following", controllers.Following)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", mealCtl.Log)
		meals.GET("", mealCtl.List)
		meals.GET("/today", mealCtl.Today)
		meals.GET("/:id", mealCtl.Get)
		meals.PUT("/:id", mealCtl.Update)
		meals.DELETE("/:id", mealCtl.Delete)
	}

	r.GET("/stats", middlewares.AuthMiddleware(), statsCtl.GetStatistics)
	r.GET("/ws/summary", middlewares.AuthMiddleware(), rtCtl.SummaryWS)

	return r
}
