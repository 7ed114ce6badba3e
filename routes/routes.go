package routes

import (
	"foodie-express-api/handlers"
	"foodie-express-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Restaurants & food items (no auth needed)
		public.GET("/food/restaurants", handlers.GetRestaurants)
		public.GET("/food/restaurants/:id", handlers.GetRestaurant)
		public.GET("/food/items", handlers.GetFoodItems)
		public.GET("/food/items/:id", handlers.GetFoodItem)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/me", handlers.GetCurrentUser)

		auth.POST("/orders", handlers.CreateOrder)
		auth.GET("/orders", handlers.GetUserOrders)
		auth.GET("/orders/:id", handlers.GetOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/stats", handlers.GetDashboardStats)

		admin.POST("/food-items", handlers.CreateFoodItem)
		admin.PUT("/food-items/:id", handlers.UpdateFoodItem)
		admin.DELETE("/food-items/:id", handlers.DeleteFoodItem)

		admin.POST("/restaurants", handlers.CreateRestaurant)
		admin.PUT("/restaurants/:id", handlers.UpdateRestaurant)
		admin.DELETE("/restaurants/:id", handlers.DeleteRestaurant)

		admin.GET("/orders", handlers.GetAllOrders)
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	}
}
