package handlers

import (
	"net/http"

	"foodie-express-api/config"

	"github.com/gin-gonic/gin"
)

// GetRestaurants returns all restaurants (public)
func GetRestaurants(c *gin.Context) {
	c.JSON(http.StatusOK, config.DB.Restaurants.FindAll())
}

// GetRestaurant returns a single restaurant
func GetRestaurant(c *gin.Context) {
	restaurant, ok := config.DB.Restaurants.FindByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GetFoodItems returns food items, optionally filtered by restaurant or
// category. restaurantId takes precedence when both are given.
func GetFoodItems(c *gin.Context) {
	if restaurantID := c.Query("restaurantId"); restaurantID != "" {
		c.JSON(http.StatusOK, config.DB.FoodItems.FindByRestaurant(restaurantID))
		return
	}
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, config.DB.FoodItems.FindByCategory(category))
		return
	}
	c.JSON(http.StatusOK, config.DB.FoodItems.FindAll())
}

// GetFoodItem returns a single food item
func GetFoodItem(c *gin.Context) {
	item, ok := config.DB.FoodItems.FindByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}
