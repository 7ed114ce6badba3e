package handlers

import (
	"net/http"

	"foodie-express-api/config"
	"foodie-express-api/models"
	"foodie-express-api/services"
	"foodie-express-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ── Food item management ─────────────────────────────────────────────────────

type CreateFoodItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gte=0"`
	Image        string  `json:"image"`
	RestaurantID string  `json:"restaurantId" binding:"required"`
	Category     string  `json:"category"`
	Available    *bool   `json:"available"`
}

// CreateFoodItem adds a new item to the catalog — admin only
func CreateFoodItem(c *gin.Context) {
	var req CreateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item := config.DB.FoodItems.Create(&models.FoodItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Image:        req.Image,
		RestaurantID: req.RestaurantID,
		Category:     req.Category,
		Available:    available,
	})
	c.JSON(http.StatusCreated, gin.H{"message": "Food item created successfully", "foodItem": item})
}

// UpdateFoodItem applies a partial update to a food item — admin only
func UpdateFoodItem(c *gin.Context) {
	var patch models.FoodItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	item, ok := config.DB.FoodItems.Update(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item updated successfully", "foodItem": item})
}

// DeleteFoodItem removes a food item — admin only
func DeleteFoodItem(c *gin.Context) {
	if _, ok := config.DB.FoodItems.Delete(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
}

// ── Restaurant management ────────────────────────────────────────────────────

type CreateRestaurantRequest struct {
	Name         string  `json:"name" binding:"required"`
	Image        string  `json:"image"`
	Cuisine      string  `json:"cuisine"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
}

// CreateRestaurant adds a new restaurant — admin only
func CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	restaurant := config.DB.Restaurants.Create(&models.Restaurant{
		Name:         req.Name,
		Image:        req.Image,
		Cuisine:      req.Cuisine,
		Rating:       req.Rating,
		DeliveryTime: req.DeliveryTime,
	})
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created successfully", "restaurant": restaurant})
}

// UpdateRestaurant applies a partial update to a restaurant — admin only
func UpdateRestaurant(c *gin.Context) {
	var patch models.RestaurantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	restaurant, ok := config.DB.Restaurants.Update(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated successfully", "restaurant": restaurant})
}

// DeleteRestaurant removes a restaurant — admin only. Food items referencing
// it are left in place; orphaned references resolve to "unknown" at display
// time.
func DeleteRestaurant(c *gin.Context) {
	if _, ok := config.DB.Restaurants.Delete(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
}

// ── Order management ─────────────────────────────────────────────────────────

// GetAllOrders returns every order — admin only
func GetAllOrders(c *gin.Context) {
	c.JSON(http.StatusOK, config.DB.Orders.FindAll())
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle — admin only
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, ok := config.DB.Orders.FindByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message":       "Cannot update order status",
			"reason":        err.Error(),
			"currentStatus": order.Status,
		})
		return
	}

	order, _ = config.DB.Orders.UpdateStatus(order.ID, req.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": order})
}

// GetDashboardStats returns the aggregated dashboard counters — admin only
func GetDashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, services.ComputeStats(config.DB))
}
