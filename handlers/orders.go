package handlers

import (
	"errors"
	"net/http"

	"foodie-express-api/config"
	"foodie-express-api/middleware"
	"foodie-express-api/models"
	"foodie-express-api/services"
	"foodie-express-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CreateOrderRequest struct {
	Items           []services.CartLine    `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress models.DeliveryAddress `json:"deliveryAddress" binding:"required"`
	PaymentMethod   models.PaymentMethod   `json:"paymentMethod" binding:"required"`
}

// CreateOrder places a new order for the authenticated user
func CreateOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment method"})
		return
	}

	order, err := services.PlaceOrder(config.DB, userID, req.Items, req.DeliveryAddress, req.PaymentMethod)
	if err != nil {
		var lineErr *services.LineItemError
		if errors.As(err, &lineErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": lineErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	// Best effort; a failed confirmation email never fails the order.
	if user, ok := config.DB.Users.FindByID(userID); ok {
		if err := utils.SendOrderConfirmation(user, order); err != nil {
			logrus.WithError(err).WithField("order", order.ID).Warn("Failed to send order confirmation")
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetUserOrders returns all orders of the authenticated user
func GetUserOrders(c *gin.Context) {
	c.JSON(http.StatusOK, config.DB.Orders.FindByUser(middleware.GetUserID(c)))
}

// GetOrder returns a single order; only its owner or an admin may see it
func GetOrder(c *gin.Context) {
	order, ok := config.DB.Orders.FindByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if order.UserID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}
	c.JSON(http.StatusOK, order)
}
