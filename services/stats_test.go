package services

import (
	"testing"

	"foodie-express-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	repos := openRepos(t)

	repos.Restaurants.Create(&models.Restaurant{Name: "Bella Vista"})
	repos.FoodItems.Create(&models.FoodItem{Name: "Pizza", Price: 12.99})
	repos.FoodItems.Create(&models.FoodItem{Name: "Salad", Price: 8.99})

	repos.Users.Create(&models.User{Name: "Jane", Email: "jane@example.com", Role: models.RoleUser})
	repos.Users.Create(&models.User{Name: "Ops", Email: "ops@example.com", Role: models.RoleAdmin})

	amounts := []float64{10.00, 20.00, 5.00}
	var ids []string
	for _, amount := range amounts {
		order := repos.Orders.Create(&models.Order{UserID: "u1", TotalAmount: amount})
		ids = append(ids, order.ID)
	}
	// pending, delivered, pending
	_, ok := repos.Orders.UpdateStatus(ids[1], models.StatusDelivered)
	require.True(t, ok)

	stats := ComputeStats(repos)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.InDelta(t, 35.00, stats.TotalRevenue, 1e-9)
	assert.Equal(t, 1, stats.TotalRestaurants)
	assert.Equal(t, 2, stats.TotalFoodItems)
	assert.Equal(t, 1, stats.TotalUsers, "admins are not counted as customers")
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
}

func TestComputeStatsEmpty(t *testing.T) {
	repos := openRepos(t)
	stats := ComputeStats(repos)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.PendingOrders)
	assert.Zero(t, stats.CompletedOrders)
}
