package services

import "foodie-express-api/models"

// DashboardStats is the admin dashboard snapshot.
type DashboardStats struct {
	TotalOrders      int     `json:"totalOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalRestaurants int     `json:"totalRestaurants"`
	TotalFoodItems   int     `json:"totalFoodItems"`
	TotalUsers       int     `json:"totalUsers"`
	PendingOrders    int     `json:"pendingOrders"`
	CompletedOrders  int     `json:"completedOrders"`
}

// ComputeStats scans all four collections on demand. The four reads are not
// one atomic snapshot; each counter is as of the moment its collection was
// read. Revenue sums every order regardless of status.
func ComputeStats(repos *models.Repositories) DashboardStats {
	orders := repos.Orders.FindAll()
	stats := DashboardStats{
		TotalOrders:      len(orders),
		TotalRestaurants: len(repos.Restaurants.FindAll()),
		TotalFoodItems:   len(repos.FoodItems.FindAll()),
	}
	for _, o := range orders {
		stats.TotalRevenue += o.TotalAmount
		switch o.Status {
		case models.StatusPending:
			stats.PendingOrders++
		case models.StatusDelivered:
			stats.CompletedOrders++
		}
	}
	for _, u := range repos.Users.FindAll() {
		if u.Role == models.RoleUser {
			stats.TotalUsers++
		}
	}
	return stats
}
