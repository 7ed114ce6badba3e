package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodie-express-api/config"
	"foodie-express-api/middleware"
	"foodie-express-api/models"
	"foodie-express-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos, err := models.Open(t.TempDir(), true)
	require.NoError(t, err)
	config.DB = repos
	config.JWTSecret = []byte("test-secret")

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Jane Doe",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func adminToken(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := config.DB.Users.Create(&models.User{
		Name:     "Ops",
		Email:    "ops@example.com",
		Password: string(hash),
		Role:     models.RoleAdmin,
	})
	token, err := middleware.GenerateToken(admin)
	require.NoError(t, err)
	return token
}

func orderBody(lines ...gin.H) gin.H {
	return gin.H{
		"items": lines,
		"deliveryAddress": gin.H{
			"fullName": "Jane Doe",
			"phone":    "(555) 123-4567",
			"address":  "123 Main Street",
			"city":     "New York",
			"state":    "NY",
			"zipCode":  "10001",
		},
		"paymentMethod": "credit_card",
	}
}

func TestPublicCatalog(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/food/restaurants", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var restaurants []models.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restaurants))
	assert.Len(t, restaurants, 3)
	assert.Equal(t, "Bella Vista", restaurants[0].Name)

	w = doJSON(t, r, http.MethodGet, "/api/food/items?restaurantId=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.FoodItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, "1", item.RestaurantID)
	}

	w = doJSON(t, r, http.MethodGet, "/api/food/items?category=Dessert", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Chocolate Brownie", items[0].Name)

	w = doJSON(t, r, http.MethodGet, "/api/food/restaurants/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthFlow(t *testing.T) {
	r := setupRouter(t)
	registerUser(t, r, "jane@example.com")

	// Duplicate email is rejected.
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Jane Again", "email": "jane@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "jane@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.Empty(t, resp.User.Password, "credential must never be exposed")

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "jane@example.com", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOrder(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "jane@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/orders", token, orderBody(
		gin.H{"foodItemId": "1", "quantity": 2},
		gin.H{"foodItemId": "4", "quantity": 1},
	))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 34.97, resp.Order.TotalAmount, 1e-9) // 12.99*2 + 8.99
	assert.Equal(t, models.StatusPending, resp.Order.Status)
	require.Len(t, resp.Order.Items, 2)
	assert.Equal(t, "Margherita Pizza", resp.Order.Items[0].Name)

	// Without a token the endpoint is closed.
	w = doJSON(t, r, http.MethodPost, "/api/orders", "", orderBody(gin.H{"foodItemId": "1", "quantity": 1}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOrderUnknownItem(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "jane@example.com")

	before := len(config.DB.Orders.FindAll())
	w := doJSON(t, r, http.MethodPost, "/api/orders", token, orderBody(
		gin.H{"foodItemId": "1", "quantity": 1},
		gin.H{"foodItemId": "99", "quantity": 1},
	))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "99")
	assert.Len(t, config.DB.Orders.FindAll(), before, "no partial order may be created")
}

func TestOrderAccessControl(t *testing.T) {
	r := setupRouter(t)
	owner := registerUser(t, r, "owner@example.com")
	stranger := registerUser(t, r, "stranger@example.com")
	admin := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", owner, orderBody(gin.H{"foodItemId": "1", "quantity": 1}))
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	orderPath := "/api/orders/" + resp.Order.ID

	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodGet, orderPath, owner, nil).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(t, r, http.MethodGet, orderPath, stranger, nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodGet, orderPath, admin, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/api/orders/missing", owner, nil).Code)

	// Listing only returns the caller's own orders.
	w = doJSON(t, r, http.MethodGet, "/api/orders", stranger, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Empty(t, orders)
}

func TestAdminRoleEnforcement(t *testing.T) {
	r := setupRouter(t)
	user := registerUser(t, r, "jane@example.com")

	assert.Equal(t, http.StatusForbidden, doJSON(t, r, http.MethodGet, "/api/admin/stats", user, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, r, http.MethodGet, "/api/admin/stats", "", nil).Code)
}

func TestAdminOrderStatusFlow(t *testing.T) {
	r := setupRouter(t)
	user := registerUser(t, r, "jane@example.com")
	admin := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", user, orderBody(gin.H{"foodItemId": "2", "quantity": 1}))
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	statusPath := fmt.Sprintf("/api/admin/orders/%s/status", resp.Order.ID)

	w = doJSON(t, r, http.MethodPut, statusPath, admin, gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, statusPath, admin, gin.H{"status": "delivered"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Delivered is terminal.
	w = doJSON(t, r, http.MethodPut, statusPath, admin, gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/orders/missing/status", admin, gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminCatalogCrud(t *testing.T) {
	r := setupRouter(t)
	admin := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/food-items", admin, gin.H{
		"name":         "Garlic Bread",
		"price":        4.99,
		"restaurantId": "1",
		"category":     "Appetizer",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		FoodItem models.FoodItem `json:"foodItem"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.FoodItem.Available, "new items default to available")

	itemPath := "/api/admin/food-items/" + created.FoodItem.ID
	w = doJSON(t, r, http.MethodPut, itemPath, admin, gin.H{"price": 5.49})
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		FoodItem models.FoodItem `json:"foodItem"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.InDelta(t, 5.49, updated.FoodItem.Price, 1e-9)
	assert.Equal(t, "Garlic Bread", updated.FoodItem.Name, "unnamed fields stay untouched")

	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodDelete, itemPath, admin, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/api/food/items/"+created.FoodItem.ID, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodPut, itemPath, admin, gin.H{"price": 1.0}).Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/restaurants", admin, gin.H{
		"name":         "Taco Town",
		"cuisine":      "Mexican",
		"rating":       4.1,
		"deliveryTime": "20-30 min",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var rest struct {
		Restaurant models.Restaurant `json:"restaurant"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rest))

	restPath := "/api/admin/restaurants/" + rest.Restaurant.ID
	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPut, restPath, admin, gin.H{"rating": 4.6}).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodDelete, restPath, admin, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodDelete, restPath, admin, nil).Code)
}

func TestAdminStats(t *testing.T) {
	r := setupRouter(t)
	user := registerUser(t, r, "jane@example.com")
	admin := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", user, orderBody(gin.H{"foodItemId": "1", "quantity": 1}))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/stats", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalOrders      int     `json:"totalOrders"`
		TotalRevenue     float64 `json:"totalRevenue"`
		TotalRestaurants int     `json:"totalRestaurants"`
		TotalFoodItems   int     `json:"totalFoodItems"`
		TotalUsers       int     `json:"totalUsers"`
		PendingOrders    int     `json:"pendingOrders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalOrders)
	assert.InDelta(t, 12.99, stats.TotalRevenue, 1e-9)
	assert.Equal(t, 3, stats.TotalRestaurants)
	assert.Equal(t, 6, stats.TotalFoodItems)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 1, stats.PendingOrders)
}
