package services

import "foodie-express-api/models"

// CartLine is one entry of an incoming cart: a food item reference and how
// many of it.
type CartLine struct {
	FoodItemID string `json:"foodItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

// LineItemError reports a cart line referencing a food item that does not
// exist. The whole order is rejected; nothing is persisted.
type LineItemError struct {
	FoodItemID string
}

func (e *LineItemError) Error() string {
	return "Food item " + e.FoodItemID + " not found"
}

// PlaceOrder validates the cart against the current catalog, snapshots each
// line's name and unit price, sums the total and persists the order with
// status pending. All-or-nothing: any unresolvable line fails the operation
// before anything is written.
func PlaceOrder(repos *models.Repositories, userID string, lines []CartLine, address models.DeliveryAddress, payment models.PaymentMethod) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(lines))
	var total float64

	for _, line := range lines {
		foodItem, ok := repos.FoodItems.FindByID(line.FoodItemID)
		if !ok {
			return nil, &LineItemError{FoodItemID: line.FoodItemID}
		}
		lineTotal := foodItem.Price * float64(line.Quantity)
		total += lineTotal
		items = append(items, models.OrderItem{
			FoodItemID: line.FoodItemID,
			Name:       foodItem.Name,
			Price:      foodItem.Price,
			Quantity:   line.Quantity,
			Total:      lineTotal,
		})
	}

	order := repos.Orders.Create(&models.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		DeliveryAddress: address,
		PaymentMethod:   payment,
	})
	return order, nil
}
