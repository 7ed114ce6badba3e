package models

import (
	"time"

	"foodie-express-api/store"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod is recorded with the order; nothing is ever charged.
type PaymentMethod string

const (
	PaymentCreditCard    PaymentMethod = "credit_card"
	PaymentDebitCard     PaymentMethod = "debit_card"
	PaymentDigitalWallet PaymentMethod = "digital_wallet"
	PaymentCash          PaymentMethod = "cash"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentDigitalWallet, PaymentCash:
		return true
	}
	return false
}

type DeliveryAddress struct {
	FullName     string `json:"fullName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zipCode" binding:"required"`
	Instructions string `json:"instructions,omitempty"`
}

// OrderItem snapshots the food item's name and price at order time. Later
// catalog edits never touch historical orders.
type OrderItem struct {
	FoodItemID string  `json:"foodItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
}

type Order struct {
	store.Meta
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     float64         `json:"totalAmount"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	Status          OrderStatus     `json:"status"`
	OrderDate       time.Time       `json:"orderDate"`
}

// OrderRepo exposes the orders collection.
type OrderRepo struct {
	c *store.Collection[*Order]
}

// Create persists a new order. Status and order date are forced here — a
// caller-supplied status is ignored, every order starts pending.
func (r *OrderRepo) Create(o *Order) *Order {
	o.Status = StatusPending
	o.OrderDate = time.Now().UTC()
	return r.c.Insert(o)
}

func (r *OrderRepo) FindByID(id string) (*Order, bool) { return r.c.FindByID(id) }

func (r *OrderRepo) FindByUser(userID string) []*Order {
	return r.c.Find(func(o *Order) bool { return o.UserID == userID })
}

func (r *OrderRepo) FindAll() []*Order { return r.c.ReadAll() }

func (r *OrderRepo) UpdateStatus(id string, status OrderStatus) (*Order, bool) {
	return r.c.Update(id, func(o *Order) { o.Status = status })
}
