package models

import "foodie-express-api/store"

// Repositories bundles the four typed collections backing the application.
type Repositories struct {
	Users       *UserRepo
	Restaurants *RestaurantRepo
	FoodItems   *FoodItemRepo
	Orders      *OrderRepo
}

// Open opens every collection under dir, creating and seeding any backing
// file that does not exist yet. Users and orders always start empty; the
// demo catalog is only seeded when seedDemo is set.
func Open(dir string, seedDemo bool) (*Repositories, error) {
	var restaurants []*Restaurant
	var foodItems []*FoodItem
	if seedDemo {
		restaurants = seedRestaurants()
		foodItems = seedFoodItems()
	}

	users, err := store.Open[*User](dir, "users", nil)
	if err != nil {
		return nil, err
	}
	restaurantCol, err := store.Open(dir, "restaurants", restaurants)
	if err != nil {
		return nil, err
	}
	foodItemCol, err := store.Open(dir, "foodItems", foodItems)
	if err != nil {
		return nil, err
	}
	orders, err := store.Open[*Order](dir, "orders", nil)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Users:       &UserRepo{c: users},
		Restaurants: &RestaurantRepo{c: restaurantCol},
		FoodItems:   &FoodItemRepo{c: foodItemCol},
		Orders:      &OrderRepo{c: orders},
	}, nil
}
