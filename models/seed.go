package models

import "foodie-express-api/store"

// Demo catalog written on first start when no backing files exist yet.
// Ids are fixed so the collections seed identically on every fresh install.

func seedRestaurants() []*Restaurant {
	return []*Restaurant{
		{
			Meta:         store.Meta{ID: "1"},
			Name:         "Bella Vista",
			Image:        "https://images.pexels.com/photos/1581384/pexels-photo-1581384.jpeg?auto=compress&cs=tinysrgb&w=800",
			Cuisine:      "Italian",
			Rating:       4.5,
			DeliveryTime: "30-45 min",
		},
		{
			Meta:         store.Meta{ID: "2"},
			Name:         "Spice Garden",
			Image:        "https://images.pexels.com/photos/1267320/pexels-photo-1267320.jpeg?auto=compress&cs=tinysrgb&w=800",
			Cuisine:      "Indian",
			Rating:       4.3,
			DeliveryTime: "25-35 min",
		},
		{
			Meta:         store.Meta{ID: "3"},
			Name:         "Dragon Palace",
			Image:        "https://images.pexels.com/photos/1148086/pexels-photo-1148086.jpeg?auto=compress&cs=tinysrgb&w=800",
			Cuisine:      "Chinese",
			Rating:       4.7,
			DeliveryTime: "35-50 min",
		},
	}
}

func seedFoodItems() []*FoodItem {
	return []*FoodItem{
		{
			Meta:         store.Meta{ID: "1"},
			Name:         "Margherita Pizza",
			Description:  "Classic pizza with tomato sauce, mozzarella, and fresh basil",
			Price:        12.99,
			Image:        "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=800",
			RestaurantID: "1",
			Category:     "Main Course",
			Available:    true,
		},
		{
			Meta:         store.Meta{ID: "2"},
			Name:         "Chicken Tikka Masala",
			Description:  "Tender chicken in a rich, creamy tomato-based sauce",
			Price:        15.99,
			Image:        "https://images.pexels.com/photos/2474658/pexels-photo-2474658.jpeg?auto=compress&cs=tinysrgb&w=800",
			RestaurantID: "2",
			Category:     "Main Course",
			Available:    true,
		},
		{
			Meta:         store.Meta{ID: "3"},
			Name:         "Sweet & Sour Pork",
			Description:  "Crispy pork with bell peppers and pineapple in sweet & sour sauce",
			Price:        13.99,
			Image:        "https://images.pexels.com/photos/1640772/pexels-photo-1640772.jpeg?auto=compress&cs=tinysrgb&w=800",
			RestaurantID: "3",
			Category:     "Main Course",
			Available:    true,
		},
		{
			Meta:         store.Meta{ID: "4"},
			Name:         "Caesar Salad",
			Description:  "Fresh romaine lettuce with parmesan cheese and croutons",
			Price:        8.99,
			Image:        "https://images.pexels.com/photos/1213710/pexels-photo-1213710.jpeg?auto=compress&cs=tinysrgb&w=800",
			RestaurantID: "1",
			Category:     "Salad",
			Available:    true,
		},
		{
			Meta:         store.Meta{ID: "5"},
			Name:         "Pad Thai",
			Description:  "Stir-fried rice noodles with shrimp, tofu, and bean sprouts",
			Price:        11.99,
			Image:        "https://images.pexels.com/photos/1323712/pexels-photo-1323712.jpeg?auto=compress&cs=tinysrgb&w=800",
			RestaurantID: "3",
			Category:     "Main Course",
			Available:    true,
		},
		{
			Meta:         store.Meta{ID: "6"},
			Name:         "Chocolate Brownie",
			Description:  "Rich chocolate brownie served with vanilla ice cream",
			Price:        6.99,
			Image:        "https://images.pexels.com/photos/1099680/pexels-photo-1099680.jpeg?auto=compress&cs=tinysrgb&w=800",
			RestaurantID: "1",
			Category:     "Dessert",
			Available:    true,
		},
	}
}
