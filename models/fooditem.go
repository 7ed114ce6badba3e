package models

import "foodie-express-api/store"

type FoodItem struct {
	store.Meta
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	RestaurantID string  `json:"restaurantId"`
	Category     string  `json:"category"`
	Available    bool    `json:"available"`
}

// FoodItemPatch names the fields an update may change. Nil fields are left
// untouched.
type FoodItemPatch struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Image        *string  `json:"image"`
	RestaurantID *string  `json:"restaurantId"`
	Category     *string  `json:"category"`
	Available    *bool    `json:"available"`
}

// FoodItemRepo exposes the foodItems collection.
type FoodItemRepo struct {
	c *store.Collection[*FoodItem]
}

func (r *FoodItemRepo) Create(item *FoodItem) *FoodItem { return r.c.Insert(item) }

func (r *FoodItemRepo) FindByID(id string) (*FoodItem, bool) { return r.c.FindByID(id) }

func (r *FoodItemRepo) FindAll() []*FoodItem { return r.c.ReadAll() }

func (r *FoodItemRepo) FindByRestaurant(restaurantID string) []*FoodItem {
	return r.c.Find(func(item *FoodItem) bool { return item.RestaurantID == restaurantID })
}

func (r *FoodItemRepo) FindByCategory(category string) []*FoodItem {
	return r.c.Find(func(item *FoodItem) bool { return item.Category == category })
}

func (r *FoodItemRepo) Update(id string, p FoodItemPatch) (*FoodItem, bool) {
	return r.c.Update(id, func(item *FoodItem) {
		if p.Name != nil {
			item.Name = *p.Name
		}
		if p.Description != nil {
			item.Description = *p.Description
		}
		if p.Price != nil {
			item.Price = *p.Price
		}
		if p.Image != nil {
			item.Image = *p.Image
		}
		if p.RestaurantID != nil {
			item.RestaurantID = *p.RestaurantID
		}
		if p.Category != nil {
			item.Category = *p.Category
		}
		if p.Available != nil {
			item.Available = *p.Available
		}
	})
}

func (r *FoodItemRepo) Delete(id string) (*FoodItem, bool) { return r.c.Delete(id) }
