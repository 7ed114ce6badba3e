package models

import "foodie-express-api/store"

type Restaurant struct {
	store.Meta
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Cuisine      string  `json:"cuisine"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
}

// RestaurantPatch names the fields an update may change. Nil fields are left
// untouched.
type RestaurantPatch struct {
	Name         *string  `json:"name"`
	Image        *string  `json:"image"`
	Cuisine      *string  `json:"cuisine"`
	Rating       *float64 `json:"rating"`
	DeliveryTime *string  `json:"deliveryTime"`
}

// RestaurantRepo exposes the restaurants collection.
type RestaurantRepo struct {
	c *store.Collection[*Restaurant]
}

func (r *RestaurantRepo) Create(rest *Restaurant) *Restaurant { return r.c.Insert(rest) }

func (r *RestaurantRepo) FindByID(id string) (*Restaurant, bool) { return r.c.FindByID(id) }

func (r *RestaurantRepo) FindAll() []*Restaurant { return r.c.ReadAll() }

func (r *RestaurantRepo) Update(id string, p RestaurantPatch) (*Restaurant, bool) {
	return r.c.Update(id, func(rest *Restaurant) {
		if p.Name != nil {
			rest.Name = *p.Name
		}
		if p.Image != nil {
			rest.Image = *p.Image
		}
		if p.Cuisine != nil {
			rest.Cuisine = *p.Cuisine
		}
		if p.Rating != nil {
			rest.Rating = *p.Rating
		}
		if p.DeliveryTime != nil {
			rest.DeliveryTime = *p.DeliveryTime
		}
	})
}

func (r *RestaurantRepo) Delete(id string) (*Restaurant, bool) { return r.c.Delete(id) }
