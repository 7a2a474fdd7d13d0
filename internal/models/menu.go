// internal/models/menu.go
package models

// DiningHall is one dining location as served by the halls listing.
type DiningHall struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Cuisine      *string `json:"cuisine,omitempty"`
	OpeningHours *string `json:"openingHours,omitempty"`
}

// MenuItem is one scoring candidate read from the store. Enrichment is
// best-effort upstream, so every optional field may be absent.
type MenuItem struct {
	ID              int64   `json:"id"`
	HallID          int64   `json:"hallId"`
	Name            string  `json:"name"`
	Calories        *int    `json:"calories,omitempty"`
	Vegan           *bool   `json:"vegan,omitempty"`
	Vegetarian      *bool   `json:"vegetarian,omitempty"`
	PopularityScore float64 `json:"popularityScore"`
}

// ScoredMenuItem is a candidate with its score components. Derived per
// request, never persisted individually.
type ScoredMenuItem struct {
	MenuItem
	DietaryMatch float64 `json:"dietaryMatch"`
	CalorieScore float64 `json:"calorieScore"`
	Score        float64 `json:"score"`
}
