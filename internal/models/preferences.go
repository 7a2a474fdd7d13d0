// internal/models/preferences.go
package models

import "strings"

// Default weights mirror the balanced split the product launched with.
const (
	DefaultPopularityWeight = 0.45
	DefaultDietaryWeight    = 0.35
	DefaultCalorieWeight    = 0.20

	DefaultResultLimit = 15
	MinResultLimit     = 1
	MaxResultLimit     = 50
)

// Preferences is the wire-level preference request. All fields are
// optional; absent fields take the documented defaults.
type Preferences struct {
	VeganOnly        *bool    `json:"veganOnly,omitempty"`
	VegetarianOnly   *bool    `json:"vegetarianOnly,omitempty"`
	MaxCalories      *int     `json:"maxCalories,omitempty"`
	Query            *string  `json:"query,omitempty"`
	PopularityWeight *float64 `json:"popularityWeight,omitempty"`
	DietaryWeight    *float64 `json:"dietaryWeight,omitempty"`
	CalorieWeight    *float64 `json:"calorieWeight,omitempty"`
}

// ResolvedPreferences is a Preferences with defaults applied and each
// weight clamped to [0,1] independently. Weights are intentionally NOT
// renormalized to sum to 1; callers get exactly the mix they asked for.
type ResolvedPreferences struct {
	VeganOnly        bool    `json:"veganOnly"`
	VegetarianOnly   bool    `json:"vegetarianOnly"`
	MaxCalories      *int    `json:"maxCalories,omitempty"`
	Query            string  `json:"query,omitempty"`
	PopularityWeight float64 `json:"popularityWeight"`
	DietaryWeight    float64 `json:"dietaryWeight"`
	CalorieWeight    float64 `json:"calorieWeight"`
}

// Resolve applies defaults and clamps the weights. Out-of-range values are
// normalized, never rejected.
func (p Preferences) Resolve() ResolvedPreferences {
	r := ResolvedPreferences{
		PopularityWeight: DefaultPopularityWeight,
		DietaryWeight:    DefaultDietaryWeight,
		CalorieWeight:    DefaultCalorieWeight,
	}

	if p.VeganOnly != nil {
		r.VeganOnly = *p.VeganOnly
	}
	if p.VegetarianOnly != nil {
		r.VegetarianOnly = *p.VegetarianOnly
	}
	if p.MaxCalories != nil {
		maxCal := *p.MaxCalories
		r.MaxCalories = &maxCal
	}
	if p.Query != nil {
		r.Query = strings.TrimSpace(*p.Query)
	}
	if p.PopularityWeight != nil {
		r.PopularityWeight = clampWeight(*p.PopularityWeight)
	}
	if p.DietaryWeight != nil {
		r.DietaryWeight = clampWeight(*p.DietaryWeight)
	}
	if p.CalorieWeight != nil {
		r.CalorieWeight = clampWeight(*p.CalorieWeight)
	}

	return r
}

// ClampLimit normalizes a requested result limit into [1,50], defaulting
// to 15 when absent.
func ClampLimit(limit *int) int {
	if limit == nil {
		return DefaultResultLimit
	}
	if *limit < MinResultLimit {
		return MinResultLimit
	}
	if *limit > MaxResultLimit {
		return MaxResultLimit
	}
	return *limit
}

func clampWeight(w float64) float64 {
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}
